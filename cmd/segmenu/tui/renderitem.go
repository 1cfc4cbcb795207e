package tui

// renderLabel returns display text for an item: the image glyph, if any,
// followed by the label.
func renderLabel(image, label string) string {
	if image == "" {
		return label
	}
	return image + " " + label
}

// renderCursor returns the two-column cursor gutter of a menu row.
func renderCursor(current bool) string {
	if current {
		return MenuCursorStyle.Render("> ")
	}
	return "  "
}

// renderCheck returns the two-column checkmark gutter of a menu row.
// Active rows (the selection or one of its ancestors) carry a check.
func renderCheck(active bool) string {
	if active {
		return MenuCheckStyle.Render("✓ ")
	}
	return "  "
}
