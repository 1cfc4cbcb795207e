package tui

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// MenuMinWidth is the narrowest a menu box is drawn.
const MenuMinWidth = 18

// Palette colors, taken from the active catppuccin flavor by SetFlavor.
var (
	colorBase     lipgloss.Color
	colorMantle   lipgloss.Color
	colorSurface0 lipgloss.Color
	colorSurface1 lipgloss.Color
	colorText     lipgloss.Color
	colorSubtext0 lipgloss.Color
	colorBlue     lipgloss.Color
	colorGreen    lipgloss.Color
	colorYellow   lipgloss.Color
	colorMauve    lipgloss.Color
	colorOverlay0 lipgloss.Color
)

// Segment bar styles.
var (
	// SegmentBarStyle is the background strip for the segment row.
	SegmentBarStyle lipgloss.Style

	// ActiveSegmentStyle is used for the segment holding the selection.
	ActiveSegmentStyle lipgloss.Style

	// InactiveSegmentStyle is used for every other segment.
	InactiveSegmentStyle lipgloss.Style
)

// Menu styles.
var (
	// MenuBoxStyle is the border around an open menu.
	MenuBoxStyle lipgloss.Style

	// MenuTitleStyle is used for the breadcrumb line of a menu.
	MenuTitleStyle lipgloss.Style

	// MenuCursorStyle is used for the row under the cursor.
	MenuCursorStyle lipgloss.Style

	// MenuCheckStyle is used for the checkmark of active rows.
	MenuCheckStyle lipgloss.Style

	// MenuCreateStyle is used for "create new" rows.
	MenuCreateStyle lipgloss.Style

	// MenuDividerStyle is used for the separator above a create row.
	MenuDividerStyle lipgloss.Style

	// DimStyle is used for rows that cannot be chosen.
	DimStyle lipgloss.Style
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle lipgloss.Style

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle lipgloss.Style
)

// Overlay styles.
var (
	// OverlayStyle is the border and background for modal overlays.
	OverlayStyle lipgloss.Style

	// OverlayTitleStyle is used for the title text in overlays.
	OverlayTitleStyle lipgloss.Style

	// OverlayHintStyle is used for the key hints under an overlay input.
	OverlayHintStyle lipgloss.Style
)

func init() {
	SetFlavor(catppuccin.Mocha)
}

// FlavorByName returns the catppuccin flavor called name. An empty name
// selects Mocha.
func FlavorByName(name string) (catppuccin.Flavor, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mocha":
		return catppuccin.Mocha, true
	case "macchiato":
		return catppuccin.Macchiato, true
	case "frappe", "frappé":
		return catppuccin.Frappe, true
	case "latte":
		return catppuccin.Latte, true
	}
	return nil, false
}

// SetFlavor recomputes every style from flavor.
func SetFlavor(flavor catppuccin.Flavor) {
	colorBase = lipgloss.Color(flavor.Base().Hex)
	colorMantle = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue = lipgloss.Color(flavor.Blue().Hex)
	colorGreen = lipgloss.Color(flavor.Green().Hex)
	colorYellow = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)

	SegmentBarStyle = lipgloss.NewStyle().
		Background(colorSurface0).
		Padding(0, 1)
	ActiveSegmentStyle = lipgloss.NewStyle().
		Foreground(colorBase).
		Background(colorBlue).
		Padding(0, 1).
		Bold(true)
	InactiveSegmentStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface1).
		Padding(0, 1)

	MenuBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Background(colorMantle).
		Padding(0, 1)
	MenuTitleStyle = lipgloss.NewStyle().
		Foreground(colorMauve).
		Bold(true)
	MenuCursorStyle = lipgloss.NewStyle().
		Foreground(colorBlue).
		Bold(true)
	MenuCheckStyle = lipgloss.NewStyle().
		Foreground(colorGreen)
	MenuCreateStyle = lipgloss.NewStyle().
		Foreground(colorYellow)
	MenuDividerStyle = lipgloss.NewStyle().
		Foreground(colorSurface1)
	DimStyle = lipgloss.NewStyle().
		Foreground(colorOverlay0)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(colorSubtext0).
		Background(colorSurface0).
		Padding(0, 1)
	StatusBarKeyStyle = lipgloss.NewStyle().
		Foreground(colorYellow).
		Background(colorSurface0).
		Bold(true)

	OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Background(colorMantle).
		Foreground(colorText).
		Padding(1, 2)
	OverlayTitleStyle = lipgloss.NewStyle().
		Foreground(colorBlue).
		Bold(true)
	OverlayHintStyle = lipgloss.NewStyle().
		Foreground(colorOverlay0)
}
