package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with the selection path and keyboard
// shortcuts.
type StatusBar struct {
	path     []string // labels from the top-level item down to the selection
	menuOpen bool
	width    int
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetPath sets the labels of the selected item and its ancestors.
func (s *StatusBar) SetPath(labels []string) {
	s.path = labels
}

// SetMenuOpen switches the shortcut hints between bar and menu navigation.
func (s *StatusBar) SetMenuOpen(open bool) {
	s.menuOpen = open
}

func hint(key, action string) string {
	return StatusBarKeyStyle.Render(key) + ": " + action
}

// View renders the status bar.
func (s StatusBar) View() string {
	leftPart := "nothing selected"
	if len(s.path) > 0 {
		leftPart = strings.Join(s.path, " › ")
	}

	var shortcuts []string
	if s.menuOpen {
		shortcuts = []string{hint("↑↓", "move"), hint("Enter", "choose"), hint("Esc", "back")}
	} else {
		shortcuts = []string{hint("←→", "move"), hint("Enter", "open"), hint("q", "quit")}
	}
	rightPart := strings.Join(shortcuts, " · ")

	// Calculate padding between left and right.
	leftWidth := ansi.StringWidth(leftPart)
	rightWidth := ansi.StringWidth(rightPart)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart
	if s.width > 0 {
		// Hints are cut rather than wrapped: the bar is always one line.
		content = ansi.Truncate(content, max(availableWidth, 1), "…")
		return StatusBarStyle.Width(s.width).Render(content)
	}
	return StatusBarStyle.Render(content)
}
