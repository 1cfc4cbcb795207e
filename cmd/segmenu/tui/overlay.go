package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Overlay is a centered modal box asking for a single line of text.
type Overlay struct {
	title   string
	context string // line shown under the title, e.g. the parent's path
	input   textinput.Model
	width   int
	active  bool
}

// NewTextInputOverlay creates an active text input dialog.
func NewTextInputOverlay(title, placeholder string) Overlay {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30
	return Overlay{
		title:  title,
		input:  ti,
		active: true,
	}
}

// WithContext sets a dimmed line shown under the title.
func (o Overlay) WithContext(context string) Overlay {
	o.context = context
	return o
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Value returns the text entered so far.
func (o Overlay) Value() string {
	return o.input.Value()
}

func closeOverlay(result string, confirmed bool) tea.Cmd {
	return func() tea.Msg {
		return OverlayCloseMsg{Result: result, Confirmed: confirmed}
	}
}

// Update handles key messages for the overlay. Enter submits a non-blank
// value, Esc cancels, everything else goes to the text input.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			o.active = false
			return o, closeOverlay("", false)
		case "enter":
			value := strings.TrimSpace(o.input.Value())
			if value == "" {
				return o, nil
			}
			o.active = false
			return o, closeOverlay(value, true)
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// SetWidth sizes the input to fit a box of width w.
func (o *Overlay) SetWidth(w int) {
	o.width = w
	o.input.Width = max(w-6, 20) // overlay padding and border
}

// View renders the overlay box. Compositing over a background is the
// caller's job, see Composite.
func (o Overlay) View() string {
	if !o.active {
		return ""
	}
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n")
	if o.context != "" {
		b.WriteString(DimStyle.Render(o.context))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	b.WriteString(OverlayHintStyle.Render("Enter: create  Esc: cancel"))
	return OverlayStyle.Render(b.String())
}

// OverlayMaxWidth returns the overlay width for a terminal termWidth columns
// wide.
func OverlayMaxWidth(termWidth int) int {
	return min(max(termWidth*2/3, 40), 60)
}

// Composite places the overlay box centered on top of the background. The
// background is expected to be a fully rendered frame; styled cells to the
// left and right of the box are kept.
func Composite(background, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(line))
	}

	startRow := max((totalHeight-len(overlayLines))/2, 0)
	startCol := max((totalWidth-overlayWidth)/2, 0)

	for i, line := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}
		bg := bgLines[row]
		bgWidth := ansi.StringWidth(bg)

		left := ansi.Truncate(bg, startCol, "")
		if pad := startCol - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ""
		if end := startCol + ansi.StringWidth(line); end < bgWidth {
			right = ansi.TruncateLeft(bg, end, "")
		}
		bgLines[row] = left + line + right
	}

	if totalHeight > 0 && len(bgLines) > totalHeight {
		bgLines = bgLines[:totalHeight]
	}
	return strings.Join(bgLines, "\n")
}
