package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// menuMarker is appended to the label of segments that open a menu.
const menuMarker = "▾"

// Drawn at the row edges when segments are scrolled out of view.
const (
	scrollLeftMarker  = "‹"
	scrollRightMarker = "›"
)

// SegmentView holds display data for one segment.
type SegmentView struct {
	Label   string
	Image   string // glyph drawn before the label
	Active  bool   // segment holds the selection or an ancestor of it
	HasMenu bool
	Width   int // explicit width; 0 sizes to the label
}

// SegmentBar renders the top-level items as one row of segments.
type SegmentBar struct {
	segments []SegmentView
	cursor   int  // focused segment
	offset   int  // first visible segment when the row overflows
	width    int  // available horizontal space
	focused  bool // true when the bar has keyboard focus
}

// NewSegmentBar creates a focused, empty segment bar.
func NewSegmentBar() SegmentBar {
	return SegmentBar{focused: true}
}

// SetSegments replaces the segments, keeping the cursor in range.
func (b *SegmentBar) SetSegments(segments []SegmentView) {
	b.segments = segments
	if b.cursor >= len(segments) {
		b.cursor = len(segments) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
	b.scroll()
}

// SetWidth sets the available width for rendering.
func (b *SegmentBar) SetWidth(w int) {
	b.width = w
	b.scroll()
}

// SetFocused sets whether the bar has keyboard focus.
func (b *SegmentBar) SetFocused(f bool) {
	b.focused = f
}

// SetCursor focuses segment i.
func (b *SegmentBar) SetCursor(i int) {
	if i >= 0 && i < len(b.segments) {
		b.cursor = i
		b.scroll()
	}
}

// Cursor returns the focused segment index.
func (b SegmentBar) Cursor() int {
	return b.cursor
}

// Len returns the number of segments.
func (b SegmentBar) Len() int {
	return len(b.segments)
}

func press(i int) tea.Cmd {
	return func() tea.Msg {
		return SegmentPressMsg{Index: i}
	}
}

// Update handles key messages when the bar has focus.
func (b SegmentBar) Update(msg tea.Msg) (SegmentBar, tea.Cmd) {
	if len(b.segments) == 0 {
		return b, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "left", "h", "shift+tab":
			if b.cursor > 0 {
				b.cursor--
			}
		case "right", "l", "tab":
			if b.cursor < len(b.segments)-1 {
				b.cursor++
			}
		case "home":
			b.cursor = 0
		case "end":
			b.cursor = len(b.segments) - 1
		case "enter", " ":
			return b, press(b.cursor)
		case "down", "j":
			// Down only drills into menus; it never selects a plain segment.
			if b.segments[b.cursor].HasMenu {
				return b, press(b.cursor)
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			i := int(key[0] - '1')
			if i < len(b.segments) {
				b.cursor = i
				b.scroll()
				return b, press(i)
			}
		}
		b.scroll()
	}
	return b, nil
}

func (b SegmentBar) renderSegment(i int) string {
	seg := b.segments[i]
	text := renderLabel(seg.Image, seg.Label)
	if seg.HasMenu {
		text += " " + menuMarker
	}

	style := InactiveSegmentStyle
	if seg.Active {
		style = ActiveSegmentStyle
	}
	if b.focused && i == b.cursor {
		style = style.Underline(true)
	}
	if seg.Width > 0 {
		style = style.Width(seg.Width).MaxWidth(seg.Width).Align(lipgloss.Center)
	}
	return style.Render(text)
}

func (b SegmentBar) widths() []int {
	widths := make([]int, len(b.segments))
	for i := range b.segments {
		widths[i] = ansi.StringWidth(b.renderSegment(i))
	}
	return widths
}

// span returns the columns taken by segments from through to, gaps included.
func span(widths []int, from, to int) int {
	w := to - from
	for i := from; i <= to; i++ {
		w += widths[i]
	}
	return w
}

// room returns the columns left for segments when the row does not fit the
// bar, after the scroll markers. ok is false when every segment fits.
func (b SegmentBar) room(widths []int) (room int, ok bool) {
	if b.width <= 0 || len(widths) == 0 {
		return 0, false
	}
	inner := max(b.width-SegmentBarStyle.GetHorizontalPadding(), 1)
	if span(widths, 0, len(widths)-1) <= inner {
		return 0, false
	}
	markers := ansi.StringWidth(scrollLeftMarker) + ansi.StringWidth(scrollRightMarker) + 2
	return max(inner-markers, 1), true
}

// scroll moves the visible window so the cursor segment is on screen.
func (b *SegmentBar) scroll() {
	widths := b.widths()
	room, ok := b.room(widths)
	if !ok {
		b.offset = 0
		return
	}
	b.offset = min(b.offset, b.cursor)
	for b.offset < b.cursor && span(widths, b.offset, b.cursor) > room {
		b.offset++
	}
	// Pull hidden segments back in while the tail leaves space for them.
	for b.offset > 0 && span(widths, b.offset-1, len(widths)-1) <= room {
		b.offset--
	}
}

// barLayout is the rendered row: every segment's text and starting column,
// and the inclusive range of segments on screen.
type barLayout struct {
	parts       []string
	starts      []int // -1 for segments scrolled out of view
	first, last int
	scrolled    bool
}

func (b SegmentBar) layout() barLayout {
	n := len(b.segments)
	l := barLayout{parts: make([]string, n), starts: make([]int, n), last: -1}
	widths := make([]int, n)
	for i := range b.segments {
		l.parts[i] = b.renderSegment(i)
		widths[i] = ansi.StringWidth(l.parts[i])
		l.starts[i] = -1
	}

	x := SegmentBarStyle.GetPaddingLeft()
	room, ok := b.room(widths)
	if !ok {
		for i := range n {
			l.starts[i] = x
			x += widths[i] + 1
		}
		l.last = n - 1
		return l
	}

	l.scrolled = true
	l.first = min(b.offset, n-1)
	x += ansi.StringWidth(scrollLeftMarker) + 1
	limit := x + room
	for i := l.first; i < n; i++ {
		if x+widths[i] > limit {
			if i > l.first {
				break
			}
			// A lone segment wider than the bar is cut down to fit.
			l.parts[i] = ansi.Truncate(l.parts[i], limit-x, "…")
		}
		l.starts[i] = x
		l.last = i
		x += ansi.StringWidth(l.parts[i]) + 1
	}
	return l
}

// SegmentStart returns the column segment i starts at. Segments out of range
// or scrolled out of view report the bar's left edge.
func (b SegmentBar) SegmentStart(i int) int {
	if i < 0 || i >= len(b.segments) {
		return 0
	}
	if start := b.layout().starts[i]; start >= 0 {
		return start
	}
	return SegmentBarStyle.GetPaddingLeft()
}

// HitTest returns the visible segment under column x, or -1.
func (b SegmentBar) HitTest(x int) int {
	l := b.layout()
	for i, start := range l.starts {
		if start >= 0 && x >= start && x < start+ansi.StringWidth(l.parts[i]) {
			return i
		}
	}
	return -1
}

// View renders the bar as a single horizontal line. When the segments do not
// fit, the row scrolls with the cursor and markers show hidden segments.
func (b SegmentBar) View() string {
	l := b.layout()
	var row string
	if l.scrolled {
		left, right := " ", " "
		if l.first > 0 {
			left = scrollLeftMarker
		}
		if l.last < len(b.segments)-1 {
			right = scrollRightMarker
		}
		row = left + " " + strings.Join(l.parts[l.first:l.last+1], " ") + " " + right
	} else {
		row = strings.Join(l.parts, " ")
	}

	if b.width > 0 {
		inner := max(b.width-SegmentBarStyle.GetHorizontalPadding(), 1)
		row = ansi.Truncate(row, inner, "")
		return SegmentBarStyle.Width(b.width).MaxWidth(b.width).Render(row)
	}
	return SegmentBarStyle.Render(row)
}
