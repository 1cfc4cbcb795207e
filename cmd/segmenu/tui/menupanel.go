package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/segmenu/pkg/menu"
)

// menuHeaderRows is the number of rows above the first entry inside the box:
// the top border and the breadcrumb line.
const menuHeaderRows = 2

// menuLevel tracks a position in the navigation stack.
type menuLevel[ID comparable, T any] struct {
	id      ID // submenu entry that opened this level; unused for the root
	title   string
	entries []menu.Entry[ID, T]
	cursor  int
}

// MenuPanel is a cascading menu. Drilling into a submenu pushes a level;
// backing out pops it.
type MenuPanel[ID comparable, T any] struct {
	stack   []menuLevel[ID, T] // stack[0] is the segment's own menu
	offset  int                // first visible row of the current level
	height  int                // visible rows; 0 = unlimited
	content func(item T) string
	wrap    func(content string, active bool) string
}

// NewMenuPanel creates a closed menu panel.
func NewMenuPanel[ID comparable, T any]() MenuPanel[ID, T] {
	return MenuPanel[ID, T]{}
}

// SetContent installs the custom row content hook and its wrapper. Either may
// be nil.
func (p *MenuPanel[ID, T]) SetContent(content func(item T) string, wrap func(content string, active bool) string) {
	p.content = content
	p.wrap = wrap
}

// SetHeight limits the number of visible rows; 0 removes the limit.
func (p *MenuPanel[ID, T]) SetHeight(h int) {
	if h < 0 {
		h = 0
	}
	p.height = h
	p.ensureVisible()
}

// Open shows entries as the root level, with the cursor on the active entry
// when there is one.
func (p *MenuPanel[ID, T]) Open(title string, entries []menu.Entry[ID, T]) {
	p.stack = []menuLevel[ID, T]{{title: title, entries: entries, cursor: initialCursor(entries)}}
	p.offset = 0
	p.ensureVisible()
}

// Close hides the panel.
func (p *MenuPanel[ID, T]) Close() {
	p.stack = nil
	p.offset = 0
}

// IsOpen reports whether the panel is shown.
func (p MenuPanel[ID, T]) IsOpen() bool {
	return len(p.stack) > 0
}

// Depth returns the number of open levels.
func (p MenuPanel[ID, T]) Depth() int {
	return len(p.stack)
}

// Entries returns the rows of the current level.
func (p MenuPanel[ID, T]) Entries() []menu.Entry[ID, T] {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1].entries
}

// Cursor returns the cursor of the current level, or -1 when closed.
func (p MenuPanel[ID, T]) Cursor() int {
	if len(p.stack) == 0 {
		return -1
	}
	return p.stack[len(p.stack)-1].cursor
}

// Breadcrumb returns the titles of the open levels, outermost first.
func (p MenuPanel[ID, T]) Breadcrumb() []string {
	titles := make([]string, len(p.stack))
	for i, l := range p.stack {
		titles[i] = l.title
	}
	return titles
}

// Refresh swaps in a rebuilt root menu and re-resolves the open levels by id.
// Levels whose submenu disappeared are popped. It returns false when entries
// is empty and the panel closed.
func (p *MenuPanel[ID, T]) Refresh(entries []menu.Entry[ID, T]) bool {
	if len(p.stack) == 0 {
		return false
	}
	if len(entries) == 0 {
		p.Close()
		return false
	}

	ids := make([]ID, 0, len(p.stack)-1)
	for _, l := range p.stack[1:] {
		ids = append(ids, l.id)
	}

	p.stack = slices.Clone(p.stack)
	p.stack[0].entries = entries
	level := entries
	for i, id := range ids {
		next, matched := menu.Lookup(level, []ID{id})
		if matched == 0 {
			p.stack = p.stack[:i+1]
			break
		}
		p.stack[i+1].entries = next
		level = next
	}

	for i := range p.stack {
		l := &p.stack[i]
		if l.cursor >= len(l.entries) || l.cursor < 0 || !l.entries[l.cursor].Selectable() {
			l.cursor = nearestSelectable(l.entries, l.cursor)
		}
	}
	p.ensureVisible()
	return true
}

func initialCursor[ID comparable, T any](entries []menu.Entry[ID, T]) int {
	if i := menu.ActiveIndex(entries); i >= 0 && entries[i].Selectable() {
		return i
	}
	return nextSelectable(entries, -1, 1)
}

// nextSelectable returns the first selectable index after from in direction
// dir, or from when there is none.
func nextSelectable[ID comparable, T any](entries []menu.Entry[ID, T], from, dir int) int {
	for i := from + dir; i >= 0 && i < len(entries); i += dir {
		if entries[i].Selectable() {
			return i
		}
	}
	return from
}

func nearestSelectable[ID comparable, T any](entries []menu.Entry[ID, T], from int) int {
	if from >= len(entries) {
		from = len(entries)
	}
	if i := nextSelectable(entries, from, -1); i != from && i >= 0 {
		return i
	}
	return nextSelectable(entries, -1, 1)
}

func (p *MenuPanel[ID, T]) current() *menuLevel[ID, T] {
	return &p.stack[len(p.stack)-1]
}

// ensureVisible scrolls so the cursor row is inside the visible window.
func (p *MenuPanel[ID, T]) ensureVisible() {
	if len(p.stack) == 0 || p.height == 0 {
		p.offset = 0
		return
	}
	l := p.current()
	if l.cursor < p.offset {
		p.offset = l.cursor
	}
	if l.cursor >= p.offset+p.height {
		p.offset = l.cursor - p.height + 1
	}
	if maxOffset := len(l.entries) - p.height; p.offset > maxOffset {
		p.offset = max(maxOffset, 0)
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

func chosen[ID comparable, T any](e menu.Entry[ID, T]) tea.Cmd {
	return func() tea.Msg {
		return EntryChosenMsg[ID, T]{Entry: e}
	}
}

func dismissed() tea.Msg {
	return MenuDismissedMsg{}
}

// Activate moves the cursor to row i and activates it: submenus open, leaf
// and create rows close the panel and emit EntryChosenMsg.
func (p MenuPanel[ID, T]) Activate(i int) (MenuPanel[ID, T], tea.Cmd) {
	if len(p.stack) == 0 {
		return p, nil
	}
	p.stack = slices.Clone(p.stack)
	l := p.current()
	if i < 0 || i >= len(l.entries) || !l.entries[i].Selectable() {
		return p, nil
	}
	l.cursor = i
	e := l.entries[i]

	switch e.Kind {
	case menu.KindSubmenu:
		p.stack = append(p.stack, menuLevel[ID, T]{
			id:      e.ID,
			title:   e.Label,
			entries: e.Entries,
			cursor:  initialCursor(e.Entries),
		})
		p.offset = 0
		p.ensureVisible()
		return p, nil
	case menu.KindLeaf, menu.KindCreate:
		p.Close()
		return p, chosen(e)
	}
	return p, nil
}

// back pops one level; at the root it closes the panel.
func (p MenuPanel[ID, T]) back() (MenuPanel[ID, T], tea.Cmd) {
	if len(p.stack) > 1 {
		p.stack = p.stack[:len(p.stack)-1]
		p.offset = 0
		p.ensureVisible()
		return p, nil
	}
	p.Close()
	return p, dismissed
}

// Update handles key messages while the panel is open.
func (p MenuPanel[ID, T]) Update(msg tea.Msg) (MenuPanel[ID, T], tea.Cmd) {
	if len(p.stack) == 0 {
		return p, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		p.stack = slices.Clone(p.stack)
		l := p.current()
		switch msg.String() {
		case "up", "k":
			l.cursor = nextSelectable(l.entries, l.cursor, -1)
		case "down", "j":
			l.cursor = nextSelectable(l.entries, l.cursor, 1)
		case "home":
			l.cursor = nextSelectable(l.entries, -1, 1)
		case "end":
			l.cursor = nextSelectable(l.entries, len(l.entries), -1)
		case "enter", " ":
			return p.Activate(l.cursor)
		case "right", "l":
			if l.cursor >= 0 && l.cursor < len(l.entries) && l.entries[l.cursor].Kind == menu.KindSubmenu {
				return p.Activate(l.cursor)
			}
		case "esc", "left", "h", "backspace":
			return p.back()
		}
		p.ensureVisible()
	}
	return p, nil
}

// HitTest returns the entry under (x, y), relative to the top-left corner of
// the rendered box, or -1.
func (p MenuPanel[ID, T]) HitTest(x, y int) int {
	if len(p.stack) == 0 || x < 0 || x >= lipgloss.Width(p.View()) {
		return -1
	}
	row := y - menuHeaderRows
	if row < 0 || (p.height > 0 && row >= p.height) {
		return -1
	}
	i := p.offset + row
	entries := p.Entries()
	if i >= len(entries) || !entries[i].Selectable() {
		return -1
	}
	return i
}

func (p MenuPanel[ID, T]) entryText(e menu.Entry[ID, T]) string {
	var text string
	if p.content != nil && (e.Kind == menu.KindLeaf || e.Kind == menu.KindSubmenu) {
		text = p.content(e.Item)
	} else {
		text = renderLabel(e.Image, e.Label)
	}
	if p.wrap != nil && e.Kind != menu.KindCreate {
		text = p.wrap(text, e.Active)
	}
	return text
}

func (p MenuPanel[ID, T]) renderRow(e menu.Entry[ID, T], current bool, width int) string {
	if e.Kind == menu.KindDivider {
		return "    " + MenuDividerStyle.Render(strings.Repeat("─", max(width-4, 1)))
	}

	text := p.entryText(e)
	switch {
	case e.Kind == menu.KindCreate:
		text = MenuCreateStyle.Render("+ " + text)
	case e.Inert:
		text = DimStyle.Render(text)
	case current:
		text = MenuCursorStyle.Render(text)
	}
	if e.Kind == menu.KindSubmenu {
		text += " " + DimStyle.Render("›")
	}
	return renderCursor(current) + renderCheck(e.Active) + text
}

// View renders the current level inside a bordered box.
func (p MenuPanel[ID, T]) View() string {
	if len(p.stack) == 0 {
		return ""
	}
	l := p.stack[len(p.stack)-1]

	title := strings.Join(p.Breadcrumb(), " › ")
	if p.height > 0 && len(l.entries) > p.height {
		title += DimStyle.Render(fmt.Sprintf("  %d/%d", l.cursor+1, len(l.entries)))
	}
	title = MenuTitleStyle.Render(title)

	width := max(MenuMinWidth, ansi.StringWidth(title))
	for _, e := range l.entries {
		if e.Kind != menu.KindDivider {
			width = max(width, ansi.StringWidth(p.renderRow(e, false, 0)))
		}
	}

	rows := make([]string, len(l.entries))
	for i, e := range l.entries {
		rows[i] = p.renderRow(e, i == l.cursor, width)
	}

	body := strings.Join(rows, "\n")
	if p.height > 0 && len(rows) > p.height {
		vp := viewport.New(width, p.height)
		vp.SetContent(body)
		vp.SetYOffset(p.offset)
		body = vp.View()
	}

	return MenuBoxStyle.Render(title + "\n" + body)
}
