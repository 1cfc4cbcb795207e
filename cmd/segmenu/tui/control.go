package tui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/segmenu/pkg/binding"
	"github.com/ruminaider/segmenu/pkg/menu"
	"github.com/ruminaider/segmenu/pkg/tree"
)

// Options configures a Control.
type Options[ID comparable, T tree.Item[ID, T]] struct {
	// Items is the forest. The control only reads it.
	Items binding.Binding[[]T]

	// Selected is the shared selection. The control reads it on every render
	// and writes it when the user picks an item.
	Selected binding.Binding[tree.Selection[ID]]

	// OnCreate is called with the parent id when a "create new" row is
	// activated. The host is expected to add the child itself.
	OnCreate func(parentID ID)

	// Content replaces the label of menu rows. Top-level segments always show
	// their label.
	Content func(item T) string

	// Wrap decorates the output of Content, or the plain label when Content is
	// nil.
	Wrap func(content string, active bool) string

	// Widths holds explicit segment widths keyed by top-level id.
	Widths map[ID]int

	Logger *slog.Logger
}

// Control renders a forest as a segmented control whose containers open
// cascading menus.
type Control[ID comparable, T tree.Item[ID, T]] struct {
	opts     Options[ID, T]
	segments []menu.Segment[ID, T]
	bar      SegmentBar
	panel    MenuPanel[ID, T]
	status   StatusBar
	open     int // segment whose menu is shown; -1 when closed
	openID   ID
	width    int
	height   int
	log      *slog.Logger
}

// New creates a control and builds its first frame from the bindings.
func New[ID comparable, T tree.Item[ID, T]](opts Options[ID, T]) Control[ID, T] {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	c := Control[ID, T]{
		opts:   opts,
		bar:    NewSegmentBar(),
		panel:  NewMenuPanel[ID, T](),
		status: NewStatusBar(),
		open:   -1,
		log:    log,
	}
	c.panel.SetContent(opts.Content, opts.Wrap)
	c.Refresh()
	if i := c.activeSegment(); i >= 0 {
		c.bar.SetCursor(i)
	}
	return c
}

func (c Control[ID, T]) Init() tea.Cmd {
	return nil
}

// Selection returns the current selection.
func (c Control[ID, T]) Selection() tree.Selection[ID] {
	return c.opts.Selected.Get()
}

// Segments returns the segments of the last rebuild.
func (c Control[ID, T]) Segments() []menu.Segment[ID, T] {
	return c.segments
}

// MenuOpen reports whether a segment's menu is shown.
func (c Control[ID, T]) MenuOpen() bool {
	return c.panel.IsOpen()
}

// OpenSegment returns the index of the segment whose menu is shown, or -1.
func (c Control[ID, T]) OpenSegment() int {
	if !c.panel.IsOpen() {
		return -1
	}
	return c.open
}

// Panel returns the menu panel.
func (c Control[ID, T]) Panel() MenuPanel[ID, T] {
	return c.panel
}

// Bar returns the segment bar.
func (c Control[ID, T]) Bar() SegmentBar {
	return c.bar
}

// SetSize distributes the terminal dimensions.
func (c *Control[ID, T]) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.bar.SetWidth(width)
	c.status.SetWidth(width)
	if height > 0 {
		// bar + status bar + menu border (2) + breadcrumb
		c.panel.SetHeight(max(height-5, 1))
	} else {
		c.panel.SetHeight(0)
	}
}

// Refresh rebuilds segments and menus from the bindings. An open menu follows
// its segment by id and closes when the segment lost its menu.
func (c *Control[ID, T]) Refresh() {
	items := c.opts.Items.Get()
	sel := c.opts.Selected.Get()
	c.segments = menu.BuildSegments(items, sel, c.opts.Widths)

	views := make([]SegmentView, len(c.segments))
	for i, s := range c.segments {
		views[i] = SegmentView{
			Label:   s.Label,
			Image:   s.Image,
			Active:  s.Active,
			HasMenu: s.HasMenu(),
			Width:   s.Width,
		}
	}
	c.bar.SetSegments(views)

	if c.panel.IsOpen() {
		c.open = -1
		for i, s := range c.segments {
			if s.ID == c.openID {
				c.open = i
				break
			}
		}
		if c.open < 0 || !c.panel.Refresh(c.segments[c.open].Menu) {
			c.closeMenu()
		}
	}

	var labels []string
	if id, ok := sel.Get(); ok {
		for _, n := range tree.Path(items, id) {
			labels = append(labels, n.ItemLabel())
		}
	}
	c.status.SetPath(labels)
	c.status.SetMenuOpen(c.panel.IsOpen())
}

func (c Control[ID, T]) activeSegment() int {
	for i, s := range c.segments {
		if s.Active {
			return i
		}
	}
	return -1
}

func (c *Control[ID, T]) openMenu(i int) {
	seg := c.segments[i]
	c.open = i
	c.openID = seg.ID
	c.panel.Open(seg.Label, seg.Menu)
	c.bar.SetFocused(false)
	c.status.SetMenuOpen(true)
}

func (c *Control[ID, T]) closeMenu() {
	c.panel.Close()
	c.open = -1
	c.bar.SetFocused(true)
	c.status.SetMenuOpen(false)
}

func (c *Control[ID, T]) selectID(id ID) tea.Cmd {
	sel := tree.Select(id)
	c.opts.Selected.Set(sel)
	c.log.Debug("selection changed", "id", id)
	c.Refresh()
	return func() tea.Msg {
		return SelectionChangedMsg[ID]{Selection: sel}
	}
}

// pressSegment handles a click on segment i. A segment with a menu never
// fires its own action: the press always opens (or closes) the menu.
func (c Control[ID, T]) pressSegment(i int) (Control[ID, T], tea.Cmd) {
	if i < 0 || i >= len(c.segments) {
		return c, nil
	}
	c.bar.SetCursor(i)
	seg := c.segments[i]

	if seg.HasMenu() {
		if c.panel.IsOpen() && c.open == i {
			c.closeMenu()
			return c, nil
		}
		c.openMenu(i)
		return c, nil
	}

	c.closeMenu()
	if id, ok := tree.ResolveSegmentClick[ID](seg.Item); ok {
		return c, c.selectID(id)
	}
	return c, nil
}

func (c Control[ID, T]) choose(e menu.Entry[ID, T]) (Control[ID, T], tea.Cmd) {
	c.closeMenu()
	switch e.Kind {
	case menu.KindLeaf:
		if id, ok := tree.ResolveClick[ID](e.Item); ok {
			return c, c.selectID(id)
		}
	case menu.KindCreate:
		parent := e.ID
		c.log.Debug("create requested", "parent", parent)
		if c.opts.OnCreate != nil {
			c.opts.OnCreate(parent)
		}
		return c, func() tea.Msg {
			return CreateRequestMsg[ID]{ParentID: parent}
		}
	}
	return c, nil
}

func (c Control[ID, T]) mouse(msg tea.MouseMsg) (Control[ID, T], tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return c, nil
	}
	if msg.Y == 0 {
		if i := c.bar.HitTest(msg.X); i >= 0 {
			return c.pressSegment(i)
		}
		return c, nil
	}
	if !c.panel.IsOpen() {
		return c, nil
	}
	left := c.menuLeft(c.panel.View())
	if i := c.panel.HitTest(msg.X-left, msg.Y-1); i >= 0 {
		var cmd tea.Cmd
		c.panel, cmd = c.panel.Activate(i)
		return c, cmd
	}
	// A press outside the menu dismisses it.
	c.closeMenu()
	return c, nil
}

// menuLeft returns the column the open menu box starts at: under its
// segment, shifted left when the box would run past the right edge.
func (c Control[ID, T]) menuLeft(panel string) int {
	left := c.bar.SegmentStart(c.open)
	if c.width > 0 {
		left = min(left, c.width-lipgloss.Width(panel))
	}
	return max(left, 0)
}

// Update handles input for the bar or the open menu, and the messages they
// produce.
func (c Control[ID, T]) Update(msg tea.Msg) (Control[ID, T], tea.Cmd) {
	c.Refresh()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)
		return c, nil

	case RefreshMsg:
		return c, nil

	case SegmentPressMsg:
		return c.pressSegment(msg.Index)

	case EntryChosenMsg[ID, T]:
		return c.choose(msg.Entry)

	case MenuDismissedMsg:
		c.closeMenu()
		return c, nil

	case tea.MouseMsg:
		return c.mouse(msg)

	case tea.KeyMsg:
		var cmd tea.Cmd
		if c.panel.IsOpen() {
			c.panel, cmd = c.panel.Update(msg)
			c.status.SetMenuOpen(c.panel.IsOpen())
			return c, cmd
		}
		c.bar, cmd = c.bar.Update(msg)
		return c, cmd
	}

	return c, nil
}

// View renders the bar, the open menu under its segment, and the status bar
// on the last line.
func (c Control[ID, T]) View() string {
	var b strings.Builder
	b.WriteString(c.bar.View())
	lines := 1

	if c.panel.IsOpen() {
		panel := c.panel.View()
		box := lipgloss.NewStyle().
			MarginLeft(c.menuLeft(panel)).
			Render(panel)
		b.WriteString("\n")
		b.WriteString(box)
		lines += lipgloss.Height(box)
	}

	if c.height > 0 {
		for ; lines < c.height-1; lines++ {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(c.status.View())
	return b.String()
}
