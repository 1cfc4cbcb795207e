package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/segmenu/cmd/segmenu/tui"
	"github.com/ruminaider/segmenu/internal/forest"
	"github.com/ruminaider/segmenu/pkg/binding"
	"github.com/ruminaider/segmenu/pkg/tree"
)

// forestChangedMsg is sent by the file watcher after the forest file changed
// on disk.
type forestChangedMsg struct{}

// pickState is shared by every copy of the picker model. The control's
// bindings read and write it directly.
type pickState struct {
	file forest.File
	sel  tree.Selection[string]
}

// picker hosts the control, owns the forest file and opens the creation
// overlay when the control asks for a new item.
type picker struct {
	path    string
	state   *pickState
	control tui.Control[string, *forest.Item]
	overlay tui.Overlay
	parent  string // parent of the item being created
	width   int
	height  int
	chosen  bool
	err     error
	log     *slog.Logger
}

func newPicker(path string, file forest.File, sel tree.Selection[string], widths map[string]int, log *slog.Logger) picker {
	st := &pickState{file: file, sel: sel}
	control := tui.New(tui.Options[string, *forest.Item]{
		Items:    binding.New(func() []*forest.Item { return st.file.Items }, nil),
		Selected: binding.Var(&st.sel),
		Widths:   widths,
		Logger:   log,
	})
	return picker{
		path:    path,
		state:   st,
		control: control,
		log:     log,
	}
}

// Selection returns the id chosen by the user, if any.
func (p picker) Selection() (string, bool) {
	if !p.chosen {
		return "", false
	}
	return p.state.sel.Get()
}

// Err returns the error that ended the picker.
func (p picker) Err() error {
	return p.err
}

func (p picker) Init() tea.Cmd { return nil }

func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		p.overlay.SetWidth(tui.OverlayMaxWidth(p.width))

	case tea.KeyMsg:
		if p.overlay.Active() {
			var cmd tea.Cmd
			p.overlay, cmd = p.overlay.Update(msg)
			return p, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return p, tea.Quit
		case "esc":
			if !p.control.MenuOpen() {
				return p, tea.Quit
			}
		}

	case tea.MouseMsg:
		if p.overlay.Active() {
			return p, nil
		}

	case tui.SelectionChangedMsg[string]:
		id, _ := msg.Selection.Get()
		p.log.Info("item selected", "id", id)
		p.chosen = true
		return p, tea.Quit

	case tui.CreateRequestMsg[string]:
		return p.openCreate(msg.ParentID), textinput.Blink

	case tui.OverlayCloseMsg:
		if !msg.Confirmed {
			return p, nil
		}
		return p.create(msg.Result)

	case forestChangedMsg:
		return p.reload()
	}

	var cmd, overlayCmd tea.Cmd
	p.control, cmd = p.control.Update(msg)
	if p.overlay.Active() {
		// Cursor blinks and other input internals.
		p.overlay, overlayCmd = p.overlay.Update(msg)
	}
	return p, tea.Batch(cmd, overlayCmd)
}

func (p picker) openCreate(parentID string) picker {
	title := "New item"
	if parent, ok := p.state.file.Find(parentID); ok && parent.AddLabel != "" {
		title = parent.AddLabel
	}
	p.parent = parentID
	p.overlay = tui.NewTextInputOverlay(title, "label").
		WithContext("in " + strings.Join(p.state.file.PathLabels(parentID), " › "))
	p.overlay.SetWidth(tui.OverlayMaxWidth(p.width))
	return p
}

// create adds the entered label under the pending parent, saves the file and
// selects the new item.
func (p picker) create(label string) (tea.Model, tea.Cmd) {
	child, err := p.state.file.AddChild(p.parent, label)
	if err != nil {
		p.err = fmt.Errorf("adding item: %w", err)
		return p, tea.Quit
	}
	if err := forest.Save(p.path, p.state.file); err != nil {
		p.err = err
		return p, tea.Quit
	}
	p.log.Info("item created", "id", child.ID, "parent", p.parent)
	p.parent = ""
	// The control never changes the selection on a create request. Selecting
	// the new item is this host's choice, made after the item exists.
	p.state.sel = tree.Select(child.ID)

	var cmd tea.Cmd
	p.control, cmd = p.control.Update(tui.RefreshMsg{})
	return p, cmd
}

// reload re-reads the forest file. A file that fails to parse is ignored so
// a half-saved edit does not end the session.
func (p picker) reload() (tea.Model, tea.Cmd) {
	file, err := forest.Load(p.path)
	if err != nil {
		p.log.Warn("reload failed", "path", p.path, "err", err)
		return p, nil
	}
	p.log.Debug("forest reloaded", "items", file.Count())
	p.state.file = file

	var cmd tea.Cmd
	p.control, cmd = p.control.Update(tui.RefreshMsg{})
	return p, cmd
}

func (p picker) View() string {
	base := p.control.View()
	if p.overlay.Active() {
		return tui.Composite(base, p.overlay.View(), p.width, p.height)
	}
	return base
}
