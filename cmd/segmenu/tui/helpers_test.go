package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/segmenu/pkg/binding"
	"github.com/ruminaider/segmenu/pkg/tree"
)

type node = tree.Node[string, struct{}]

func leaf(id string) *node {
	return &node{ID: id, Label: id}
}

func branch(id string, children ...*node) *node {
	return leaf(id).WithChildren(children...)
}

// scenarioForest is A(leaf), B(B1, B2 +add), C(+add, no children).
func scenarioForest() []*node {
	return []*node{
		leaf("A"),
		branch("B", leaf("B1"), leaf("B2").WithAdding("Add")),
		leaf("C").WithAdding("Add C"),
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// exec runs cmd and returns the messages it produced, flattening batches.
func exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, exec(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

type testControl = Control[string, *node]

// harness owns the state behind a control's bindings.
type harness struct {
	forest  []*node
	sel     tree.Selection[string]
	created []string
}

func newHarness(forest []*node) *harness {
	return &harness{forest: forest}
}

func (h *harness) options() Options[string, *node] {
	return Options[string, *node]{
		Items:    binding.Var(&h.forest),
		Selected: binding.Var(&h.sel),
		OnCreate: func(parent string) { h.created = append(h.created, parent) },
	}
}

func (h *harness) control() testControl {
	return New(h.options())
}

// send feeds msg to c and keeps feeding every message the resulting commands
// produce until none are left. It returns all produced messages in order.
func send(c testControl, msg tea.Msg) (testControl, []tea.Msg) {
	var produced []tea.Msg
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		var cmd tea.Cmd
		c, cmd = c.Update(m)
		out := exec(cmd)
		produced = append(produced, out...)
		queue = append(queue, out...)
	}
	return c, produced
}

func keys(c testControl, ks ...string) (testControl, []tea.Msg) {
	var all []tea.Msg
	for _, k := range ks {
		var out []tea.Msg
		c, out = send(c, keyMsg(k))
		all = append(all, out...)
	}
	return c, all
}
