package menu

import "github.com/ruminaider/segmenu/pkg/tree"

// Build returns the menu attached to node: one entry per child in order,
// followed by a create entry when node supports adding and has an add label.
// A divider separates the create entry from the children above it.
//
// ok is false when the menu would be empty; the caller then attaches no menu
// and node behaves as a plain leaf.
func Build[ID comparable, T tree.Item[ID, T]](node T, sel tree.Selection[ID]) (entries []Entry[ID, T], ok bool) {
	return build(node, tree.ActiveIDs([]T{node}, sel))
}

// build does the work of Build with the active ids resolved up front, so a
// whole menu costs one walk of the tree.
func build[ID comparable, T tree.Item[ID, T]](node T, active map[ID]bool) (entries []Entry[ID, T], ok bool) {
	for _, child := range node.ItemChildren() {
		entries = append(entries, entryFor(child, active))
	}

	if node.SupportsAdding() && node.AddItemLabel() != "" {
		if len(entries) > 0 {
			entries = append(entries, Entry[ID, T]{Kind: KindDivider})
		}
		entries = append(entries, Entry[ID, T]{
			Kind:  KindCreate,
			ID:    node.ItemID(),
			Label: node.AddItemLabel(),
		})
	}

	if len(entries) == 0 {
		return nil, false
	}
	return entries, true
}

func entryFor[ID comparable, T tree.Item[ID, T]](child T, active map[ID]bool) Entry[ID, T] {
	e := Entry[ID, T]{
		Kind:   KindLeaf,
		ID:     child.ItemID(),
		Label:  child.ItemLabel(),
		Image:  child.ItemImage(),
		Active: active[child.ItemID()],
		Item:   child,
	}
	if !tree.IsContainer(child) {
		return e
	}
	if sub, ok := build(child, active); ok {
		e.Kind = KindSubmenu
		e.Entries = sub
		return e
	}
	// Supports adding without an add label: nothing to open, nothing to select.
	e.Inert = true
	return e
}

// BuildSegments returns one segment per top-level node of forest. widths
// holds optional explicit widths keyed by id.
func BuildSegments[ID comparable, T tree.Item[ID, T]](forest []T, sel tree.Selection[ID], widths map[ID]int) []Segment[ID, T] {
	active := tree.ActiveIDs(forest, sel)
	segments := make([]Segment[ID, T], 0, len(forest))
	for _, node := range forest {
		seg := Segment[ID, T]{
			ID:     node.ItemID(),
			Label:  node.ItemLabel(),
			Image:  node.ItemImage(),
			Active: active[node.ItemID()],
			Width:  widths[node.ItemID()],
			Item:   node,
		}
		if entries, ok := build(node, active); ok {
			seg.Menu = entries
		}
		segments = append(segments, seg)
	}
	return segments
}

// Walk visits entries depth-first, passing the nesting depth (0 for the
// entries passed in). Returning false from fn skips the entry's submenu.
func Walk[ID comparable, T any](entries []Entry[ID, T], fn func(e Entry[ID, T], depth int) bool) {
	walk(entries, 0, fn)
}

func walk[ID comparable, T any](entries []Entry[ID, T], depth int, fn func(e Entry[ID, T], depth int) bool) {
	for _, e := range entries {
		if fn(e, depth) && e.Kind == KindSubmenu {
			walk(e.Entries, depth+1, fn)
		}
	}
}

// ActiveIndex returns the index of the first active entry, or -1.
func ActiveIndex[ID comparable, T any](entries []Entry[ID, T]) int {
	for i, e := range entries {
		if e.Active {
			return i
		}
	}
	return -1
}

// Lookup follows a chain of submenu ids from entries and returns the entries
// of the deepest submenu reached and how many ids were matched.
func Lookup[ID comparable, T any](entries []Entry[ID, T], ids []ID) ([]Entry[ID, T], int) {
	matched := 0
	for _, id := range ids {
		next := -1
		for i, e := range entries {
			if e.Kind == KindSubmenu && e.ID == id {
				next = i
				break
			}
		}
		if next < 0 {
			break
		}
		entries = entries[next].Entries
		matched++
	}
	return entries, matched
}
