// Package menu builds the nested menu descriptions attached to segments.
//
// Menus are rebuilt from the forest and the selection on every render; nothing
// here is cached or mutated in place.
package menu

// Kind distinguishes the entries of a menu.
type Kind int

const (
	KindLeaf    Kind = iota // selecting it changes the selection
	KindSubmenu             // opens a nested menu
	KindCreate              // asks the host to create a child of ID
	KindDivider             // separator before a create entry
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindSubmenu:
		return "submenu"
	case KindCreate:
		return "create"
	case KindDivider:
		return "divider"
	default:
		return "unknown"
	}
}

// Entry is one row of a menu.
type Entry[ID comparable, T any] struct {
	Kind Kind
	// ID is the item id, or the parent id for KindCreate.
	ID     ID
	Label  string
	Image  string
	Active bool
	// Inert marks a leaf row for a container that has nothing to show, e.g.
	// an item that supports adding but has no add label. It renders but
	// cannot be selected.
	Inert   bool
	Item    T
	Entries []Entry[ID, T] // only for KindSubmenu
}

// Selectable reports whether the cursor may rest on e.
func (e Entry[ID, T]) Selectable() bool {
	return e.Kind != KindDivider && !e.Inert
}

// Segment describes one top-level item of the control.
type Segment[ID comparable, T any] struct {
	ID     ID
	Label  string
	Image  string
	Active bool
	// Width is an explicit width override; 0 sizes the segment to its label.
	Width int
	Item  T
	Menu  []Entry[ID, T]
}

// HasMenu reports whether clicking the segment opens a menu.
func (s Segment[ID, T]) HasMenu() bool {
	return len(s.Menu) > 0
}
