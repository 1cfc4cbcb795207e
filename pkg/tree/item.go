// Package tree defines the item model shown by the segmented control and the
// selection queries that run over it.
//
// A forest is an ordered slice of top-level items. Items are identified by an
// id that is unique across the whole forest, so a selection is a single id
// with no path context.
package tree

// Branch is the part of an item that decides whether it is a container.
type Branch[T any] interface {
	ItemChildren() []T
	SupportsAdding() bool
}

// Item is the capability set a host type provides to appear in the control.
// T is the host type itself, so children keep their concrete type:
//
//	type Folder struct { ... }
//	func (f *Folder) ItemChildren() []*Folder { ... }
//
// makes *Folder an Item[string, *Folder].
type Item[ID comparable, T any] interface {
	Branch[T]
	ItemID() ID
	ItemLabel() string
	// ItemImage names a decorative icon. Empty means none.
	ItemImage() string
	// AddItemLabel is the text of the synthetic "create new child" entry.
	// It only matters when SupportsAdding is true; empty disables the entry.
	AddItemLabel() string
}

// IsContainer reports whether node surfaces a menu instead of being
// selectable: it has children or it supports adding them.
func IsContainer[T Branch[T]](node T) bool {
	return len(node.ItemChildren()) > 0 || node.SupportsAdding()
}

// Node is a ready-made Item carrying an arbitrary payload.
type Node[ID comparable, P any] struct {
	ID       ID
	Label    string
	Image    string
	Children []*Node[ID, P]
	Adding   bool
	AddLabel string
	Payload  P
}

func (n *Node[ID, P]) ItemID() ID { return n.ID }
func (n *Node[ID, P]) ItemLabel() string { return n.Label }
func (n *Node[ID, P]) ItemImage() string { return n.Image }
func (n *Node[ID, P]) ItemChildren() []*Node[ID, P] { return n.Children }
func (n *Node[ID, P]) SupportsAdding() bool { return n.Adding }
func (n *Node[ID, P]) AddItemLabel() string { return n.AddLabel }

// WithChildren appends children and returns n for chaining.
func (n *Node[ID, P]) WithChildren(children ...*Node[ID, P]) *Node[ID, P] {
	n.Children = append(n.Children, children...)
	return n
}

// WithAdding enables the "create new child" entry with the given label.
func (n *Node[ID, P]) WithAdding(label string) *Node[ID, P] {
	n.Adding = true
	n.AddLabel = label
	return n
}
