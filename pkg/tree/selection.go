package tree

import "fmt"

// Selection is an optional item id. The zero value selects nothing.
type Selection[ID comparable] struct {
	id  ID
	set bool
}

// None returns an empty selection.
func None[ID comparable]() Selection[ID] {
	return Selection[ID]{}
}

// Select returns a selection holding id.
func Select[ID comparable](id ID) Selection[ID] {
	return Selection[ID]{id: id, set: true}
}

// Get returns the selected id and whether one is set.
func (s Selection[ID]) Get() (ID, bool) {
	return s.id, s.set
}

// IsSet reports whether an id is selected.
func (s Selection[ID]) IsSet() bool {
	return s.set
}

// Is reports whether id is the selected id.
func (s Selection[ID]) Is(id ID) bool {
	return s.set && s.id == id
}

func (s Selection[ID]) String() string {
	if !s.set {
		return "<none>"
	}
	return fmt.Sprint(s.id)
}
