package tui

import (
	"github.com/ruminaider/segmenu/pkg/menu"
	"github.com/ruminaider/segmenu/pkg/tree"
)

// --- Inter-component messages ---

// SegmentPressMsg is sent when a segment is clicked or activated from the
// keyboard.
type SegmentPressMsg struct{ Index int }

// EntryChosenMsg is sent when a leaf or create row of an open menu is
// activated. The menu has already closed.
type EntryChosenMsg[ID comparable, T any] struct {
	Entry menu.Entry[ID, T]
}

// MenuDismissedMsg is sent when the user backs out of a menu's top level.
type MenuDismissedMsg struct{}

// --- Messages for the host ---

// SelectionChangedMsg is emitted after the control wrote a new selection
// through its binding.
type SelectionChangedMsg[ID comparable] struct {
	Selection tree.Selection[ID]
}

// CreateRequestMsg is emitted when a "create new" row is activated. The
// control never changes the forest itself.
type CreateRequestMsg[ID comparable] struct {
	ParentID ID
}

// RefreshMsg tells the control that the host changed the items or the
// selection behind its bindings.
type RefreshMsg struct{}

// OverlayCloseMsg is emitted when an overlay is dismissed.
type OverlayCloseMsg struct {
	Result    string // text entered, empty on cancel
	Confirmed bool   // true = Enter, false = Esc
}
