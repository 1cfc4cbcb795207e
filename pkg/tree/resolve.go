package tree

type frame[T any] struct {
	node  T
	depth int
}

// Walk visits every node of forest in pre-order, passing its depth (0 for
// top-level nodes). Returning false from fn stops the walk. Walk keeps its own
// stack, so arbitrarily deep trees are safe.
func Walk[T Branch[T]](forest []T, fn func(node T, depth int) bool) {
	stack := make([]frame[T], 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, frame[T]{forest[i], 0})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.depth) {
			return
		}
		children := f.node.ItemChildren()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame[T]{children[i], f.depth + 1})
		}
	}
}

// IsActive reports whether sel holds node's id or the id of any node below
// it. It is false for an empty selection and for ids not under node.
func IsActive[ID comparable, T Item[ID, T]](node T, sel Selection[ID]) bool {
	id, ok := sel.Get()
	if !ok {
		return false
	}
	active := false
	Walk([]T{node}, func(n T, _ int) bool {
		if n.ItemID() == id {
			active = true
			return false
		}
		return true
	})
	return active
}

// ActiveIDs returns the ids IsActive reports true for within forest: the
// selected node and its ancestors. It costs one walk, so callers highlighting
// a whole tree use it instead of calling IsActive per node. The result is
// empty when the selection is unset or not in forest.
func ActiveIDs[ID comparable, T Item[ID, T]](forest []T, sel Selection[ID]) map[ID]bool {
	id, ok := sel.Get()
	if !ok {
		return nil
	}
	path := Path(forest, id)
	active := make(map[ID]bool, len(path))
	for _, n := range path {
		active[n.ItemID()] = true
	}
	return active
}

// ResolveClick returns the selection produced by clicking node in a menu.
// Leaves yield their own id. Containers yield ok == false: their menu opens
// and the selection does not change.
func ResolveClick[ID comparable, T Item[ID, T]](node T) (id ID, ok bool) {
	if IsContainer(node) {
		return id, false
	}
	return node.ItemID(), true
}

// ResolveSegmentClick returns the selection produced by clicking a top-level
// segment that has no attached menu. Such a segment is a plain toggle, so the
// click always selects it.
func ResolveSegmentClick[ID comparable, T Item[ID, T]](node T) (ID, bool) {
	return node.ItemID(), true
}

// Path returns the chain of nodes from a top-level node down to the node with
// id, or nil when no node has that id.
func Path[ID comparable, T Item[ID, T]](forest []T, id ID) []T {
	var path, found []T
	Walk(forest, func(n T, depth int) bool {
		path = append(path[:depth], n)
		if n.ItemID() == id {
			found = append([]T(nil), path...)
			return false
		}
		return true
	})
	return found
}

// Find returns the first node with id in pre-order.
func Find[ID comparable, T Item[ID, T]](forest []T, id ID) (T, bool) {
	var (
		found T
		ok    bool
	)
	Walk(forest, func(n T, _ int) bool {
		if n.ItemID() == id {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// Count returns the number of nodes in forest.
func Count[T Branch[T]](forest []T) int {
	n := 0
	Walk(forest, func(T, int) bool {
		n++
		return true
	})
	return n
}

// DuplicateIDs returns every id that appears on more than one node, in the
// order the second occurrence is met. Highlighting is undefined for forests
// with duplicates.
func DuplicateIDs[ID comparable, T Item[ID, T]](forest []T) []ID {
	seen := make(map[ID]int)
	var dups []ID
	Walk(forest, func(n T, _ int) bool {
		id := n.ItemID()
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
		return true
	})
	return dups
}
