package menu_test

import (
	"testing"

	"github.com/ruminaider/segmenu/pkg/menu"
	"github.com/ruminaider/segmenu/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node = tree.Node[string, struct{}]

type entry = menu.Entry[string, *node]

func leaf(id string) *node {
	return &node{ID: id, Label: id}
}

func branch(id string, children ...*node) *node {
	return leaf(id).WithChildren(children...)
}

func scenarioForest() []*node {
	return []*node{
		leaf("A"),
		branch("B", leaf("B1"), leaf("B2").WithAdding("Add")),
		leaf("C").WithAdding("Add C"),
	}
}

func kinds(entries []entry) []menu.Kind {
	out := make([]menu.Kind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

func TestBuildSegments_Scenario(t *testing.T) {
	segments := menu.BuildSegments(scenarioForest(), tree.Select("B1"), nil)
	require.Len(t, segments, 3)

	a, b, c := segments[0], segments[1], segments[2]

	assert.False(t, a.HasMenu(), "A is a plain segment")
	assert.False(t, a.Active)

	require.True(t, b.HasMenu())
	assert.True(t, b.Active)
	require.Len(t, b.Menu, 2)
	assert.Equal(t, "B1", b.Menu[0].ID)
	assert.Equal(t, menu.KindLeaf, b.Menu[0].Kind)
	assert.True(t, b.Menu[0].Active)
	assert.Equal(t, "B2", b.Menu[1].ID)
	assert.Equal(t, menu.KindSubmenu, b.Menu[1].Kind, "B2 carries its own add action")
	assert.False(t, b.Menu[1].Active)
	assert.NotContains(t, kinds(b.Menu), menu.KindDivider)

	require.Len(t, b.Menu[1].Entries, 1)
	assert.Equal(t, menu.KindCreate, b.Menu[1].Entries[0].Kind)
	assert.Equal(t, "B2", b.Menu[1].Entries[0].ID)

	require.True(t, c.HasMenu())
	assert.False(t, c.Active)
	require.Len(t, c.Menu, 1)
	assert.Equal(t, menu.KindCreate, c.Menu[0].Kind)
	assert.Equal(t, "C", c.Menu[0].ID)
	assert.Equal(t, "Add C", c.Menu[0].Label)
}

func TestBuild_ChildrenOnly(t *testing.T) {
	n := branch("p", leaf("a"), leaf("b"), branch("c", leaf("c1")))

	entries, ok := menu.Build(n, tree.None[string]())
	require.True(t, ok)
	assert.Len(t, entries, len(n.Children))
	assert.Equal(t, []menu.Kind{menu.KindLeaf, menu.KindLeaf, menu.KindSubmenu}, kinds(entries))
}

func TestBuild_AddingWithChildren(t *testing.T) {
	n := branch("p", leaf("a"), leaf("b")).WithAdding("New")

	entries, ok := menu.Build(n, tree.None[string]())
	require.True(t, ok)
	assert.Equal(t, []menu.Kind{menu.KindLeaf, menu.KindLeaf, menu.KindDivider, menu.KindCreate}, kinds(entries))

	last := entries[len(entries)-1]
	assert.Equal(t, "p", last.ID)
	assert.Equal(t, "New", last.Label)
	assert.True(t, last.Selectable())
	assert.False(t, entries[2].Selectable())
}

func TestBuild_AddingWithoutChildren(t *testing.T) {
	entries, ok := menu.Build(leaf("p").WithAdding("New"), tree.None[string]())
	require.True(t, ok)
	assert.Equal(t, []menu.Kind{menu.KindCreate}, kinds(entries))
}

func TestBuild_Leaf(t *testing.T) {
	n := leaf("p")
	n.Image = "star"

	entries, ok := menu.Build(n, tree.Select("p"))
	assert.False(t, ok)
	assert.Nil(t, entries)
}

func TestBuild_AddingWithoutLabel(t *testing.T) {
	n := branch("p", leaf("a"), leaf("q").WithAdding(""))

	entries, ok := menu.Build(n, tree.None[string]())
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, menu.KindLeaf, entries[1].Kind)
	assert.True(t, entries[1].Inert)
	assert.False(t, entries[1].Selectable())

	_, ok = menu.Build(leaf("q").WithAdding(""), tree.None[string]())
	assert.False(t, ok, "no children and no add label means no menu")
}

func TestBuild_ActiveAtEveryLevel(t *testing.T) {
	n := branch("root",
		branch("x", branch("y", leaf("z"))),
		leaf("w"),
	)

	entries, ok := menu.Build(n, tree.Select("z"))
	require.True(t, ok)

	active := map[string]bool{}
	menu.Walk(entries, func(e entry, _ int) bool {
		active[e.ID] = e.Active
		return true
	})
	assert.Equal(t, map[string]bool{"x": true, "y": true, "z": true, "w": false}, active)
}

func TestBuild_Idempotent(t *testing.T) {
	forest := scenarioForest()
	sel := tree.Select("B1")

	first := menu.BuildSegments(forest, sel, nil)
	second := menu.BuildSegments(forest, sel, nil)
	assert.Equal(t, first, second)
}

func TestBuildSegments_Widths(t *testing.T) {
	segments := menu.BuildSegments(scenarioForest(), tree.None[string](), map[string]int{"B": 12})
	assert.Equal(t, 0, segments[0].Width)
	assert.Equal(t, 12, segments[1].Width)
}

func TestBuildSegments_FollowsForestShape(t *testing.T) {
	forest := scenarioForest()
	sel := tree.Select("B1")

	before := menu.BuildSegments(forest, sel, nil)
	assert.True(t, before[1].Active)

	// Move B1 under C; the same selection must now highlight C instead of B.
	b1 := forest[1].Children[0]
	forest[1].Children = forest[1].Children[1:]
	forest[2].Children = append(forest[2].Children, b1)

	after := menu.BuildSegments(forest, sel, nil)
	assert.False(t, after[1].Active)
	assert.True(t, after[2].Active)
	assert.Equal(t, []menu.Kind{menu.KindLeaf, menu.KindDivider, menu.KindCreate}, kinds(after[2].Menu))
}

func TestWalk_Depth(t *testing.T) {
	entries, _ := menu.Build(branch("r", branch("a", leaf("a1")), leaf("b")), tree.None[string]())

	var seen []string
	depths := map[string]int{}
	menu.Walk(entries, func(e entry, depth int) bool {
		seen = append(seen, e.ID)
		depths[e.ID] = depth
		return true
	})
	assert.Equal(t, []string{"a", "a1", "b"}, seen)
	assert.Equal(t, 1, depths["a1"])
}

func TestWalk_SkipSubmenu(t *testing.T) {
	entries, _ := menu.Build(branch("r", branch("a", leaf("a1")), leaf("b")), tree.None[string]())

	var seen []string
	menu.Walk(entries, func(e entry, _ int) bool {
		seen = append(seen, e.ID)
		return e.ID != "a"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestActiveIndex(t *testing.T) {
	entries, _ := menu.Build(branch("r", leaf("a"), leaf("b")), tree.Select("b"))
	assert.Equal(t, 1, menu.ActiveIndex(entries))

	entries, _ = menu.Build(branch("r", leaf("a")), tree.None[string]())
	assert.Equal(t, -1, menu.ActiveIndex(entries))
}

func TestLookup(t *testing.T) {
	entries, _ := menu.Build(branch("r", branch("a", branch("b", leaf("c")))), tree.None[string]())

	got, matched := menu.Lookup(entries, []string{"a", "b"})
	assert.Equal(t, 2, matched)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)

	got, matched = menu.Lookup(entries, []string{"a", "gone"})
	assert.Equal(t, 1, matched)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "leaf", menu.KindLeaf.String())
	assert.Equal(t, "submenu", menu.KindSubmenu.String())
	assert.Equal(t, "create", menu.KindCreate.String())
	assert.Equal(t, "divider", menu.KindDivider.String())
	assert.Equal(t, "unknown", menu.Kind(99).String())
}

func TestBuildSegments_ActiveAgreesWithResolver(t *testing.T) {
	forest := []*node{
		branch("R", branch("X", branch("Y", leaf("Z")).WithAdding("New"), leaf("X2")), leaf("R2")),
		leaf("S"),
	}
	var ids []string
	tree.Walk(forest, func(n *node, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})

	for _, id := range append(ids, "gone") {
		sel := tree.Select(id)
		for _, seg := range menu.BuildSegments(forest, sel, nil) {
			assert.Equal(t, tree.IsActive(seg.Item, sel), seg.Active, "selected %s, segment %s", id, seg.ID)
			menu.Walk(seg.Menu, func(e entry, _ int) bool {
				if e.Kind == menu.KindLeaf || e.Kind == menu.KindSubmenu {
					assert.Equal(t, tree.IsActive(e.Item, sel), e.Active, "selected %s, entry %s", id, e.ID)
				}
				return true
			})
		}
	}
}
