package main

import (
	"testing"

	"github.com/ruminaider/segmenu/internal/forest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem(t *testing.T) {
	path, f := writeForest(t, sampleForest)

	child, err := addItem(path, f, "projects", "Mobile app")
	require.NoError(t, err)

	saved, err := forest.Load(path)
	require.NoError(t, err)
	found, ok := saved.Find(child.ID)
	require.True(t, ok)
	assert.Equal(t, "Mobile app", found.Label)
	assert.Equal(t, []string{"Projects", "Mobile app"}, saved.PathLabels(child.ID))
}

func TestAddItem_Errors(t *testing.T) {
	path, f := writeForest(t, sampleForest)

	_, err := addItem(path, f, "inbox", "x")
	assert.ErrorIs(t, err, forest.ErrNotAddable)

	_, err = addItem(path, f, "missing", "x")
	assert.ErrorIs(t, err, forest.ErrNotFound)

	saved, err := forest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, saved.Count())
}

func TestParentOptions(t *testing.T) {
	_, f := writeForest(t, sampleForest)
	options := parentOptions(f)
	require.Len(t, options, 2)
	assert.Equal(t, "Projects", options[0].Key)
	assert.Equal(t, "projects", options[0].Value)
	assert.Equal(t, "Tags", options[1].Key)
}
