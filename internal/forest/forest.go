// Package forest stores the item forest shown by segmenu in a YAML file.
package forest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ruminaider/segmenu/pkg/tree"
	"go.yaml.in/yaml/v3"
)

var (
	// ErrDuplicateID is returned when two items share an id.
	ErrDuplicateID = errors.New("duplicate item id")
	// ErrEmptyID is returned for an item without an id.
	ErrEmptyID = errors.New("empty item id")
	// ErrNotFound is returned when no item has the requested id.
	ErrNotFound = errors.New("item not found")
	// ErrNotAddable is returned when adding under an item that does not
	// support adding.
	ErrNotAddable = errors.New("item does not support adding")
	// ErrEmptyLabel is returned when creating an item with a blank label.
	ErrEmptyLabel = errors.New("empty label")
)

// Item is one node of the forest file.
type Item struct {
	ID       string  `yaml:"id"`
	Label    string  `yaml:"label"`
	Image    string  `yaml:"image,omitempty"`
	Adding   bool    `yaml:"supports_adding,omitempty"`
	AddLabel string  `yaml:"add_label,omitempty"`
	Children []*Item `yaml:"children,omitempty"`
}

func (i *Item) ItemID() string { return i.ID }
func (i *Item) ItemLabel() string { return i.Label }
func (i *Item) ItemImage() string { return i.Image }
func (i *Item) ItemChildren() []*Item { return i.Children }
func (i *Item) SupportsAdding() bool { return i.Adding }
func (i *Item) AddItemLabel() string { return i.AddLabel }

// File is the document stored on disk.
type File struct {
	Items []*Item `yaml:"items"`
}

// Parse decodes and validates a forest document.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing forest: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Marshal serializes f to YAML.
func Marshal(f File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Load reads and parses the forest file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading forest: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Save writes f to path through a temporary file in the same directory, so
// readers never observe a partial document.
func Save(path string, f File) error {
	if err := f.Validate(); err != nil {
		return err
	}
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling forest: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating forest directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing forest: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing forest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing forest: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing forest: %w", err)
	}
	return nil
}

// Validate reports empty and duplicate ids.
func (f File) Validate() error {
	var errs []error
	tree.Walk(f.Items, func(n *Item, _ int) bool {
		if strings.TrimSpace(n.ID) == "" {
			errs = append(errs, fmt.Errorf("%w (label %q)", ErrEmptyID, n.Label))
		}
		return true
	})
	for _, id := range tree.DuplicateIDs[string](f.Items) {
		if id != "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateID, id))
		}
	}
	return errors.Join(errs...)
}

// Find returns the item with id.
func (f File) Find(id string) (*Item, bool) {
	return tree.Find(f.Items, id)
}

// Count returns the number of items at every level.
func (f File) Count() int {
	return tree.Count(f.Items)
}

// AddChild appends a new item labeled label under parentID and returns it.
// The parent must support adding. The new item gets a fresh random id.
func (f File) AddChild(parentID, label string) (*Item, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	parent, ok := f.Find(parentID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, parentID)
	}
	if !parent.Adding {
		return nil, fmt.Errorf("%w: %s", ErrNotAddable, parentID)
	}
	child := &Item{ID: uuid.NewString(), Label: label}
	parent.Children = append(parent.Children, child)
	return child, nil
}

// AddableParents returns every item that supports adding, in pre-order.
func (f File) AddableParents() []*Item {
	var out []*Item
	tree.Walk(f.Items, func(n *Item, _ int) bool {
		if n.Adding {
			out = append(out, n)
		}
		return true
	})
	return out
}

// PathLabels returns the labels from the top-level item down to id, or nil
// when id is absent.
func (f File) PathLabels(id string) []string {
	var labels []string
	for _, n := range tree.Path(f.Items, id) {
		labels = append(labels, n.Label)
	}
	return labels
}
