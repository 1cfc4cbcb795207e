package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/segmenu/internal/forest"
	"github.com/spf13/cobra"
)

var (
	addParent string
	addLabel  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a child item under an item that supports adding",
	Long:  "add creates a new item with a random id and prints the id. Missing --parent or --label values are prompted for.",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := forest.Load(cfg.Forest)
		if err != nil {
			return err
		}

		parent := addParent
		if parent == "" {
			if parent, err = promptParent(file); err != nil {
				return err
			}
		}
		label := addLabel
		if strings.TrimSpace(label) == "" {
			if label, err = promptLabel(file, parent); err != nil {
				return err
			}
		}

		child, err := addItem(cfg.Forest, file, parent, label)
		if err != nil {
			return err
		}
		logger.Info("item created", "id", child.ID, "parent", parent)
		fmt.Fprintln(cmd.OutOrStdout(), child.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addParent, "parent", "", "id of the parent item")
	addCmd.Flags().StringVar(&addLabel, "label", "", "label of the new item")
}

// addItem adds label under parent in file and saves it to path.
func addItem(path string, file forest.File, parent, label string) (*forest.Item, error) {
	child, err := file.AddChild(parent, label)
	if err != nil {
		return nil, err
	}
	if err := forest.Save(path, file); err != nil {
		return nil, err
	}
	return child, nil
}

// parentOptions lists the items that accept children, labeled by their path.
func parentOptions(file forest.File) []huh.Option[string] {
	var options []huh.Option[string]
	for _, p := range file.AddableParents() {
		options = append(options, huh.NewOption(strings.Join(file.PathLabels(p.ID), " › "), p.ID))
	}
	return options
}

func promptParent(file forest.File) (string, error) {
	options := parentOptions(file)
	if len(options) == 0 {
		return "", errors.New("no item in the forest supports adding")
	}

	var parent string
	selectField := huh.NewSelect[string]().
		Title("Add under").
		Options(options...).
		Value(&parent)
	if err := huh.NewForm(huh.NewGroup(selectField)).Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return parent, nil
}

func promptLabel(file forest.File, parent string) (string, error) {
	title := "Label"
	if p, ok := file.Find(parent); ok && p.AddLabel != "" {
		title = p.AddLabel
	}

	var label string
	inputField := huh.NewInput().
		Title(title).
		Value(&label).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("label is required")
			}
			return nil
		})
	if err := huh.NewForm(huh.NewGroup(inputField)).Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return label, nil
}
