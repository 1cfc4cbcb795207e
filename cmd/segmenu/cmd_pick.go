package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/segmenu/internal/forest"
	"github.com/ruminaider/segmenu/pkg/tree"
	"github.com/spf13/cobra"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose an item interactively and print its id",
	Long: "pick opens the segmented control over the forest file. Choosing an item prints its id and exits; " +
		"\"create new\" entries prompt for a label and save the new item to the file.",
	RunE: runPick,
}

func initialSelection(id string) tree.Selection[string] {
	if id == "" {
		return tree.None[string]()
	}
	return tree.Select(id)
}

func runPick(cmd *cobra.Command, args []string) error {
	// TTY guard: the control needs an interactive terminal.
	if !term.IsTerminal(os.Stdin.Fd()) {
		return errors.New("pick needs an interactive terminal; use 'segmenu show' to print the tree")
	}

	file, err := forest.Load(cfg.Forest)
	if err != nil {
		return err
	}
	logger.Info("forest loaded", "path", cfg.Forest, "items", file.Count())

	model := newPicker(cfg.Forest, file, initialSelection(cfg.Selected), cfg.Widths, logger)
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		updated, _ := model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		model = updated.(picker)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if cfg.Watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			err := forest.Watch(ctx, cfg.Forest, forest.DefaultDebounce, logger, func() {
				p.Send(forestChangedMsg{})
			})
			if err != nil {
				logger.Warn("watch stopped", "err", err)
			}
		}()
	}

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result := finalModel.(picker)
	if err := result.Err(); err != nil {
		return err
	}
	if id, ok := result.Selection(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
