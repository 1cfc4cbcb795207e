package main

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ruminaider/segmenu/internal/forest"
	"github.com/ruminaider/segmenu/pkg/menu"
	"github.com/spf13/cobra"
)

type (
	segment = menu.Segment[string, *forest.Item]
	entry   = menu.Entry[string, *forest.Item]
)

var showTable bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the segments and menus built from the forest file",
	Long: "show prints what the control would display for the current selection: " +
		"one line per segment with its menus nested below. Active rows carry a check mark.",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := forest.Load(cfg.Forest)
		if err != nil {
			return err
		}
		segments := menu.BuildSegments(file.Items, initialSelection(cfg.Selected), nil)
		if showTable {
			renderTable(cmd.OutOrStdout(), segments)
		} else {
			renderList(cmd.OutOrStdout(), segments)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showTable, "table", false, "print a flat table instead of a tree")
}

func checkMark(active bool) string {
	if active {
		return "✓ "
	}
	return ""
}

func itemText(label, id string, active bool) string {
	return checkMark(active) + label + " [" + id + "]"
}

// renderList prints segments as a tree, menus indented below their segment.
func renderList(w io.Writer, segments []segment) {
	if len(segments) == 0 {
		_, _ = io.WriteString(w, "(empty forest)\n")
		return
	}
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	for _, s := range segments {
		text := itemText(s.Label, s.ID, s.Active)
		if s.HasMenu() {
			text += " ▾"
		}
		l.AppendItem(text)
		if s.HasMenu() {
			l.Indent()
			appendEntries(l, s.Menu)
			l.UnIndent()
		}
	}
	_, _ = io.WriteString(w, l.Render()+"\n")
}

func appendEntries(l list.Writer, entries []entry) {
	for _, e := range entries {
		switch e.Kind {
		case menu.KindDivider:
			continue
		case menu.KindCreate:
			l.AppendItem("+ " + e.Label)
		case menu.KindSubmenu:
			l.AppendItem(itemText(e.Label, e.ID, e.Active) + " ›")
			l.Indent()
			appendEntries(l, e.Entries)
			l.UnIndent()
		default:
			text := itemText(e.Label, e.ID, e.Active)
			if e.Inert {
				text += " (empty)"
			}
			l.AppendItem(text)
		}
	}
}

// renderTable prints one row per segment and menu entry with its full path.
func renderTable(w io.Writer, segments []segment) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Path", "Kind", "Active"})
	for _, s := range segments {
		kind := "segment"
		if s.HasMenu() {
			kind = "segment+menu"
		}
		t.AppendRow(table.Row{s.ID, s.Label, kind, checkMark(s.Active)})
		appendRows(t, s.Menu, []string{s.Label})
	}
	t.Render()
}

func appendRows(t table.Writer, entries []entry, path []string) {
	for _, e := range entries {
		if e.Kind == menu.KindDivider {
			continue
		}
		// Full slice expression so siblings never share a backing array.
		p := append(path[:len(path):len(path)], e.Label)
		id := e.ID
		if e.Kind == menu.KindCreate {
			id = ""
		}
		t.AppendRow(table.Row{id, strings.Join(p, " › "), e.Kind.String(), checkMark(e.Active)})
		if e.Kind == menu.KindSubmenu {
			appendRows(t, e.Entries, p)
		}
	}
}
