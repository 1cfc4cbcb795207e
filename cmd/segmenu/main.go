package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/ruminaider/segmenu/cmd/segmenu/tui"
	"github.com/ruminaider/segmenu/internal/config"
	"github.com/ruminaider/segmenu/internal/logging"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	cfgFile   string
	cfg       config.Config
	logger    = logging.Discard()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "segmenu",
	Short: "Pick an item from a tree shown as a segmented control",
	Long: "segmenu shows the top level of an item tree as a row of segments. " +
		"Segments with children open cascading menus, and the chosen item's id is printed on exit.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: pick on a terminal, print the tree otherwise.
		if !term.IsTerminal(os.Stdin.Fd()) {
			return showCmd.RunE(cmd, args)
		}
		return pickCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	// Printing the version needs neither config nor a log file.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "segmenu %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ~/.segmenu/config.yaml)")
	pf.String("forest", "", "forest file (default ~/.segmenu/forest.yaml)")
	pf.String("selected", "", "id of the initially selected item")
	pf.String("flavor", "mocha", "color flavor: mocha, macchiato, frappe or latte")
	pf.Bool("mouse", true, "enable mouse clicks")
	pf.Bool("watch", false, "reload the forest when the file changes")
	pf.String("log-file", "", "log file (default ~/.segmenu/logs/segmenu.log)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup resolves the configuration, opens the log file and applies colors.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	cfg = loaded

	log, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, logCloser = log, closer
	slog.SetDefault(logger)
	logger.Debug("config loaded", "file", cfg.File, "forest", cfg.Forest)

	flavor, _ := tui.FlavorByName(cfg.Flavor)
	tui.SetFlavor(flavor)

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
