package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/blindsearch/internal/config"
	"github.com/katalvlaran/blindsearch/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blindsearch",
		Short: "Uninformed search over the magic-square sliding puzzle",
		Long: `blindsearch slides the blank (9) of a 3x3 board until every row, column
and diagonal sums to 15, using breadth-first or depth-first search.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	pf := root.PersistentFlags()
	pf.String("config", "", "YAML file with run settings")
	pf.String("board", "", `start board, e.g. "698713254" or "6 9 8 / 7 1 3 / 2 5 4"`)
	pf.String("format", config.FormatText, "output format: text, json")
	pf.Int("max-depth", 0, "do not explore paths longer than this (0 = no limit)")
	pf.Int("max-expansions", 0, "abort after expanding this many states (0 = no limit)")
	pf.Duration("timeout", 0, "abort the search after this long (0 = no limit)")
	pf.Bool("metrics", false, "print Prometheus metrics to stderr after the run")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", string(logging.FormatText), "log format: text, json")

	root.AddCommand(newSolveCmd(), newCompareCmd(), newVersionCmd())

	return root
}

// overrideKeys maps flag names to config keys. Only flags the user changed
// are applied, so file values survive unless overridden.
var overrideKeys = map[string]string{
	"mode":           "mode",
	"board":          "board",
	"show":           "show",
	"format":         "format",
	"max-depth":      "max_depth",
	"max-expansions": "max_expansions",
	"timeout":        "timeout",
	"metrics":        "metrics",
}

// loadConfig builds the effective Config: defaults, then --config, then flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	raw := make(map[string]any)
	for flag, key := range overrideKeys {
		f := cmd.Flags().Lookup(flag)
		if f != nil && f.Changed {
			raw[key] = f.Value.String()
		}
	}
	logRaw := make(map[string]any)
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		logRaw["level"] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
		logRaw["format"] = f.Value.String()
	}
	if len(logRaw) > 0 {
		raw["log"] = logRaw
	}
	if err := cfg.Apply(raw); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}

	return cfg, cfg.Validate()
}

func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	level, _ := logging.ParseLevel(cfg.Log.Level)

	return logging.New(cmd.ErrOrStderr(), level, logging.Format(cfg.Log.Format))
}

// useColor reports whether text output goes to a color-capable terminal.
func useColor(cmd *cobra.Command, cfg config.Config) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || cfg.Format != config.FormatText {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// interactive reports whether the command reads from a terminal.
func interactive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
