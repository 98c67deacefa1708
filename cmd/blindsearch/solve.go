package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindsearch/internal/config"
	"github.com/katalvlaran/blindsearch/internal/metrics"
	"github.com/katalvlaran/blindsearch/internal/render"
	"github.com/katalvlaran/blindsearch/search"
)

// errModeRequired is returned when no mode is configured and stdin is not
// a terminal to prompt on.
var errModeRequired = errors.New("search mode required: pass --mode bfs|dfs")

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a magic square reachable from the start board",
		Long: `Runs one search and prints the path from the start board to the goal.

Examples:
  blindsearch solve --mode bfs
  blindsearch solve --mode dfs --board "6 9 8 / 7 1 3 / 2 5 4" --show
  blindsearch solve --config run.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: runSolve,
	}
	cmd.Flags().String("mode", "", "search mode: bfs (largura) or dfs (profundidade); prompted if omitted")
	cmd.Flags().Bool("show", false, "print every expanded state in visit order")

	return cmd
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	mode, err := resolveMode(cmd, cfg)
	if err != nil {
		return err
	}

	runID := uuid.Must(uuid.NewV7()).String()
	log.Info("search started", "run_id", runID, "mode", mode, "start", cfg.Board.Key())
	log.Debug("reachable goals", "run_id", runID, "count", len(cfg.Board.ReachableGoals()))

	out := render.New(cmd.OutOrStdout(), useColor(cmd, cfg))
	opts, cancel := cfg.SearchOptions()
	defer cancel()
	text := cfg.Format == config.FormatText
	if cfg.Show && text {
		out.VisitHeader()
		opts = append(opts, search.WithOnExpand(out.Visit))
	} else if cfg.Show {
		log.Warn("visit order is only printed in text format", "run_id", runID, "format", cfg.Format)
	}

	rec := metrics.New()
	begin := time.Now()
	res, err := search.Search(mode, cfg.Board, opts...)
	elapsed := time.Since(begin)
	rec.Observe(mode, res, err, elapsed)
	if cfg.Metrics {
		defer func() {
			if werr := rec.Write(cmd.ErrOrStderr()); werr != nil {
				log.Warn("metrics dump failed", "run_id", runID, "error", werr)
			}
		}()
	}
	if err != nil {
		log.Error("search failed", "run_id", runID, "error", err)
		return fmt.Errorf("solve: %w", err)
	}
	log.Info("search finished",
		"run_id", runID,
		"outcome", res.Outcome,
		"steps", res.Steps(),
		"expanded", res.Stats.Expanded,
		"generated", res.Stats.Generated,
		"elapsed", elapsed,
	)

	if !text {
		return out.JSON(render.NewReport(runID, cfg.Board, res, elapsed))
	}
	out.Path(res, elapsed)

	return nil
}

// resolveMode returns the configured mode or, on a terminal, asks for one.
func resolveMode(cmd *cobra.Command, cfg config.Config) (search.Mode, error) {
	if cfg.Mode != "" {
		return search.ParseMode(cfg.Mode)
	}
	if !interactive(cmd) {
		return 0, errModeRequired
	}

	return promptMode(cmd.InOrStdin(), cmd.OutOrStdout())
}

// promptMode asks until a valid mode is entered. It fails only when in is
// exhausted.
func promptMode(in io.Reader, out io.Writer) (search.Mode, error) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Choose the search mode (bfs/dfs): ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, errModeRequired
		}
		mode, err := search.ParseMode(sc.Text())
		if err == nil {
			fmt.Fprintln(out)
			return mode, nil
		}
		if strings.TrimSpace(sc.Text()) != "" {
			fmt.Fprintln(out, "Invalid option.")
		}
		fmt.Fprintln(out)
	}
}
