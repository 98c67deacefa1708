package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/blindsearch/internal/config"
	"github.com/katalvlaran/blindsearch/internal/metrics"
	"github.com/katalvlaran/blindsearch/internal/render"
	"github.com/katalvlaran/blindsearch/search"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run breadth-first and depth-first search on the same board",
		Long: `Runs both modes with the same limits and prints path length,
expanded and generated states, peak frontier and elapsed time side by side.`,
		Args: cobra.NoArgs,
		RunE: runCompare,
	}
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	runID := uuid.Must(uuid.NewV7()).String()
	rec := metrics.New()

	rows := make([]render.Comparison, 0, 2)
	for _, mode := range []search.Mode{search.BreadthFirst, search.DepthFirst} {
		opts, cancel := cfg.SearchOptions()
		begin := time.Now()
		res, err := search.Search(mode, cfg.Board, opts...)
		elapsed := time.Since(begin)
		cancel()
		rec.Observe(mode, res, err, elapsed)
		if err != nil {
			log.Error("search failed", "run_id", runID, "mode", mode, "error", err)
			return fmt.Errorf("compare %s: %w", mode, err)
		}
		log.Info("search finished", "run_id", runID, "mode", mode, "outcome", res.Outcome, "steps", res.Steps())
		rows = append(rows, render.Comparison{Mode: mode, Result: res, Elapsed: elapsed})
	}

	out := render.New(cmd.OutOrStdout(), false)
	if cfg.Format == config.FormatJSON {
		reports := make([]render.Report, len(rows))
		for i, row := range rows {
			reports[i] = render.NewReport(runID, cfg.Board, row.Result, row.Elapsed)
		}
		err = out.JSON(reports)
	} else {
		err = out.Compare(rows)
	}
	if err != nil {
		return err
	}
	if cfg.Metrics {
		return rec.Write(cmd.ErrOrStderr())
	}

	return nil
}
