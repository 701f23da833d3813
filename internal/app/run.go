package app

import (
	"fmt"
	"io"
	"log/slog"

	"stockseries/internal/report"
	"stockseries/internal/series"
)

// Run executes the fixed report sequence: load, highest high, top N,
// averages, filter and save back, export summary, render chart.
// Reports go to out; the first error stops the run.
func Run(cfg *Config, deps Deps, out io.Writer) error {
	s, err := series.Load(cfg.SourcePath)
	if err != nil {
		return fmt.Errorf("load series: %w", err)
	}
	slog.Info("series loaded", "path", s.Path(), "records", s.Len())

	rep := report.NewWriter(out)

	high, date, err := s.HighestHigh()
	if err != nil {
		return fmt.Errorf("highest high: %w", err)
	}
	rep.Highest(high, date)
	rep.Separator()

	rep.TopN(cfg.TopN, s.TopNByHigh(cfg.TopN))
	rep.Separator()

	avg, err := s.Averages()
	if err != nil {
		return fmt.Errorf("averages: %w", err)
	}
	rep.Averages(avg)
	rep.Separator()

	removed, err := s.FilterBelow(cfg.Threshold)
	if err != nil {
		return fmt.Errorf("filter below %v: %w", cfg.Threshold, err)
	}
	rep.Removed(cfg.Threshold, removed)
	rep.Separator()

	if err := s.ExportSummary(cfg.SummaryPath, deps.Summary); err != nil {
		return err
	}
	rep.Written("Summary", cfg.SummaryPath)

	if cfg.SkipChart {
		slog.Info("chart skipped")
		return rep.Err()
	}
	rep.Separator()
	if err := s.RenderChart(cfg.ChartPath, deps.Chart); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	rep.Written("Chart", cfg.ChartPath)

	return rep.Err()
}
