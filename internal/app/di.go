package app

import (
	"fmt"

	"stockseries/internal/chart"
	"stockseries/internal/saver"
)

// Deps are the external writers a run hands its results to.
type Deps struct {
	Summary saver.SummaryWriter
	Chart   chart.Renderer
}

// ProvideConfig loads and validates config (for Wire).
func ProvideConfig() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ProvideSummaryWriter creates SummaryWriter from config (for Wire).
// Returns error if SummaryFormat is not supported.
func ProvideSummaryWriter(cfg *Config) (saver.SummaryWriter, error) {
	w := saver.NewSummaryWriter(cfg.SummaryFormat)
	if w == nil {
		return nil, fmt.Errorf("unsupported SUMMARY_FORMAT %q (use: json, parquet, sqlite)", cfg.SummaryFormat)
	}
	return w, nil
}

// ProvideChartRenderer creates the gonum/plot renderer (for Wire).
func ProvideChartRenderer() *chart.PlotRenderer {
	return chart.NewPlotRenderer()
}
