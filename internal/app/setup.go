package app

import (
	"log/slog"

	"stockseries/internal/slogx"
)

// SetupLogging installs the default slog logger at the configured level.
func SetupLogging(cfg *Config) {
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Debug("config",
		"source", cfg.SourcePath,
		"threshold", cfg.Threshold,
		"top_n", cfg.TopN,
		"summary", cfg.SummaryPath,
		"format", cfg.SummaryFormat,
		"chart", cfg.ChartPath,
		"skip_chart", cfg.SkipChart,
	)
}
