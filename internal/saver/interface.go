package saver

import (
	"strings"

	"stockseries/internal/model"
)

// SummaryWriter is the abstraction for persisting the per-date summary.
// The app picks an implementation by format; series only depends on this interface.
type SummaryWriter interface {
	Save(entries []model.SummaryEntry, path string) error
	Extension() string
}

// Formats lists the accepted SUMMARY_FORMAT values.
var Formats = []string{"json", "parquet", "sqlite"}

// NewSummaryWriter creates implementation by format (json, parquet, sqlite).
// Returns nil if format not supported.
func NewSummaryWriter(format string) SummaryWriter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONWriter{}
	case "parquet":
		return ParquetWriter{}
	case "sqlite":
		return SQLiteWriter{}
	default:
		return nil
	}
}
