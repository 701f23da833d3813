package saver

import (
	"github.com/parquet-go/parquet-go"

	"stockseries/internal/model"
)

// ParquetWriter writes the summary as Parquet, one row per date in series order.
type ParquetWriter struct{}

func (ParquetWriter) Extension() string { return "parquet" }

func (ParquetWriter) Save(entries []model.SummaryEntry, path string) error {
	return parquet.WriteFile(path, entries)
}
