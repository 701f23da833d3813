package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"stockseries/internal/model"
)

// Header is the column row of the source CSV.
var Header = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// CSVWriter writes price records in the source schema (header: Date,Open,High,Low,Close,Volume).
type CSVWriter struct{}

func (CSVWriter) Extension() string { return "csv" }

// Save overwrites path. Close and flush errors are reported.
func (CSVWriter) Save(records []model.PriceRecord, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := csv.NewWriter(f)

	if err := w.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write([]string{
			r.Date,
			floatStr(r.Open),
			floatStr(r.High),
			floatStr(r.Low),
			floatStr(r.Close),
			floatStr(r.Volume),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
