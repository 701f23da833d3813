// Package series holds one CSV file of daily prices in memory and answers
// aggregate, filter and export queries over it.
package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"stockseries/internal/model"
	"stockseries/internal/saver"
)

const numFields = 6

// Series is the ordered set of records loaded from path.
// Not safe for concurrent use.
type Series struct {
	path    string
	records []model.PriceRecord
	csv     saver.CSVWriter
}

// New wraps already parsed records. Save and FilterBelow write to path.
func New(path string, records []model.PriceRecord) *Series {
	return &Series{path: path, records: slices.Clone(records)}
}

// Path returns the source file the series saves back to.
func (s *Series) Path() string { return s.path }

// Len returns the number of records.
func (s *Series) Len() int { return len(s.records) }

// Records returns a copy of the records in series order.
func (s *Series) Records() []model.PriceRecord { return slices.Clone(s.records) }

// Load reads the whole file at path. The first row is a header and is discarded.
func Load(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	slog.Debug("series loaded", "path", path, "records", len(records))
	return &Series{path: path, records: records}, nil
}

func readRecords(r io.Reader) ([]model.PriceRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, csvError(err)
	}

	var records []model.PriceRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Kind: Malformed, Err: pe.Err}
	}
	return err
}

func parseRow(row []string, line int) (model.PriceRecord, error) {
	if len(row) != numFields {
		return model.PriceRecord{}, &ParseError{
			Line:  line,
			Kind:  FieldCount,
			Value: fmt.Sprintf("got %d fields, want %d", len(row), numFields),
		}
	}

	var vals [numFields - 1]float64
	for i := range vals {
		col := saver.Header[i+1]
		raw := strings.TrimSpace(row[i+1])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.PriceRecord{}, &ParseError{Line: line, Column: col, Value: raw, Kind: Malformed, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return model.PriceRecord{}, &ParseError{Line: line, Column: col, Value: raw, Kind: Malformed}
		}
		if v < 0 {
			return model.PriceRecord{}, &ParseError{Line: line, Column: col, Value: raw, Kind: Negative}
		}
		vals[i] = v
	}

	return model.PriceRecord{
		Date:   strings.TrimSpace(row[0]),
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}

// Save overwrites the source file with the current records, header included.
func (s *Series) Save() error {
	return s.write(s.records)
}

func (s *Series) write(records []model.PriceRecord) error {
	if err := s.csv.Save(records, s.path); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrIO, s.path, err)
	}
	slog.Debug("series saved", "path", s.path, "records", len(records))
	return nil
}
