package series

import (
	"fmt"
	"log/slog"
	"time"

	"stockseries/internal/chart"
	"stockseries/internal/model"
	"stockseries/internal/saver"
)

// DateLayout is the date format the chart requires.
const DateLayout = "2006-01-02"

// Summary returns one entry per distinct date in series order.
// A repeated date keeps its first position and takes the values of its last record.
func (s *Series) Summary() []model.SummaryEntry {
	out := make([]model.SummaryEntry, 0, len(s.records))
	pos := make(map[string]int, len(s.records))
	for _, r := range s.records {
		e := model.SummaryEntry{
			Date:    r.Date,
			Open:    r.Open,
			Close:   r.Close,
			HighLow: r.HighLow(),
			Volume:  r.Volume,
		}
		if i, ok := pos[r.Date]; ok {
			out[i] = e
			continue
		}
		pos[r.Date] = len(out)
		out = append(out, e)
	}
	return out
}

// ExportSummary writes Summary to dest with w, overwriting dest.
func (s *Series) ExportSummary(dest string, w saver.SummaryWriter) error {
	entries := s.Summary()
	if err := w.Save(entries, dest); err != nil {
		return fmt.Errorf("%w: export %s: %w", ErrIO, dest, err)
	}
	slog.Info("summary exported", "path", dest, "format", w.Extension(), "entries", len(entries))
	return nil
}

// ChartPoints returns (date, high) pairs in series order.
func (s *Series) ChartPoints() ([]model.Point, error) {
	if len(s.records) == 0 {
		return nil, ErrEmptyData
	}
	points := make([]model.Point, len(s.records))
	for i, r := range s.records {
		t, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			// +2 for 1-based lines and the header; off when the source had blank rows.
			return nil, &ParseError{Line: i + 2, Column: "Date", Value: r.Date, Kind: BadDate, Err: err}
		}
		points[i] = model.Point{Time: t, Value: r.High}
	}
	return points, nil
}

// RenderChart draws the highs over time into dest.
func (s *Series) RenderChart(dest string, r chart.Renderer) error {
	points, err := s.ChartPoints()
	if err != nil {
		return err
	}
	if err := r.Render(points, dest); err != nil {
		return fmt.Errorf("%w: chart %s: %w", ErrIO, dest, err)
	}
	slog.Info("chart rendered", "path", dest, "points", len(points))
	return nil
}
