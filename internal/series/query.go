package series

import (
	"log/slog"
	"slices"
	"sort"

	"stockseries/internal/model"
)

// HighestHigh returns the largest High and its date. Ties go to the earliest record.
func (s *Series) HighestHigh() (float64, string, error) {
	if len(s.records) == 0 {
		return 0, "", ErrEmptyData
	}
	best := s.records[0]
	for _, r := range s.records[1:] {
		if r.High > best.High {
			best = r
		}
	}
	return best.High, best.Date, nil
}

// TopNByHigh returns the n largest highs, descending, ranked from 0.
// Equal highs keep their series order. The series itself is not reordered.
func (s *Series) TopNByHigh(n int) []model.RankedHigh {
	if n <= 0 {
		return nil
	}
	sorted := slices.Clone(s.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].High > sorted[j].High
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]model.RankedHigh, n)
	for i := range out {
		out[i] = model.RankedHigh{Rank: i, High: sorted[i].High}
	}
	return out
}

// Averages returns the mean of the open, close, high and low columns.
func (s *Series) Averages() (model.Averages, error) {
	if len(s.records) == 0 {
		return model.Averages{}, ErrEmptyData
	}
	var sum model.Averages
	for _, r := range s.records {
		sum.Open += r.Open
		sum.Close += r.Close
		sum.High += r.High
		sum.Low += r.Low
	}
	n := float64(len(s.records))
	return model.Averages{
		Open:  sum.Open / n,
		Close: sum.Close / n,
		High:  sum.High / n,
		Low:   sum.Low / n,
	}, nil
}

// FilterBelow drops every record with High < threshold, rewrites the source
// file with the rest and returns the dropped records in series order.
// There is no backup. If the write fails the in-memory records are left as they were.
func (s *Series) FilterBelow(threshold float64) ([]model.PriceRecord, error) {
	var removed []model.PriceRecord
	kept := make([]model.PriceRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.High < threshold {
			removed = append(removed, r)
		} else {
			kept = append(kept, r)
		}
	}

	if err := s.write(kept); err != nil {
		return nil, err
	}
	s.records = kept

	slog.Info("filtered series", "threshold", threshold, "removed", len(removed), "kept", len(kept))
	return removed, nil
}
