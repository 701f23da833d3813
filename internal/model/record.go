package model

import "time"

// PriceRecord is one trading day as read from the source CSV.
// Shared by series, saver and chart.
type PriceRecord struct {
	Date   string  `json:"date"` // YYYY-MM-DD, not validated at load
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// HighLow returns the midpoint of the day's range.
func (r PriceRecord) HighLow() float64 {
	return (r.High + r.Low) / 2
}

// RankedHigh is one entry of a top-N by high query. Rank is 0-based.
type RankedHigh struct {
	Rank int
	High float64
}

// Averages holds the arithmetic mean of the four price columns.
type Averages struct {
	Open  float64
	Close float64
	High  float64
	Low   float64
}

// SummaryEntry is one exported row, keyed by Date.
type SummaryEntry struct {
	Date    string  `json:"-" parquet:"date"`
	Open    float64 `json:"open" parquet:"open"`
	Close   float64 `json:"close" parquet:"close"`
	HighLow float64 `json:"high_low" parquet:"high_low"`
	Volume  float64 `json:"volume" parquet:"volume"`
}

// Point is one chart sample.
type Point struct {
	Time  time.Time
	Value float64
}
