// Package report prints the fixed sequence of text reports to stdout.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"stockseries/internal/model"
)

// Separator is printed between report sections.
var Separator = strings.Repeat("=-=", 30)

// Writer formats reports onto an io.Writer. The first write error sticks;
// later calls are no-ops and Err returns it.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error, if any.
func (r *Writer) Err() error { return r.err }

func (r *Writer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Writer) Separator() {
	r.printf("%s\n", Separator)
}

func (r *Writer) Highest(high float64, date string) {
	r.printf("Highest value in column High: %.2f on %s\n", high, date)
}

func (r *Writer) TopN(n int, top []model.RankedHigh) {
	r.printf("Top %d values in column High:\n", n)
	for _, t := range top {
		r.printf("%d) %.2f\n", t.Rank, t.High)
	}
}

func (r *Writer) Averages(avg model.Averages) {
	r.printf("Average of column Open: %.2f\n", avg.Open)
	r.printf("Average of column Close: %.2f\n", avg.Close)
	r.printf("Average of column High: %.2f\n", avg.High)
	r.printf("Average of column Low: %.2f\n", avg.Low)
}

func (r *Writer) Removed(threshold float64, removed []model.PriceRecord) {
	r.printf("Rows with High below %s removed from the file: %d\n", formatFloat(threshold), len(removed))
	for _, rec := range removed {
		r.printf("%s open=%s high=%s low=%s close=%s volume=%s\n",
			rec.Date,
			formatFloat(rec.Open),
			formatFloat(rec.High),
			formatFloat(rec.Low),
			formatFloat(rec.Close),
			formatFloat(rec.Volume),
		)
	}
}

func (r *Writer) Written(kind, path string) {
	r.printf("%s written: %s\n", kind, path)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
