package saver

import (
	"database/sql"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/tidwall/gjson"

	"stockseries/internal/model"
)

var testEntries = []model.SummaryEntry{
	{Date: "2024-01-03", Open: 11, Close: 12.5, HighLow: 11.625, Volume: 2500},
	{Date: "2024-01-02", Open: 10.5, Close: 11, HighLow: 10.875, Volume: 1000},
}

func TestNewSummaryWriter(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"json", "json"},
		{" JSON ", "json"},
		{"parquet", "parquet"},
		{"sqlite", "db"},
	}
	for _, tt := range tests {
		w := NewSummaryWriter(tt.format)
		if w == nil {
			t.Errorf("NewSummaryWriter(%q) = nil", tt.format)
			continue
		}
		if w.Extension() != tt.ext {
			t.Errorf("NewSummaryWriter(%q).Extension() = %q, want %q", tt.format, w.Extension(), tt.ext)
		}
	}
	if w := NewSummaryWriter("xml"); w != nil {
		t.Errorf("NewSummaryWriter(xml) = %T, want nil", w)
	}
}

func TestJSONWriter_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	entries := []model.SummaryEntry{{Date: "2024-01-02", Open: 1, Close: 2, HighLow: 3.5, Volume: 100}}
	if err := (JSONWriter{}).Save(entries, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "2024-01-02": {
        "open": 1,
        "close": 2,
        "high_low": 3.5,
        "volume": 100
    }
}
`
	if string(got) != want {
		t.Errorf("layout mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestJSONWriter_KeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := (JSONWriter{}).Save(testEntries, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	var keys []string
	gjson.ParseBytes(data).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	if want := []string{"2024-01-03", "2024-01-02"}; !slices.Equal(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	if v := gjson.GetBytes(data, `2024-01-03.high_low`).Float(); v != 11.625 {
		t.Errorf("high_low = %v, want 11.625", v)
	}
}

func TestJSONWriter_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := (JSONWriter{}).Save(nil, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{}\n" {
		t.Errorf("got %q, want %q", data, "{}\n")
	}
}

func TestParquetWriter_ReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.parquet")
	if err := (ParquetWriter{}).Save(testEntries, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	rows, err := parquet.ReadFile[model.SummaryEntry](path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !slices.Equal(rows, testEntries) {
		t.Errorf("rows = %+v, want %+v", rows, testEntries)
	}
}

func TestSQLiteWriter_ReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.db")
	w := SQLiteWriter{}
	// Second save must replace, not append to, the first.
	if err := w.Save(testEntries[:1], path); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := w.Save(testEntries, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT date, open, close, high_low, volume FROM summary ORDER BY seq`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	var got []model.SummaryEntry
	for rows.Next() {
		var e model.SummaryEntry
		if err := rows.Scan(&e.Date, &e.Open, &e.Close, &e.HighLow, &e.Volume); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, e)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, testEntries) {
		t.Errorf("rows = %+v, want %+v", got, testEntries)
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := []model.PriceRecord{
		{Date: "2024-01-02", Open: 10.5, High: 12, Low: 9.75, Close: 11, Volume: 1234567},
	}
	if err := (CSVWriter{}).Save(records, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, _ := os.ReadFile(path)
	want := "Date,Open,High,Low,Close,Volume\n2024-01-02,10.5,12,9.75,11,1234567\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
