package saver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"stockseries/internal/model"
)

const jsonIndent = "    "

// JSONWriter writes the summary as one JSON object keyed by date.
// encoding/json sorts map keys, so the object is assembled by hand to keep series order.
type JSONWriter struct{}

func (JSONWriter) Extension() string { return "json" }

func (JSONWriter) Save(entries []model.SummaryEntry, path string) error {
	data, err := encodeSummary(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func encodeSummary(entries []model.SummaryEntry) ([]byte, error) {
	if len(entries) == 0 {
		return []byte("{}\n"), nil
	}
	var b bytes.Buffer
	b.WriteString("{\n")
	for i, e := range entries {
		key, err := json.Marshal(e.Date)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", e.Date, err)
		}
		val, err := json.MarshalIndent(e, jsonIndent, jsonIndent)
		if err != nil {
			return nil, fmt.Errorf("marshal entry %q: %w", e.Date, err)
		}
		b.WriteString(jsonIndent)
		b.Write(key)
		b.WriteString(": ")
		b.Write(val)
		if i < len(entries)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.Bytes(), nil
}
