package saver

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"stockseries/internal/model"
)

// SQLiteWriter writes the summary into table "summary" of a fresh SQLite file.
// seq keeps series order.
type SQLiteWriter struct{}

func (SQLiteWriter) Extension() string { return "db" }

const createSummaryTable = `CREATE TABLE summary (
	seq      INTEGER PRIMARY KEY,
	date     TEXT NOT NULL UNIQUE,
	open     REAL,
	close    REAL,
	high_low REAL,
	volume   REAL
)`

func (SQLiteWriter) Save(entries []model.SummaryEntry, path string) (err error) {
	// Overwrite semantics: start from an empty database.
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove old db: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := db.Exec(createSummaryTable); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO summary (seq, date, open, close, high_low, volume) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(i, e.Date, e.Open, e.Close, e.HighLow, e.Volume); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s: %w", e.Date, err)
		}
	}
	return tx.Commit()
}
