// Package corpus stores syllabification results for dictionary entries in
// an SQLite database.
package corpus

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	word          TEXT NOT NULL,
	variant       INTEGER NOT NULL DEFAULT 0,
	pronunciation TEXT NOT NULL,
	syllables     TEXT NOT NULL DEFAULT '',
	syllable_count INTEGER NOT NULL DEFAULT 0,
	error_kind    TEXT NOT NULL DEFAULT '',
	error_message TEXT NOT NULL DEFAULT '',
	UNIQUE(word, pronunciation)
);
CREATE INDEX IF NOT EXISTS idx_entries_word ON entries(word);
CREATE INDEX IF NOT EXISTS idx_entries_error_kind ON entries(error_kind)
`

// syllableSeparator separates syllables in the syllables column.
const syllableSeparator = " - "

// DBExecutor is an interface that allows functions to accept either *sql.DB or *sql.Tx.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// InitDB creates the tables if they do not exist yet.
func InitDB(db DBExecutor) error {
	stmts := strings.Split(schemaSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// Record is the outcome of syllabifying one pronunciation. A record with an
// empty ErrorKind is a success.
type Record struct {
	ID            int64
	Word          string
	Variant       int
	Pronunciation string
	Syllables     []string
	ErrorKind     string
	ErrorMessage  string
}

// OK is true if the pronunciation was syllabified.
func (r Record) OK() bool {
	return r.ErrorKind == ""
}

// SaveEntry inserts a record or replaces the outcome of an existing record
// for the same word and pronunciation. It returns the record's id.
func SaveEntry(db DBExecutor, rec Record) (int64, error) {
	word := strings.TrimSpace(rec.Word)
	if word == "" {
		return 0, fmt.Errorf("word must be non-empty")
	}
	if rec.Pronunciation == "" {
		return 0, fmt.Errorf("pronunciation of %q must be non-empty", word)
	}
	var id int64
	query := `INSERT INTO entries (word, variant, pronunciation, syllables, syllable_count, error_kind, error_message)
			  VALUES (?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT(word, pronunciation)
			  DO UPDATE SET
			    variant = excluded.variant,
			    syllables = excluded.syllables,
			    syllable_count = excluded.syllable_count,
			    error_kind = excluded.error_kind,
			    error_message = excluded.error_message
			  RETURNING id`
	err := db.QueryRow(query, word, rec.Variant, rec.Pronunciation,
		strings.Join(rec.Syllables, syllableSeparator), len(rec.Syllables),
		rec.ErrorKind, rec.ErrorMessage).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert entry %q: %w", word, err)
	}
	return id, nil
}

// Lookup returns all records of a word, ordered by variant.
func Lookup(db DBExecutor, word string) ([]Record, error) {
	rows, err := db.Query(`SELECT id, word, variant, pronunciation, syllables, error_kind, error_message
		FROM entries WHERE word = ? ORDER BY variant, id`, word)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}
	defer rows.Close()
	var records []Record
	for rows.Next() {
		var rec Record
		var syllables string
		if err := rows.Scan(&rec.ID, &rec.Word, &rec.Variant, &rec.Pronunciation, &syllables,
			&rec.ErrorKind, &rec.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan %q: %w", word, err)
		}
		if syllables != "" {
			rec.Syllables = strings.Split(syllables, syllableSeparator)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Stats summarizes the stored records.
type Stats struct {
	Entries      int
	Syllabified  int
	Syllables    int            // total number of syllables of syllabified entries
	ErrorsByKind map[string]int // failed entries per error kind
}

// SyllablesPerEntry is the mean number of syllables of syllabified entries.
func (s Stats) SyllablesPerEntry() float64 {
	if s.Syllabified == 0 {
		return 0
	}
	return float64(s.Syllables) / float64(s.Syllabified)
}

// CollectStats computes statistics over all stored records.
func CollectStats(db DBExecutor) (Stats, error) {
	stats := Stats{ErrorsByKind: make(map[string]int)}
	rows, err := db.Query(`SELECT error_kind, COUNT(*), SUM(syllable_count)
		FROM entries GROUP BY error_kind`)
	if err != nil {
		return stats, fmt.Errorf("collect stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var count, syllables int
		if err := rows.Scan(&kind, &count, &syllables); err != nil {
			return stats, fmt.Errorf("scan stats: %w", err)
		}
		stats.Entries += count
		if kind == "" {
			stats.Syllabified += count
			stats.Syllables += syllables
		} else {
			stats.ErrorsByKind[kind] = count
		}
	}
	return stats, rows.Err()
}
