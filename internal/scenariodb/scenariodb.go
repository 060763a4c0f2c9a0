// Package scenariodb persists the end-to-end scenario corpus (spec §8: an
// input expression, an evaluation context, and its expected result) in a
// local SQLite file, so cmd/exprtool can replay and diff a growing
// regression corpus across runs. Uses modernc.org/sqlite, the teacher's own
// pure-Go, no-cgo SQLite driver.
package scenariodb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Scenario is one row of the corpus: an expression JSON literal, an
// optional zoom/feature-properties context, and the expected stringified
// result (spec §8's "golden value" shape).
type Scenario struct {
	ID         int64
	Name       string
	ExprJSON   string
	Zoom       sql.NullFloat64
	PropsJSON  string // JSON object literal, empty string if no feature
	Expected   string
	RecordedAt string
}

// DB wraps a *sql.DB opened against a scenariodb file.
type DB struct {
	conn *sql.DB
}

// Open opens (creating if absent) the SQLite file at path and ensures the
// scenarios table exists.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scenariodb: open %s: %w", path, err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("scenariodb: create schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL UNIQUE,
	expr_json   TEXT NOT NULL,
	zoom        REAL,
	props_json  TEXT NOT NULL DEFAULT '',
	expected    TEXT NOT NULL,
	recorded_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

// Close releases the underlying connection.
func (db *DB) Close() error { return db.conn.Close() }

// Record inserts or replaces a scenario by name.
func (db *DB) Record(s Scenario) error {
	_, err := db.conn.Exec(
		`INSERT INTO scenarios (name, expr_json, zoom, props_json, expected)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   expr_json=excluded.expr_json, zoom=excluded.zoom,
		   props_json=excluded.props_json, expected=excluded.expected`,
		s.Name, s.ExprJSON, s.Zoom, s.PropsJSON, s.Expected,
	)
	if err != nil {
		return fmt.Errorf("scenariodb: record %q: %w", s.Name, err)
	}
	return nil
}

// All returns every scenario, ordered by name, for `cmd/exprtool scenarios`
// to replay.
func (db *DB) All() ([]Scenario, error) {
	rows, err := db.conn.Query(
		`SELECT id, name, expr_json, zoom, props_json, expected, recorded_at
		 FROM scenarios ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("scenariodb: query all: %w", err)
	}
	defer rows.Close()

	var out []Scenario
	for rows.Next() {
		var s Scenario
		if err := rows.Scan(&s.ID, &s.Name, &s.ExprJSON, &s.Zoom, &s.PropsJSON, &s.Expected, &s.RecordedAt); err != nil {
			return nil, fmt.Errorf("scenariodb: scan row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count returns the number of recorded scenarios.
func (db *DB) Count() (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT count(*) FROM scenarios`).Scan(&n)
	return n, err
}
