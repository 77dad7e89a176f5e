/*
MIT License

Copyright (c) 2025 Jayson Clark

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jayson-clark/rice/internal/theme"
)

// Run is one recorded apply or init invocation.
type Run struct {
	ID            int64     `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	Mode          string    `json:"mode"` // "apply" or "init"
	Changes       int       `json:"changes"`
	FilesScanned  int       `json:"files_scanned"`
	FilesModified int       `json:"files_modified"`
	Replacements  int       `json:"replacements"`
}

// Store keeps the run history in a sqlite database next to the backups.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// Open opens (creating if needed) the history database at dbPath and
// keeps at most maxRuns runs.
func Open(dbPath string, maxRuns int) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	s := &Store{db: db, maxRuns: maxRuns}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at DATETIME NOT NULL,
			mode TEXT NOT NULL,
			changes INTEGER NOT NULL DEFAULT 0,
			files_scanned INTEGER NOT NULL DEFAULT 0,
			files_modified INTEGER NOT NULL DEFAULT 0,
			replacements INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS run_changes (
			run_id INTEGER NOT NULL,
			key TEXT NOT NULL,
			old_value TEXT NOT NULL,
			new_value TEXT NOT NULL
		)
	`)
	return err
}

// Record stores a completed run with its change records and prunes history
// beyond the configured maximum.
func (s *Store) Record(run Run, changes []theme.Change) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs (started_at, mode, changes, files_scanned, files_modified, replacements) VALUES (?, ?, ?, ?, ?, ?)",
		run.StartedAt, run.Mode, run.Changes, run.FilesScanned, run.FilesModified, run.Replacements,
	)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, change := range changes {
		_, err := s.db.Exec(
			"INSERT INTO run_changes (run_id, key, old_value, new_value) VALUES (?, ?, ?, ?)",
			id, change.Key, change.Old, change.New,
		)
		if err != nil {
			return id, err
		}
	}

	// Keep only the latest maxRuns runs
	_, err = s.db.Exec(`
		DELETE FROM runs
		WHERE id NOT IN (
			SELECT id FROM runs
			ORDER BY started_at DESC, id DESC
			LIMIT ?
		)
	`, s.maxRuns)
	if err != nil {
		return id, err
	}
	_, err = s.db.Exec("DELETE FROM run_changes WHERE run_id NOT IN (SELECT id FROM runs)")
	return id, err
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) []Run {
	rows, err := s.db.Query(
		"SELECT id, started_at, mode, changes, files_scanned, files_modified, replacements FROM runs ORDER BY started_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return []Run{}
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		err := rows.Scan(&run.ID, &run.StartedAt, &run.Mode, &run.Changes,
			&run.FilesScanned, &run.FilesModified, &run.Replacements)
		if err != nil {
			continue
		}
		runs = append(runs, run)
	}

	return runs
}

// ChangesFor returns the change records stored for a run.
func (s *Store) ChangesFor(runID int64) []theme.Change {
	rows, err := s.db.Query(
		"SELECT key, old_value, new_value FROM run_changes WHERE run_id = ?", runID,
	)
	if err != nil {
		return []theme.Change{}
	}
	defer rows.Close()

	var changes []theme.Change
	for rows.Next() {
		var change theme.Change
		if err := rows.Scan(&change.Key, &change.Old, &change.New); err != nil {
			continue
		}
		changes = append(changes, change)
	}

	return changes
}

// RunCount returns the total number of recorded runs.
func (s *Store) RunCount() int {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0
	}
	return count
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
