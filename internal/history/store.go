// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists query/response exchanges in a SQLite database
// and provides full-text search over past interactions.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/research-agent/pkg/types"
)

const defaultDBPath = "output/history.db"

// Store manages the interaction history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the history database at cfg.Path, creating parent
// directories and the schema as needed.
func Open(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultDBPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS interactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			category TEXT NOT NULL,
			query TEXT NOT NULL,
			response TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_category ON interactions(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='interactions_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE interactions_fts USING fts5(query, response, content=interactions, content_rowid=id)`,
			`CREATE TRIGGER interactions_ai AFTER INSERT ON interactions BEGIN
				INSERT INTO interactions_fts(rowid, query, response) VALUES (new.id, new.query, new.response);
			END`,
			`CREATE TRIGGER interactions_ad AFTER DELETE ON interactions BEGIN
				INSERT INTO interactions_fts(interactions_fts, rowid, query, response) VALUES('delete', old.id, old.query, old.response);
			END`,
			`CREATE TRIGGER interactions_au AFTER UPDATE ON interactions BEGIN
				INSERT INTO interactions_fts(interactions_fts, rowid, query, response) VALUES('delete', old.id, old.query, old.response);
				INSERT INTO interactions_fts(rowid, query, response) VALUES (new.id, new.query, new.response);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Record stores one exchange and returns it with the assigned ID and
// timestamp filled in.
func (s *Store) Record(ctx context.Context, category types.Category, query, response string) (types.Interaction, error) {
	now := time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO interactions (created_at, category, query, response) VALUES (?, ?, ?, ?)`,
		now.Format(time.RFC3339Nano), string(category), query, response,
	)
	if err != nil {
		return types.Interaction{}, fmt.Errorf("recording interaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return types.Interaction{}, fmt.Errorf("reading interaction id: %w", err)
	}

	return types.Interaction{
		ID:        id,
		CreatedAt: now,
		Category:  category,
		Query:     query,
		Response:  response,
	}, nil
}

// Clear deletes all recorded interactions and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM interactions`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared rows: %w", err)
	}
	return n, nil
}
