package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Source says where an action was taken
type Source string

const (
	SourceTUI Source = "tui"
	SourceCLI Source = "cli"
)

// Entry is one recorded admin action
type Entry struct {
	ID        int64     `json:"id" yaml:"id"`
	Time      time.Time `json:"time" yaml:"time"`
	Source    Source    `json:"source" yaml:"source"`
	Action    string    `json:"action" yaml:"action"`
	Namespace string    `json:"namespace" yaml:"namespace"`
	Target    string    `json:"target" yaml:"target"`
	Success   bool      `json:"success" yaml:"success"`
	Error     string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Store is an append-only log of admin actions kept in SQLite
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the history database at path
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	// modernc.org/sqlite registers as "sqlite"
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to configure history database: %w", err)
		}
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS actions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			at_unixms INTEGER NOT NULL,
			source TEXT NOT NULL,
			action TEXT NOT NULL,
			namespace TEXT NOT NULL,
			target TEXT NOT NULL,
			success INTEGER NOT NULL,
			error TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_actions_at ON actions(at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := s.db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("failed to migrate history database: %w", err)
		}
	}
	return nil
}

// Record appends e. A zero Time is replaced by the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.Time.IsZero() {
		e.Time = s.now()
	}
	var errText sql.NullString
	if e.Error != "" {
		errText = sql.NullString{String: e.Error, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO actions (at_unixms, source, action, namespace, target, success, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Time.UnixMilli(), string(e.Source), e.Action, e.Namespace, e.Target, boolToInt(e.Success), errText,
	)
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", e.Action, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, at_unixms, source, action, namespace, target, success, error
		 FROM actions ORDER BY at_unixms DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			atMs    int64
			source  string
			success int
			errText sql.NullString
		)
		if err := rows.Scan(&e.ID, &atMs, &source, &e.Action, &e.Namespace, &e.Target, &success, &errText); err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}
		e.Time = time.UnixMilli(atMs)
		e.Source = Source(source)
		e.Success = success != 0
		e.Error = errText.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
