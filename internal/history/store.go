// Package history persists REPL input in a local SQLite database so that
// sessions can be recalled, searched and pruned.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
)

// Entry is one evaluated REPL line
type Entry struct {
	ID          string    `json:"id" yaml:"id"`
	SessionID   string    `json:"session_id" yaml:"session_id"`
	Source      string    `json:"source" yaml:"source"`
	Expressions int       `json:"expressions" yaml:"expressions"`
	Diagnostics int       `json:"diagnostics" yaml:"diagnostics"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Store implements the history using SQLite
type Store struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// Open opens or creates the database at path
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, mdwerror.New("history path is empty").WithCode(mdwerror.CodeInvalidInput)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, storageError(err, "create directory")
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storageError(err, "open database")
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "initialize schema")
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		source TEXT NOT NULL,
		expressions INTEGER NOT NULL DEFAULT 0,
		diagnostics INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_created ON entries(created_at);
	CREATE INDEX IF NOT EXISTS idx_entries_session ON entries(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database file
func (s *Store) Path() string {
	return s.path
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// NewSession returns a fresh session id
func (s *Store) NewSession() string {
	return uuid.New().String()
}

// Append stores e. ID and CreatedAt are assigned when empty.
func (s *Store) Append(ctx context.Context, e Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, session_id, source, expressions, diagnostics, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, e.SessionID, e.Source, e.Expressions, e.Diagnostics, e.CreatedAt)
	if err != nil {
		return Entry{}, storageError(err, "append entry")
	}

	return e, nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, source, expressions, diagnostics, created_at
		FROM entries
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, normalizeLimit(limit))
	if err != nil {
		return nil, storageError(err, "list entries")
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search returns up to limit entries whose source contains substr, newest
// first. Matching follows SQLite's LIKE, which ignores ASCII case.
func (s *Store) Search(ctx context.Context, substr string, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, source, expressions, diagnostics, created_at
		FROM entries
		WHERE source LIKE ? ESCAPE '\'
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, "%"+escapeLike(substr)+"%", normalizeLimit(limit))
	if err != nil {
		return nil, storageError(err, "search entries")
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Prune deletes everything but the newest keep entries and returns the
// number removed
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, mdwerror.Newf("keep must not be negative, got %d", keep).WithCode(mdwerror.CodeInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM entries WHERE rowid NOT IN (
			SELECT rowid FROM entries ORDER BY created_at DESC, rowid DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, storageError(err, "prune entries")
	}

	return res.RowsAffected()
}

// Count returns the number of stored entries
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, storageError(err, "count entries")
	}
	return n, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Source, &e.Expressions, &e.Diagnostics, &e.CreatedAt); err != nil {
			return nil, storageError(err, "scan entry")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func storageError(err error, operation string) error {
	return mdwerror.Wrap(err, "failed to "+operation).
		WithCode(mdwerror.CodeStorage).
		WithOperation("history." + strings.ReplaceAll(operation, " ", "_"))
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return -1 // no limit in SQLite
	}
	return limit
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
