// Package sqlite provides a SQLite-backed store for decks and teams. It is the
// single-binary alternative to Redis and implements both repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/clock"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/decks"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/sqlite/migrations"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/teams"
)

const (
	tableDecks = "decks"
	tableTeams = "teams"
)

// Store persists decks and teams in SQLite
type Store struct {
	db    *sql.DB
	clock clock.Clock
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite store, creating the parent directory and applying the
// embedded schema
func Open(path string, clk clock.Clock) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}
	if clk == nil {
		clk = clock.New()
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "run migrations")
	}

	return &Store{db: db, clock: clk}, nil
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Decks returns the deck repository backed by this store
func (s *Store) Decks() decks.Repository {
	return &deckRepository{store: s}
}

// Teams returns the team repository backed by this store
func (s *Store) Teams() teams.Repository {
	return &teamRepository{store: s}
}

func applyMigrations(db *sql.DB) error {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return err
		}
		if _, err := db.Exec(string(body)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}

// record is one row of the decks or teams table
type record struct {
	ID        string
	OwnerID   string
	Payload   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Store) insert(ctx context.Context, table string, rec record) error {
	// nolint:gosec // table is one of the package constants
	query := fmt.Sprintf(`INSERT INTO %s (id, owner_id, payload, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`, table)
	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.OwnerID, string(rec.Payload), toMillis(rec.CreatedAt), toMillis(rec.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return errors.AlreadyExistsf("%s %s already exists", strings.TrimSuffix(table, "s"), rec.ID)
		}
		return errors.Wrapf(err, "insert into %s", table)
	}
	return nil
}

func (s *Store) update(ctx context.Context, table string, rec record) error {
	// nolint:gosec // table is one of the package constants
	query := fmt.Sprintf(`UPDATE %s SET owner_id = ?, payload = ?, updated_at = ? WHERE id = ?`, table)
	res, err := s.db.ExecContext(ctx, query,
		rec.OwnerID, string(rec.Payload), toMillis(rec.UpdatedAt), rec.ID)
	if err != nil {
		return errors.Wrapf(err, "update %s", table)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "update %s", table)
	}
	if n == 0 {
		return errors.NotFoundf("%s %s not found", strings.TrimSuffix(table, "s"), rec.ID)
	}
	return nil
}

func (s *Store) payload(ctx context.Context, table, id string) ([]byte, error) {
	// nolint:gosec // table is one of the package constants
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE id = ?`, table)

	var payload string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&payload)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("%s %s not found", strings.TrimSuffix(table, "s"), id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select from %s", table)
	}
	return []byte(payload), nil
}

func (s *Store) delete(ctx context.Context, table, id string) error {
	// nolint:gosec // table is one of the package constants
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return errors.Wrapf(err, "delete from %s", table)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "delete from %s", table)
	}
	if n == 0 {
		return errors.NotFoundf("%s %s not found", strings.TrimSuffix(table, "s"), id)
	}
	return nil
}

func (s *Store) listByOwner(ctx context.Context, table, ownerID string) ([][]byte, error) {
	// nolint:gosec // table is one of the package constants
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE owner_id = ? ORDER BY created_at, id`, table)
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", table)
	}
	defer func() { _ = rows.Close() }()

	var payloads [][]byte
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.Wrapf(err, "scan %s", table)
		}
		payloads = append(payloads, []byte(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "list %s", table)
	}
	return payloads, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
