package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"montage/internal/timeline"
)

// Store manages composition persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond

	lockRetryDelay = 50 * time.Millisecond
)

// Open initializes or connects to the library database at path. The parent
// directory is created when missing and a lock file beside the database
// serializes concurrent openers; Open blocks until the lock is free or ctx
// is done.
func Open(ctx context.Context, path string) (*Store, error) {
	ctx = ensureContext(ctx)
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("library path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure library directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return nil, errors.New("library is locked by another process")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: lock}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close releases the lock file and closes the database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if s.lock != nil {
		_ = s.lock.Unlock()
	}
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores the snapshot under name. An existing composition with the same
// name is overwritten in place, keeping its id and creation time.
func (s *Store) Save(ctx context.Context, name string, snap *timeline.Snapshot) (*Composition, error) {
	ctx = ensureContext(ctx)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("composition name is empty")
	}
	if snap == nil {
		return nil, errors.New("snapshot is nil")
	}
	doc, err := timeline.Marshal(snap)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	existing, err := s.Get(ctx, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if err := s.execWithRetry(ctx,
			`UPDATE compositions SET document = ?, layer_count = ?, updated_at = ? WHERE id = ?`,
			string(doc), snap.Len(), now, existing.ID,
		); err != nil {
			return nil, fmt.Errorf("update composition: %w", err)
		}
		return s.Get(ctx, existing.ID)
	}

	id := uuid.NewString()
	if err := s.execWithRetry(ctx,
		`INSERT INTO compositions (id, name, document, layer_count, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		id, name, string(doc), snap.Len(), now, now,
	); err != nil {
		return nil, fmt.Errorf("insert composition: %w", err)
	}
	return s.Get(ctx, id)
}

// Get fetches a composition by id or name.
func (s *Store) Get(ctx context.Context, ref string) (*Composition, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT `+compositionColumns+` FROM compositions WHERE id = ? OR name = ? LIMIT 1`,
		ref, ref)
	comp, err := scanComposition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("get composition: %w", err)
	}
	return comp, nil
}

// List returns every stored composition ordered by creation time.
func (s *Store) List(ctx context.Context) ([]*Composition, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+compositionColumns+` FROM compositions ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list compositions: %w", err)
	}
	defer rows.Close()

	var comps []*Composition
	for rows.Next() {
		comp, err := scanComposition(rows)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}
	return comps, rows.Err()
}

// Rename changes a composition's display name.
func (s *Store) Rename(ctx context.Context, ref, newName string) (*Composition, error) {
	ctx = ensureContext(ctx)
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, errors.New("new composition name is empty")
	}
	comp, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := s.execWithRetry(ctx,
		`UPDATE compositions SET name = ?, updated_at = ? WHERE id = ?`,
		newName, time.Now().UTC().Format(time.RFC3339Nano), comp.ID,
	); err != nil {
		return nil, fmt.Errorf("rename composition: %w", err)
	}
	return s.Get(ctx, comp.ID)
}

// Delete removes a composition by id or name.
func (s *Store) Delete(ctx context.Context, ref string) error {
	ctx = ensureContext(ctx)
	comp, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	if err := s.execWithRetry(ctx, `DELETE FROM compositions WHERE id = ?`, comp.ID); err != nil {
		return fmt.Errorf("delete composition: %w", err)
	}
	return nil
}

const compositionColumns = "id, name, document, layer_count, created_at, updated_at"

func scanComposition(scanner interface{ Scan(dest ...any) error }) (*Composition, error) {
	var (
		comp       Composition
		layerCount sql.NullInt64
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(&comp.ID, &comp.Name, &comp.Document, &layerCount, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}
	if layerCount.Valid {
		comp.Layers = int(layerCount.Int64)
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		comp.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		comp.UpdatedAt = updated
	}
	return &comp, nil
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) error {
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
}
