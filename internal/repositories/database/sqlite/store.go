package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/procedure_control_app/internal/models"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const (
	bucketProcedures = "procedures"
	bucketUsers      = "users"
)

// Store keeps the full record and account collections in memory and
// snapshots both to a single SQLite table as JSON blobs after every
// successful mutation. Procedures keep their slice order, which is the
// insertion order the repositories promise.
type Store struct {
	db   *sql.DB
	path string

	mu         sync.RWMutex
	procedures []models.Procedure
	users      []models.User
}

// NewStore opens (or creates) the snapshot database at path and loads
// the existing state.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "procedure_control.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	s := &Store{db: db, path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	rows, err := s.db.Query(`SELECT bucket, payload FROM state`)
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		switch bucket {
		case bucketProcedures:
			if err := json.Unmarshal(payload, &s.procedures); err != nil {
				return fmt.Errorf("decode procedures: %w", err)
			}
		case bucketUsers:
			if err := json.Unmarshal(payload, &s.users); err != nil {
				return fmt.Errorf("decode users: %w", err)
			}
		}
	}
	return rows.Err()
}

// persist writes both buckets inside one transaction. Callers hold at
// least the read lock.
func (s *Store) persist() (retErr error) {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	buckets := []struct {
		name string
		data any
	}{
		{bucketProcedures, s.procedures},
		{bucketUsers, s.users},
	}
	for _, b := range buckets {
		payload, err := json.Marshal(b.data)
		if err != nil {
			retErr = err
			return retErr
		}
		if _, err := tx.Exec(`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`, b.name, payload); err != nil {
			retErr = fmt.Errorf("upsert %s: %w", b.name, err)
			return retErr
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	return nil
}

// update runs a mutation under the write lock and snapshots on success.
// When the mutation or the snapshot fails, both collections are restored
// so reads never serve state that is not on disk.
func (s *Store) update(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prevProcedures := append([]models.Procedure(nil), s.procedures...)
	prevUsers := append([]models.User(nil), s.users...)
	if err := fn(); err != nil {
		s.procedures = prevProcedures
		s.users = prevUsers
		return err
	}
	if err := s.persist(); err != nil {
		s.procedures = prevProcedures
		s.users = prevUsers
		return err
	}
	return nil
}

// view runs a read-only function under the read lock.
func (s *Store) view(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }
