// Package store is the device-local persistence layer: an append-only queue
// of uploaded photos (data URLs) in a sqlite database under the data dir,
// plus the config file carrying backend credentials.
//
// The queue doubles as the gallery's "local" image source in demo mode and
// as the retry buffer when remote persistence fails. Rows are never deleted
// by this program; a successful remote sync marks them synced.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const dbFileName = "recap.sqlite"

// Store addresses one data directory. The zero value is not usable; call
// DefaultDir or pass an explicit dir.
type Store struct {
	Dir string
}

// Upload is one locally queued photo.
type Upload struct {
	ID        int64     `json:"id"`
	DataURL   string    `json:"dataUrl"`
	CreatedAt time.Time `json:"createdAt"`
	Synced    bool      `json:"synced"`
}

// DefaultDir resolves the default data directory (~/.recap).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".recap"), nil
}

// Ensure creates the data dir and the sqlite schema if missing.
func (s Store) Ensure() error {
	if s.Dir == "" {
		return errors.New("store: empty data dir")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()
	return nil
}

// DBPath is the sqlite file location (also the watch target for change
// notifications).
func (s Store) DBPath() string {
	return filepath.Join(s.Dir, dbFileName)
}

func (s Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.DBPath())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Single-user, same-device access pattern; one writer at a time is enough.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS uploads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			data_url TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			synced_at INTEGER
		);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}

// AppendUploads appends a batch of data-URL images to the local queue in one
// transaction: either the whole batch is recorded or none of it.
func (s Store) AppendUploads(ctx context.Context, dataURLs []string) error {
	if len(dataURLs) == 0 {
		return nil
	}
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	now := time.Now().UnixMilli()
	for _, u := range dataURLs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO uploads (data_url, created_at) VALUES (?, ?)`, u, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("append upload: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit uploads: %w", err)
	}
	return nil
}

// LocalImages returns the data URLs of all unsynced uploads, oldest first
// (gallery merge order for the local source).
func (s Store) LocalImages(ctx context.Context) ([]string, error) {
	uploads, err := s.list(ctx, `WHERE synced_at IS NULL`)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(uploads))
	for _, u := range uploads {
		out = append(out, u.DataURL)
	}
	return out, nil
}

// Pending returns unsynced uploads with ids, for retry against the backend.
func (s Store) Pending(ctx context.Context) ([]Upload, error) {
	return s.list(ctx, `WHERE synced_at IS NULL`)
}

// All returns every recorded upload, oldest first.
func (s Store) All(ctx context.Context) ([]Upload, error) {
	return s.list(ctx, ``)
}

func (s Store) list(ctx context.Context, where string) ([]Upload, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, data_url, created_at, synced_at FROM uploads `+where+` ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	var out []Upload
	for rows.Next() {
		var u Upload
		var createdAt int64
		var syncedAt sql.NullInt64
		if err := rows.Scan(&u.ID, &u.DataURL, &createdAt, &syncedAt); err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		u.CreatedAt = time.UnixMilli(createdAt)
		u.Synced = syncedAt.Valid
		out = append(out, u)
	}
	return out, rows.Err()
}

// MarkSynced records that the given uploads now exist remotely. They stop
// counting as a local gallery source (the live feed covers them).
func (s Store) MarkSynced(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	now := time.Now().UnixMilli()
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE uploads SET synced_at = ? WHERE id = ?`, now, id); err != nil {
			tx.Rollback()
			return fmt.Errorf("mark synced: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit mark synced: %w", err)
	}
	return nil
}

// ModTime is the database file's last modification time. Zero when the file
// does not exist yet. Used as a cheap cross-process change probe when the
// fsnotify watch is unavailable.
func (s Store) ModTime() time.Time {
	st, err := os.Stat(s.DBPath())
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}
