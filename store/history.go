// Package store persists saved QR codes: PNG files on disk and a SQLite log
// of every committed download.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/openclaw/qrgen/workflow"
)

// Record is one committed download.
type Record struct {
	ID       string `json:"id"`
	Address  string `json:"address"`
	Filename string `json:"filename"`
	Bytes    int    `json:"bytes"`
	SavedAt  int64  `json:"saved_at"`
}

// History records saves in SQLite. It implements workflow.Saver.
type History struct {
	db  *sql.DB
	now func() time.Time
}

const createSavesTable = `
CREATE TABLE IF NOT EXISTS saves (
    id TEXT PRIMARY KEY,
    address TEXT NOT NULL,
    filename TEXT NOT NULL,
    bytes INTEGER NOT NULL DEFAULT 0,
    saved_at INTEGER NOT NULL
);
`

const createIndexes = `
CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at);
`

// OpenHistory opens (or creates) the database at dbPath and initialises the
// schema.
func OpenHistory(dbPath string) (*History, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, stmt := range []string{createSavesTable, createIndexes} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec schema statement: %w", err)
		}
	}

	return &History{db: db, now: time.Now}, nil
}

// Save inserts a record for artifact saved as filename.
func (h *History) Save(ctx context.Context, artifact *workflow.Artifact, filename string) error {
	const query = `
		INSERT INTO saves (id, address, filename, bytes, saved_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := h.db.ExecContext(ctx, query,
		uuid.NewString(),
		artifact.Address,
		filename,
		len(artifact.PNG),
		h.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// List returns up to limit records, newest first.
func (h *History) List(ctx context.Context, limit int) ([]Record, error) {
	const query = `
		SELECT id, address, filename, bytes, saved_at
		FROM saves
		ORDER BY saved_at DESC, rowid DESC
		LIMIT ?
	`

	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Address, &r.Filename, &r.Bytes, &r.SavedAt); err != nil {
			return nil, fmt.Errorf("scan record row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate record rows: %w", err)
	}
	return records, nil
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	return h.db.Close()
}
