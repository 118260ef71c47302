package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"logsweep/internal/scan"

	_ "github.com/mattn/go-sqlite3"
)

// DB manages the SQLite database for removal history
type DB struct {
	db *sql.DB
}

// Record represents a single removal event
type Record struct {
	ID           int64
	Timestamp    time.Time
	Action       string // REMOVE, SKIP, or ERROR
	Path         string
	FileName     string
	Pattern      string
	Size         int64
	ErrorMessage string
	CreatedAt    time.Time
}

// New opens the database at dbPath and initializes the schema,
// creating the parent directory if needed.
func New(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	// file: prefix with _loc=auto enables automatic DATETIME parsing
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?_loc=auto")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Exec instead of Ping so the database file is created if missing
	if _, err := db.Exec("SELECT 1"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database (check permissions on %s): %w", dbPath, err)
	}

	// WAL mode lets the query CLI read while a sweep is writing
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	h := &DB{db: db}
	if err := h.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

// initSchema creates tables and indexes if they don't exist
func (h *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS removals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		action TEXT NOT NULL,
		path TEXT NOT NULL,
		file_name TEXT NOT NULL,
		pattern TEXT NOT NULL,
		size INTEGER NOT NULL,
		error_message TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_removals_timestamp ON removals(timestamp);
	CREATE INDEX IF NOT EXISTS idx_removals_action ON removals(action);
	CREATE INDEX IF NOT EXISTS idx_removals_pattern ON removals(pattern);
	`
	if _, err := h.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// RecordRemoval writes one removal event. errMsg is empty for REMOVE.
func (h *DB) RecordRemoval(action string, cand scan.Candidate, errMsg string) error {
	query := `
	INSERT INTO removals (timestamp, action, path, file_name, pattern, size, error_message)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := h.db.Exec(query,
		time.Now().UTC(),
		action,
		cand.Path,
		cand.Name,
		cand.Pattern,
		cand.Size,
		errMsg,
	)
	if err != nil {
		return fmt.Errorf("failed to record removal: %w", err)
	}
	return nil
}

// Close closes the database connection
func (h *DB) Close() error {
	return h.db.Close()
}
