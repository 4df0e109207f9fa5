package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists publish history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS publish_history (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			group_name TEXT,
			period     TEXT,
			object_key TEXT,
			location   TEXT,
			fallback   INTEGER,
			bytes      INTEGER,
			charts     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_publish_ts ON publish_history(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPublish(evt *PublishEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fallback := 0
	if evt.Fallback {
		fallback = 1
	}
	_, err := r.db.Exec(`INSERT INTO publish_history
		(timestamp, group_name, period, object_key, location, fallback, bytes, charts)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Group, evt.Period, evt.ObjectKey,
		evt.Location, fallback, evt.Bytes, evt.Charts,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
