package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Config represents the configs used by the metadata store.
type Config struct {
	// URI is the sqlite connection string, taken from the environment.
	URI          string
	QueryTimeout int64 `yaml:"query_timeout_in_ms"`
}

type Database struct {
	DB           *sql.DB
	QueryTimeout time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS images (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	original_filename TEXT    NOT NULL,
	content_type      TEXT    NOT NULL,
	width             INTEGER NOT NULL,
	height            INTEGER NOT NULL,
	original_blob_ref TEXT    NOT NULL,
	thumb_blob_ref    TEXT    NOT NULL,
	created_at        TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS image_tags (
	image_id INTEGER NOT NULL REFERENCES images(id) ON DELETE CASCADE,
	tag      TEXT    NOT NULL,
	PRIMARY KEY (image_id, tag)
);

CREATE INDEX IF NOT EXISTS idx_image_tags_tag ON image_tags(tag);
`

// Connect opens the sqlite database at cfg.URI and initializes the schema.
// AUTOINCREMENT keeps identifiers monotonic and never reused, even after a
// row is deleted.
func Connect(cfg Config) (*Database, error) {
	db, err := sql.Open("sqlite3", cfg.URI+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 5000
	}
	queryTimeout := time.Duration(cfg.QueryTimeout) * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, err
	}

	return &Database{
		DB:           db,
		QueryTimeout: queryTimeout,
	}, nil
}

func (db *Database) Stop() error {
	return db.DB.Close()
}
