package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

func setupDB(t *testing.T) *Database {
	t.Helper()

	db, err := Connect(Config{
		URI:          filepath.Join(t.TempDir(), "meta.db"),
		QueryTimeout: 30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func baseRecord(createdAt time.Time) *model.ImageRecord {
	return &model.ImageRecord{
		OriginalFilename: "holiday.jpg",
		ContentType:      "image/jpeg",
		Width:            4000,
		Height:           3000,
		Tags:             []string{"beach", "sunset"},
		CreatedAt:        createdAt,
		OriginalBlobRef:  "orig-ref.jpg",
		ThumbBlobRef:     "thumb-ref.jpg",
	}
}

func insertRecord(t *testing.T, db *Database, rec *model.ImageRecord) int64 {
	t.Helper()

	id, err := NewImageWriter(db).Insert(context.Background(), rec)
	require.NoError(t, err)
	require.Positive(t, id)

	return id
}
