package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	writer := NewImageWriter(db)

	now := time.Now().UTC().Truncate(time.Second)

	tests := []struct {
		name   string
		modify func(rec *model.ImageRecord)
	}{
		{
			name:   "full record",
			modify: func(_ *model.ImageRecord) {},
		},
		{
			name: "record without tags",
			modify: func(rec *model.ImageRecord) {
				rec.Tags = nil
			},
		},
		{
			name: "record with a single tag",
			modify: func(rec *model.ImageRecord) {
				rec.Tags = []string{"cat"}
			},
		},
	}

	var lastID int64
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord(now)
			tt.modify(rec)

			id, err := writer.Insert(context.Background(), rec)
			require.NoError(t, err)
			assert.Greater(t, id, lastID, "identifiers must be strictly increasing")
			lastID = id
		})
	}
}

func TestInsertAssignsDistinctIDs(t *testing.T) {
	t.Parallel()
	db := setupDB(t)

	now := time.Now().UTC().Truncate(time.Second)

	first := insertRecord(t, db, baseRecord(now))
	second := insertRecord(t, db, baseRecord(now))

	assert.NotEqual(t, first, second)
}
