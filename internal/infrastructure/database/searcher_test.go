package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

func TestSearchByTag(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	searcher := NewImageSearcher(db)

	now := time.Now().UTC().Truncate(time.Second)

	tagged := func(createdAt time.Time, tags ...string) int64 {
		rec := baseRecord(createdAt)
		rec.Tags = tags

		return insertRecord(t, db, rec)
	}

	cat1 := tagged(now.Add(-2*time.Hour), "cat", "pet")
	_ = tagged(now.Add(-1*time.Hour), "dog")
	cat2 := tagged(now, "cat")

	tests := []struct {
		name    string
		tag     string
		wantIDs []int64
	}{
		{
			name:    "exact tag",
			tag:     "cat",
			wantIDs: []int64{cat1, cat2},
		},
		{
			name:    "query is normalized before matching",
			tag:     "  CAT ",
			wantIDs: []int64{cat1, cat2},
		},
		{
			name:    "no match yields an empty slice",
			tag:     "bird",
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := searcher.SearchByTag(context.Background(), tt.tag)
			require.NoError(t, err)

			ids := make([]int64, 0, len(records))
			for i := range records {
				ids = append(ids, records[i].ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRemoveByID(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	remover := NewImageRemover(db)
	retriever := NewImageRetriever(db)

	now := time.Now().UTC().Truncate(time.Second)
	id := insertRecord(t, db, baseRecord(now))

	require.NoError(t, remover.RemoveByID(context.Background(), id))

	_, err := retriever.GetByID(context.Background(), id)
	assert.True(t, model.IsNotFound(err))

	// Tags are removed by the cascade.
	var count int
	require.NoError(t, db.DB.QueryRow(
		`SELECT COUNT(*) FROM image_tags WHERE image_id = ?`, id).Scan(&count))
	assert.Zero(t, count)

	// The freed identifier is not handed out again.
	next := insertRecord(t, db, baseRecord(now))
	assert.Greater(t, next, id)

	err = remover.RemoveByID(context.Background(), 99999)
	assert.True(t, model.IsNotFound(err))
}
