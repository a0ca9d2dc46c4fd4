package database

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

type ImageSearcher struct {
	db *Database
}

func NewImageSearcher(db *Database) *ImageSearcher {
	return &ImageSearcher{db: db}
}

// SearchByTag matches records whose tag set contains the normalized form of
// tag. A miss is an empty slice, not an error.
func (s *ImageSearcher) SearchByTag(ctx context.Context, tag string) ([]model.ImageRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	return queryRecords(ctx, s.db.DB, `
		SELECT `+recordColumns+` FROM images
		WHERE id IN (SELECT image_id FROM image_tags WHERE tag = ?)
		ORDER BY created_at, id`,
		model.NormalizeTag(tag))
}
