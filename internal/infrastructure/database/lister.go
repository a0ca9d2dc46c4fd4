package database

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

type ImageLister struct {
	db *Database
}

func NewImageLister(db *Database) *ImageLister {
	return &ImageLister{db: db}
}

// ListAll returns every committed record, ordered by creation time then id so
// callers see a stable sequence.
func (l *ImageLister) ListAll(ctx context.Context) ([]model.ImageRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	return queryRecords(ctx, l.db.DB,
		`SELECT `+recordColumns+` FROM images ORDER BY created_at, id`)
}
