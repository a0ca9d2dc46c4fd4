package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

type ImageRetriever struct {
	db *Database
}

func NewImageRetriever(db *Database) *ImageRetriever {
	return &ImageRetriever{db: db}
}

func (r *ImageRetriever) GetByID(ctx context.Context, id int64) (*model.ImageRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	row := r.db.DB.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM images WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.NewNotFound(fmt.Sprintf("no image with id %d", id))
		}

		return nil, err
	}

	rec.Tags, err = loadTags(ctx, r.db.DB, rec.ID)
	if err != nil {
		return nil, err
	}

	return rec, nil
}
