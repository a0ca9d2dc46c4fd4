package database

import (
	"context"
	"fmt"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

type ImageRemover struct {
	db *Database
}

func NewImageRemover(db *Database) *ImageRemover {
	return &ImageRemover{db: db}
}

// RemoveByID deletes the record and, via the foreign key cascade, its tags.
// The freed identifier is never handed out again.
func (r *ImageRemover) RemoveByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.NewNotFound(fmt.Sprintf("no image with id %d", id))
	}

	return nil
}
