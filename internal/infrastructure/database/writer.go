package database

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

type ImageWriter struct {
	db *Database
}

func NewImageWriter(db *Database) *ImageWriter {
	return &ImageWriter{db: db}
}

// Insert commits rec and its tags in one transaction and returns the
// identifier the store assigned. Until the transaction commits, no reader
// can observe any part of the record.
func (w *ImageWriter) Insert(ctx context.Context, rec *model.ImageRecord) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	tx, err := w.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
		INSERT INTO images (original_filename, content_type, width, height,
			original_blob_ref, thumb_blob_ref, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.OriginalFilename, rec.ContentType, rec.Width, rec.Height,
		rec.OriginalBlobRef, rec.ThumbBlobRef, rec.CreatedAt)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, tag := range rec.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO image_tags (image_id, tag) VALUES (?, ?)`, id, tag); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return id, nil
}
