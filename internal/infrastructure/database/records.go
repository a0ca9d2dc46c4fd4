package database

import (
	"context"
	"database/sql"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

const recordColumns = `id, original_filename, content_type, width, height,
	original_blob_ref, thumb_blob_ref, created_at`

func scanRecord(row interface{ Scan(...any) error }) (*model.ImageRecord, error) {
	var rec model.ImageRecord
	err := row.Scan(&rec.ID, &rec.OriginalFilename, &rec.ContentType,
		&rec.Width, &rec.Height, &rec.OriginalBlobRef, &rec.ThumbBlobRef, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// queryRecords runs a query over the images table and attaches each record's
// tags before returning.
func queryRecords(ctx context.Context, db *sql.DB, query string, args ...any) ([]model.ImageRecord, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.ImageRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		tags, err := loadTags(ctx, db, records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].Tags = tags
	}

	return records, nil
}

func loadTags(ctx context.Context, db *sql.DB, imageID int64) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT tag FROM image_tags WHERE image_id = ? ORDER BY tag`, imageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
