package model

import "time"

// ImageRecord is the durable unit of the system: one committed upload, its
// metadata, and references to the original and thumbnail blobs. A record is
// only ever created whole; there is no update operation.
type ImageRecord struct {
	ID               int64     `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	ContentType      string    `json:"content_type"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"created_at"`
	OriginalBlobRef  string    `json:"-"`
	ThumbBlobRef     string    `json:"-"`
}
