package dto

import (
	"fmt"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

// ImageDescriptor is the API-facing view of a committed image record.
type ImageDescriptor struct {
	ID           int64    `json:"id"`
	Filename     string   `json:"filename"`
	ContentType  string   `json:"type"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	Tags         []string `json:"tags"`
	Uploaded     int64    `json:"uploaded"`
	URL          string   `json:"url"`
	ThumbnailURL string   `json:"thumbnail_url"`
}

// NewImageDescriptor builds a descriptor for rec, with URLs rooted at the
// server's public address.
func NewImageDescriptor(rec *model.ImageRecord, address string) ImageDescriptor {
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}

	return ImageDescriptor{
		ID:           rec.ID,
		Filename:     rec.OriginalFilename,
		ContentType:  rec.ContentType,
		Width:        rec.Width,
		Height:       rec.Height,
		Tags:         tags,
		Uploaded:     rec.CreatedAt.Unix(),
		URL:          fmt.Sprintf("%s/images/%d/original", address, rec.ID),
		ThumbnailURL: fmt.Sprintf("%s/images/%d/thumbnail", address, rec.ID),
	}
}
