package entity

import "time"

// StoredBlob is the blob store's receipt for one durably written payload.
type StoredBlob struct {
	Ref         string `json:"ref"`
	Size        int64  `json:"size"`
	ContentType string `json:"type"`
}

// BlobInfo describes a stored object during a listing, as used by the
// orphan sweep.
type BlobInfo struct {
	Ref          string    `json:"ref"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}
