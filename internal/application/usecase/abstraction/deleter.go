package abstraction

import "context"

// Deleter defines the interface for removing an image and its blobs.
type Deleter interface {
	DeleteImage(ctx context.Context, id int64) error
}
