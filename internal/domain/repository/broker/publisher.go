package broker

import "context"

// Publisher announces committed image ids to downstream consumers. Publishing
// happens strictly after the metadata commit and is best-effort.
type Publisher interface {
	Publish(ctx context.Context, imageID int64) error
}
