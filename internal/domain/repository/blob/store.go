package blob

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/entity"
)

// Store persists opaque byte payloads under generated references. A payload
// is either fully visible under its ref or not visible at all; readers never
// observe partial writes.
type Store interface {
	Put(ctx context.Context, data []byte, contentType string) (entity.StoredBlob, error)
	Get(ctx context.Context, ref string) ([]byte, error)
	Remove(ctx context.Context, ref string) error
	List(ctx context.Context) ([]entity.BlobInfo, error)
}
