package abstraction

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

// Getter defines the interface for resolving image ids to records and bytes.
type Getter interface {
	GetRecord(ctx context.Context, id int64) (*model.ImageRecord, error)
	GetOriginal(ctx context.Context, id int64) ([]byte, string, error)
	GetThumbnail(ctx context.Context, id int64) ([]byte, string, error)
}
