package database

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

// Writer commits one image record, tags included, as a single transaction.
// The store assigns the identifier and returns it.
type Writer interface {
	Insert(ctx context.Context, rec *model.ImageRecord) (int64, error)
}
