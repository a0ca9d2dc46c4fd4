package database

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

// Lister returns every committed record in stable order: created_at, then id.
type Lister interface {
	ListAll(ctx context.Context) ([]model.ImageRecord, error)
}
