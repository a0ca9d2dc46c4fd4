package database

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

// Searcher matches records whose normalized tag set contains the query tag.
type Searcher interface {
	SearchByTag(ctx context.Context, tag string) ([]model.ImageRecord, error)
}
