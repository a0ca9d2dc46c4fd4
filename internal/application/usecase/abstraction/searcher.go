package abstraction

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/dto"
)

type Searcher interface {
	SearchByTag(ctx context.Context, tag string) ([]dto.ImageDescriptor, error)
}
