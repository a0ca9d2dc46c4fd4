package abstraction

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/dto"
)

type Lister interface {
	ListImages(ctx context.Context) ([]dto.ImageDescriptor, error)
}
