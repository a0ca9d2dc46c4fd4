package abstraction

import (
	"context"
	"io"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

type Ingestor interface {
	Ingest(ctx context.Context, filename string, body io.Reader,
		tags []string) (*model.ImageRecord, error)
}
