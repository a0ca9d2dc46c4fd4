package usecase

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/blob"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/database"
)

// Getter resolves committed image ids to records and stored bytes. Read-only.
type Getter struct {
	retriever database.Retriever
	blobs     blob.Store
}

// NewGetter creates a new Getter usecase.
func NewGetter(retriever database.Retriever, blobs blob.Store) *Getter {
	return &Getter{
		retriever: retriever,
		blobs:     blobs,
	}
}

func (g *Getter) GetRecord(ctx context.Context, id int64) (*model.ImageRecord, error) {
	return g.retriever.GetByID(ctx, id)
}

// GetOriginal returns the original bytes and their content type.
func (g *Getter) GetOriginal(ctx context.Context, id int64) ([]byte, string, error) {
	rec, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, err := g.blobs.Get(ctx, rec.OriginalBlobRef)
	if err != nil {
		return nil, "", err
	}

	return data, rec.ContentType, nil
}

// GetThumbnail returns the derived thumbnail bytes. Thumbnails are always
// encoded as JPEG at ingestion time.
func (g *Getter) GetThumbnail(ctx context.Context, id int64) ([]byte, string, error) {
	rec, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, err := g.blobs.Get(ctx, rec.ThumbBlobRef)
	if err != nil {
		return nil, "", err
	}

	return data, "image/jpeg", nil
}
