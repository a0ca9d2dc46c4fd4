package usecase

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/blob"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/database"
	"github.com/SniffleSneeze/thumbnail-server/pkg/logger"
)

// Deleter removes a committed record together with both of its blobs. The
// metadata row goes first so no reader ever resolves a record with dangling
// blob references; blobs that outlive a failed removal are reclaimed by the
// sweep.
type Deleter struct {
	retriever database.Retriever
	remover   database.Remover
	blobs     blob.Store
}

// NewDeleter creates a new Deleter usecase.
func NewDeleter(retriever database.Retriever, remover database.Remover, blobs blob.Store) *Deleter {
	return &Deleter{
		retriever: retriever,
		remover:   remover,
		blobs:     blobs,
	}
}

func (d *Deleter) DeleteImage(ctx context.Context, id int64) error {
	rec, err := d.retriever.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := d.remover.RemoveByID(ctx, id); err != nil {
		return err
	}

	for _, ref := range []string{rec.OriginalBlobRef, rec.ThumbBlobRef} {
		if err := d.blobs.Remove(ctx, ref); err != nil {
			logger.Error("failed to remove blob of deleted image", "id", id, "ref", ref, "err", err)
		}
	}

	return nil
}
