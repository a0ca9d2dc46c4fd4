package usecase

import (
	"context"
	"time"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/blob"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/database"
	"github.com/SniffleSneeze/thumbnail-server/pkg/logger"
)

// Sweeper reclaims orphan blobs: objects in the blob store that no committed
// record references. The grace period protects blobs belonging to ingestions
// that have written their bytes but not yet committed metadata.
type Sweeper struct {
	blobs  blob.Store
	lister database.Lister
	grace  time.Duration
}

// NewSweeper creates a new Sweeper usecase.
func NewSweeper(blobs blob.Store, lister database.Lister, grace time.Duration) *Sweeper {
	return &Sweeper{
		blobs:  blobs,
		lister: lister,
		grace:  grace,
	}
}

// Sweep removes unreferenced blobs older than the grace period and returns
// how many were reclaimed.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	records, err := s.lister.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]struct{}, 2*len(records))
	for i := range records {
		referenced[records[i].OriginalBlobRef] = struct{}{}
		referenced[records[i].ThumbBlobRef] = struct{}{}
	}

	blobs, err := s.blobs.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-s.grace)
	removed := 0

	for _, info := range blobs {
		if _, ok := referenced[info.Ref]; ok {
			continue
		}
		if info.LastModified.After(cutoff) {
			continue
		}

		if err := s.blobs.Remove(ctx, info.Ref); err != nil {
			logger.Error("failed to remove orphan blob", "ref", info.Ref, "err", err)

			continue
		}
		removed++
	}

	return removed, nil
}
