package usecase

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/dto"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/database"
)

// Searcher implements tag search over committed records.
type Searcher struct {
	searcher       database.Searcher
	defaultAddress string
}

// NewSearcher creates a new Searcher usecase.
func NewSearcher(searcher database.Searcher, address string) *Searcher {
	return &Searcher{
		searcher:       searcher,
		defaultAddress: address,
	}
}

// SearchByTag returns the records whose normalized tag set contains the
// normalized query tag. No match is an empty slice, not an error.
func (s *Searcher) SearchByTag(ctx context.Context, tag string) ([]dto.ImageDescriptor, error) {
	records, err := s.searcher.SearchByTag(ctx, tag)
	if err != nil {
		return nil, err
	}

	descriptors := make([]dto.ImageDescriptor, 0, len(records))
	for i := range records {
		descriptors = append(descriptors, dto.NewImageDescriptor(&records[i], s.defaultAddress))
	}

	return descriptors, nil
}
