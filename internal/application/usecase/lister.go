package usecase

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/dto"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/database"
)

// Lister implements the Lister abstraction for enumerating image records.
type Lister struct {
	lister         database.Lister
	defaultAddress string
}

// NewLister creates a new Lister usecase.
func NewLister(lister database.Lister, address string) *Lister {
	return &Lister{
		lister:         lister,
		defaultAddress: address,
	}
}

// ListImages returns every committed record in stable order.
func (l *Lister) ListImages(ctx context.Context) ([]dto.ImageDescriptor, error) {
	records, err := l.lister.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	descriptors := make([]dto.ImageDescriptor, 0, len(records))
	for i := range records {
		descriptors = append(descriptors, dto.NewImageDescriptor(&records[i], l.defaultAddress))
	}

	return descriptors, nil
}
