package database

import (
	"context"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id int64) (*model.ImageRecord, error)
}
