package repository

import (
	"context"

	"dental-landing/internal/domain/entity"

	"github.com/google/uuid"
)

// ViewStateRepository stores snapshots of mounted views so they can be
// restored by another process. Find returns (nil, nil) when nothing is stored.
type ViewStateRepository interface {
	Save(ctx context.Context, state *entity.ViewState) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ViewState, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
