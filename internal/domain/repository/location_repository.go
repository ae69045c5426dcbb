package repository

import (
	"context"

	"dental-landing/internal/domain/entity"
)

type LocationRepository interface {
	FindByRegion(ctx context.Context, region entity.Region) (*entity.LocationRecord, error)
	FindAll(ctx context.Context) ([]entity.LocationRecord, error)
}
