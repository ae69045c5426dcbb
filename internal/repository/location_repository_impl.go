package repository

import (
	"context"
	"fmt"

	"dental-landing/internal/domain/entity"
	domainRepo "dental-landing/internal/domain/repository"
	"dental-landing/pkg/validator"
)

type locationRepository struct {
	records map[entity.Region]*entity.LocationRecord
	order   []entity.Region
}

// NewLocationRepository builds the read-only region store. Every supported
// region must have exactly one valid record.
func NewLocationRepository(records []entity.LocationRecord, v *validator.CustomValidator) (domainRepo.LocationRepository, error) {
	repo := &locationRepository{
		records: make(map[entity.Region]*entity.LocationRecord, len(records)),
	}

	for i := range records {
		record := records[i]
		if !record.Region.Valid() {
			return nil, fmt.Errorf("record %d: %w: %q", i, entity.ErrUnknownRegion, record.Region)
		}
		if _, dup := repo.records[record.Region]; dup {
			return nil, fmt.Errorf("duplicate record for region %s", record.Region)
		}
		if err := v.Validate(&record); err != nil {
			return nil, fmt.Errorf("invalid record for region %s: %w", record.Region, err)
		}
		repo.records[record.Region] = &record
		repo.order = append(repo.order, record.Region)
	}

	for _, region := range entity.Regions() {
		if _, ok := repo.records[region]; !ok {
			return nil, fmt.Errorf("missing record for region %s", region)
		}
	}

	return repo, nil
}

// FindByRegion returns (nil, nil) for an unknown region.
func (r *locationRepository) FindByRegion(ctx context.Context, region entity.Region) (*entity.LocationRecord, error) {
	record, ok := r.records[region]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (r *locationRepository) FindAll(ctx context.Context) ([]entity.LocationRecord, error) {
	records := make([]entity.LocationRecord, 0, len(r.order))
	for _, region := range r.order {
		records = append(records, *r.records[region])
	}
	return records, nil
}
