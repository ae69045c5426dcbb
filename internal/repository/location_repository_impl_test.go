package repository

import (
	"context"
	"testing"

	"dental-landing/internal/domain/entity"
	"dental-landing/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepository_DefaultCatalog(t *testing.T) {
	repo, err := NewLocationRepository(DefaultCatalog(), validator.NewValidator())
	require.NoError(t, err)

	ctx := context.Background()
	for _, region := range entity.Regions() {
		record, err := repo.FindByRegion(ctx, region)
		require.NoError(t, err)
		require.NotNil(t, record, region)

		assert.Equal(t, region, record.Region)
		assert.NotEmpty(t, record.Staff)
		assert.NotEmpty(t, record.Services)
		assert.NotEmpty(t, record.Testimonials)
		assert.NotEmpty(t, record.WhatsApp)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, entity.RegionChile, all[0].Region)
	assert.Equal(t, entity.RegionColombia, all[1].Region)
}

func TestLocationRepository_UnknownRegion(t *testing.T) {
	repo, err := NewLocationRepository(DefaultCatalog(), validator.NewValidator())
	require.NoError(t, err)

	record, err := repo.FindByRegion(context.Background(), entity.Region("peru"))
	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestLocationRepository_RejectsEmptyLists(t *testing.T) {
	catalog := DefaultCatalog()
	catalog[1].Testimonials = nil

	_, err := NewLocationRepository(catalog, validator.NewValidator())
	assert.Error(t, err)
}

func TestLocationRepository_RejectsMissingRegion(t *testing.T) {
	catalog := DefaultCatalog()[:1]

	_, err := NewLocationRepository(catalog, validator.NewValidator())
	assert.ErrorContains(t, err, "missing record for region colombia")
}

func TestLocationRepository_RejectsDuplicateRegion(t *testing.T) {
	catalog := DefaultCatalog()
	catalog[1].Region = entity.RegionChile

	_, err := NewLocationRepository(catalog, validator.NewValidator())
	assert.ErrorContains(t, err, "duplicate record")
}

func TestLocationRepository_OptionalLinks(t *testing.T) {
	catalog := DefaultCatalog()
	catalog[0].WhatsApp = ""
	catalog[0].Staff[0].Image = ""

	repo, err := NewLocationRepository(catalog, validator.NewValidator())
	require.NoError(t, err)

	record, _ := repo.FindByRegion(context.Background(), entity.RegionChile)
	assert.Empty(t, record.WhatsApp)
	assert.Equal(t, entity.PlaceholderImage, record.Staff[0].Photo())
	assert.Equal(t, "https://www.instagram.com/bybodontoestetica", record.InstagramURL())
}
