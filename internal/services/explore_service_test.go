package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type mockCatalogRepo struct {
	searchCities     func(ctx context.Context, query, region string, skip, limit int) ([]db_models.City, error)
	searchActivities func(ctx context.Context, query string, cityID *uuid.UUID, category string, skip, limit int) ([]db_models.Activity, error)
}

func (m *mockCatalogRepo) SearchCities(ctx context.Context, query, region string, skip, limit int) ([]db_models.City, error) {
	return m.searchCities(ctx, query, region, skip, limit)
}
func (m *mockCatalogRepo) SearchActivities(ctx context.Context, query string, cityID *uuid.UUID, category string, skip, limit int) ([]db_models.Activity, error) {
	return m.searchActivities(ctx, query, cityID, category, skip, limit)
}
func (m *mockCatalogRepo) CountCities(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockCatalogRepo) InsertCities(ctx context.Context, cities []db_models.City) error {
	return nil
}
func (m *mockCatalogRepo) InsertActivities(ctx context.Context, activities []db_models.Activity) error {
	return nil
}

var _ repositories.CatalogRepository = (*mockCatalogRepo)(nil)

func TestExploreService_SearchCities_DefaultLimit(t *testing.T) {
	var gotLimit int
	repo := &mockCatalogRepo{
		searchCities: func(_ context.Context, query, region string, skip, limit int) ([]db_models.City, error) {
			gotLimit = limit
			return []db_models.City{{Name: "Paris", Country: "France"}}, nil
		},
	}
	svc := services.NewExploreService(repo)

	cities, err := svc.SearchCities(context.Background(), "par", "", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, services.DefaultSearchLimit, gotLimit)
	require.Len(t, cities, 1)
	assert.Equal(t, "Paris", cities[0].Name)
}

func TestExploreService_SearchActivities_BadCityID(t *testing.T) {
	svc := services.NewExploreService(&mockCatalogRepo{})

	_, err := svc.SearchActivities(context.Background(), "", "not-a-uuid", "", 0, 20)

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestExploreService_SearchActivities_FiltersPassedThrough(t *testing.T) {
	cityID := uuid.New()
	var gotCity *uuid.UUID
	var gotCategory string
	repo := &mockCatalogRepo{
		searchActivities: func(_ context.Context, query string, city *uuid.UUID, category string, skip, limit int) ([]db_models.Activity, error) {
			gotCity = city
			gotCategory = category
			return nil, nil
		},
	}
	svc := services.NewExploreService(repo)

	_, err := svc.SearchActivities(context.Background(), "museum", cityID.String(), "culture", 0, 20)

	require.NoError(t, err)
	require.NotNil(t, gotCity)
	assert.Equal(t, cityID, *gotCity)
	assert.Equal(t, "culture", gotCategory)
}
