package services

import (
	"context"

	"github.com/google/uuid"

	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const DefaultSearchLimit = 20

type ExploreServiceInterface interface {
	SearchCities(ctx context.Context, query, region string, skip, limit int) ([]response_models.CityResponse, error)
	SearchActivities(ctx context.Context, query, cityID, category string, skip, limit int) ([]response_models.ActivityResponse, error)
}

type ExploreService struct {
	catalogRepo repositories.CatalogRepository
}

func NewExploreService(catalogRepo repositories.CatalogRepository) ExploreServiceInterface {
	return &ExploreService{catalogRepo: catalogRepo}
}

func (s *ExploreService) SearchCities(ctx context.Context, query, region string, skip, limit int) ([]response_models.CityResponse, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	cities, err := s.catalogRepo.SearchCities(ctx, query, region, skip, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildCityResponses(cities), nil
}

func (s *ExploreService) SearchActivities(ctx context.Context, query, cityID, category string, skip, limit int) ([]response_models.ActivityResponse, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var cityFilter *uuid.UUID
	if cityID != "" {
		parsed, err := uuid.Parse(cityID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		cityFilter = &parsed
	}

	activities, err := s.catalogRepo.SearchActivities(ctx, query, cityFilter, category, skip, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildActivityResponses(activities), nil
}
