package services

import (
	"context"

	"github.com/google/uuid"

	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type CommunityServiceInterface interface {
	GetSharedTrip(ctx context.Context, shareToken string) (*response_models.TripResponse, error)
	CopyTrip(ctx context.Context, requesterID, tripID uuid.UUID) (*response_models.TripResponse, error)
}

type CommunityService struct {
	tripRepo repositories.TripRepository
}

func NewCommunityService(tripRepo repositories.TripRepository) CommunityServiceInterface {
	return &CommunityService{tripRepo: tripRepo}
}

// GetSharedTrip is a public lookup by opaque token: no ownership check.
func (s *CommunityService) GetSharedTrip(ctx context.Context, shareToken string) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetByShareToken(ctx, shareToken)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return response_models.BuildTripResponse(trip), nil
}

func (s *CommunityService) CopyTrip(ctx context.Context, requesterID, tripID uuid.UUID) (*response_models.TripResponse, error) {
	source, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if source == nil {
		return nil, utils.ErrTripNotFound
	}
	if !source.IsPublic && source.UserID != requesterID {
		return nil, utils.ErrNotOwner
	}

	newID, err := s.tripRepo.Copy(ctx, source, requesterID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	copied, err := s.tripRepo.GetByID(ctx, newID)
	if err != nil || copied == nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildTripResponse(copied), nil
}
