package services

import (
	"context"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type ItineraryServiceInterface interface {
	AddStop(ctx context.Context, userID, tripID uuid.UUID, request request_models.AddStopRequest) (*response_models.TripStopResponse, error)
	RemoveStop(ctx context.Context, userID, stopID uuid.UUID) error
	AddActivity(ctx context.Context, userID, stopID uuid.UUID, request request_models.AddStopActivityRequest) (*response_models.StopActivityResponse, error)
	RemoveActivity(ctx context.Context, userID, activityID uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	tripRepo      repositories.TripRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository, tripRepo repositories.TripRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		tripRepo:      tripRepo,
	}
}

func (s *ItineraryService) AddStop(ctx context.Context, userID, tripID uuid.UUID, request request_models.AddStopRequest) (*response_models.TripStopResponse, error) {
	if err := s.checkTripOwner(ctx, userID, tripID); err != nil {
		return nil, err
	}

	cityID, err := uuid.Parse(request.CityID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	stop := &db_models.TripStop{
		TripID:     tripID,
		CityID:     cityID,
		OrderIndex: request.OrderIndex,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if err := s.itineraryRepo.InsertStop(ctx, stop); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Re-fetch with the city attached for the response.
	created, err := s.itineraryRepo.GetStopWithCity(ctx, stop.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildTripStopResponse(created), nil
}

func (s *ItineraryService) RemoveStop(ctx context.Context, userID, stopID uuid.UUID) error {
	stop, err := s.itineraryRepo.GetStop(ctx, stopID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if stop == nil {
		return utils.ErrStopNotFound
	}
	if err := s.checkTripOwner(ctx, userID, stop.TripID); err != nil {
		return err
	}

	if err := s.itineraryRepo.DeleteStopCascade(ctx, stopID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) AddActivity(ctx context.Context, userID, stopID uuid.UUID, request request_models.AddStopActivityRequest) (*response_models.StopActivityResponse, error) {
	stop, err := s.itineraryRepo.GetStop(ctx, stopID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stop == nil {
		return nil, utils.ErrStopNotFound
	}
	if err := s.checkTripOwner(ctx, userID, stop.TripID); err != nil {
		return nil, err
	}

	activityID, err := uuid.Parse(request.ActivityID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	activity := &db_models.StopActivity{
		StopID:        stopID,
		ActivityID:    activityID,
		ScheduledTime: request.ScheduledTime,
		Notes:         request.Notes,
	}
	if err := s.itineraryRepo.InsertStopActivity(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	created, err := s.itineraryRepo.GetStopActivityWithActivity(ctx, activity.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildStopActivityResponse(created), nil
}

func (s *ItineraryService) RemoveActivity(ctx context.Context, userID, activityID uuid.UUID) error {
	activity, err := s.itineraryRepo.GetStopActivity(ctx, activityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}

	stop, err := s.itineraryRepo.GetStop(ctx, activity.StopID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if stop == nil {
		return utils.ErrStopNotFound
	}
	if err := s.checkTripOwner(ctx, userID, stop.TripID); err != nil {
		return err
	}

	if err := s.itineraryRepo.DeleteStopActivity(ctx, activityID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// checkTripOwner walks stop -> trip -> user so itinerary mutations can never
// touch another user's trip, including deletes.
func (s *ItineraryService) checkTripOwner(ctx context.Context, userID, tripID uuid.UUID) error {
	trip, err := s.tripRepo.GetMeta(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if trip.UserID != userID {
		return utils.ErrNotOwner
	}
	return nil
}
