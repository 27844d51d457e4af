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

type TripServiceInterface interface {
	ListTrips(ctx context.Context, userID uuid.UUID, skip, limit int) ([]response_models.TripResponse, error)
	CreateTrip(ctx context.Context, userID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, userID, tripID uuid.UUID, request request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) error

	AddExpense(ctx context.Context, userID, tripID uuid.UUID, request request_models.CreateExpenseRequest) (*response_models.TripExpenseResponse, error)
	RemoveExpense(ctx context.Context, userID, tripID, expenseID uuid.UUID) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (t *TripService) ListTrips(ctx context.Context, userID uuid.UUID, skip, limit int) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildTripResponses(trips), nil
}

func (t *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	status := request.Status
	if status == "" {
		status = db_models.TripStatusDraft
	}

	trip := &db_models.Trip{
		UserID:          userID,
		Name:            request.Name,
		Description:     request.Description,
		StartDate:       startDate,
		EndDate:         endDate,
		CoverImage:      request.CoverImage,
		Status:          status,
		IsPublic:        request.IsPublic,
		EstimatedBudget: request.EstimatedBudget,
	}

	if trip.IsPublic {
		token, err := utils.GenerateShareToken(16)
		if err != nil {
			return nil, err
		}
		trip.ShareToken = &token
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildTripResponse(trip), nil
}

func (t *TripService) GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID != userID && !trip.IsPublic {
		return nil, utils.ErrNotOwner
	}
	return response_models.BuildTripResponse(trip), nil
}

// UpdateTrip writes only the fields present in the request. Flipping a trip
// public for the first time also assigns its share token.
func (t *TripService) UpdateTrip(ctx context.Context, userID, tripID uuid.UUID, request request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := t.getOwnedMeta(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.StartDate != nil {
		startDate, err := utils.ParseDate(*request.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		fields["start_date"] = startDate
	}
	if request.EndDate != nil {
		endDate, err := utils.ParseDate(*request.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		fields["end_date"] = endDate
	}
	if request.CoverImage != nil {
		fields["cover_image"] = *request.CoverImage
	}
	if request.Status != nil {
		fields["status"] = *request.Status
	}
	if request.EstimatedBudget != nil {
		fields["estimated_budget"] = *request.EstimatedBudget
	}
	if request.IsPublic != nil {
		fields["is_public"] = *request.IsPublic
		if *request.IsPublic && trip.ShareToken == nil {
			token, err := utils.GenerateShareToken(16)
			if err != nil {
				return nil, err
			}
			fields["share_token"] = token
		}
	}

	if err := t.tripRepo.UpdateFields(ctx, tripID, fields); err != nil {
		return nil, utils.ErrDatabaseError
	}

	updated, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrTripNotFound
	}
	return response_models.BuildTripResponse(updated), nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) error {
	if _, err := t.getOwnedMeta(ctx, userID, tripID); err != nil {
		return err
	}
	if err := t.tripRepo.DeleteCascade(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) AddExpense(ctx context.Context, userID, tripID uuid.UUID, request request_models.CreateExpenseRequest) (*response_models.TripExpenseResponse, error) {
	if request.Amount < 0 {
		return nil, utils.ErrInvalidInput
	}
	if _, err := t.getOwnedMeta(ctx, userID, tripID); err != nil {
		return nil, err
	}

	expense := &db_models.TripExpense{
		TripID:   tripID,
		Category: request.Category,
		Amount:   request.Amount,
		Notes:    request.Notes,
	}
	if err := t.tripRepo.InsertExpense(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildTripExpenseResponse(expense), nil
}

func (t *TripService) RemoveExpense(ctx context.Context, userID, tripID, expenseID uuid.UUID) error {
	if _, err := t.getOwnedMeta(ctx, userID, tripID); err != nil {
		return err
	}

	expense, err := t.tripRepo.GetExpense(ctx, expenseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if expense == nil || expense.TripID != tripID {
		return utils.ErrExpenseNotFound
	}

	if err := t.tripRepo.DeleteExpense(ctx, expenseID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) getOwnedMeta(ctx context.Context, userID, tripID uuid.UUID) (*db_models.Trip, error) {
	trip, err := t.tripRepo.GetMeta(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID != userID {
		return nil, utils.ErrNotOwner
	}
	return trip, nil
}
