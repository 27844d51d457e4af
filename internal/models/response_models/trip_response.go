package response_models

import (
	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/pkg/utils"
)

type StopActivityResponse struct {
	ID            uuid.UUID         `json:"id"`
	StopID        uuid.UUID         `json:"stop_id"`
	ActivityID    uuid.UUID         `json:"activity_id"`
	ScheduledTime *string           `json:"scheduled_time,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Activity      *ActivityResponse `json:"activity,omitempty"`
}

type TripStopResponse struct {
	ID         uuid.UUID              `json:"id"`
	TripID     uuid.UUID              `json:"trip_id"`
	CityID     uuid.UUID              `json:"city_id"`
	OrderIndex int                    `json:"order_index"`
	StartDate  string                 `json:"start_date,omitempty"`
	EndDate    string                 `json:"end_date,omitempty"`
	City       *CityResponse          `json:"city,omitempty"`
	Activities []StopActivityResponse `json:"activities"`
}

type TripExpenseResponse struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Notes    string    `json:"notes,omitempty"`
}

type TripResponse struct {
	ID              uuid.UUID             `json:"id"`
	UserID          uuid.UUID             `json:"user_id"`
	Name            string                `json:"name"`
	Description     string                `json:"description,omitempty"`
	StartDate       string                `json:"start_date,omitempty"`
	EndDate         string                `json:"end_date,omitempty"`
	CoverImage      string                `json:"cover_image,omitempty"`
	Status          string                `json:"status"`
	IsPublic        bool                  `json:"is_public"`
	ShareToken      *string               `json:"share_token,omitempty"`
	EstimatedBudget float64               `json:"estimated_budget"`
	Stops           []TripStopResponse    `json:"stops"`
	Expenses        []TripExpenseResponse `json:"expenses"`
}

func BuildStopActivityResponse(sa *db_models.StopActivity) *StopActivityResponse {
	out := &StopActivityResponse{
		ID:            sa.ID,
		StopID:        sa.StopID,
		ActivityID:    sa.ActivityID,
		ScheduledTime: sa.ScheduledTime,
		Notes:         sa.Notes,
	}
	if sa.Activity != nil {
		out.Activity = BuildActivityResponse(sa.Activity)
	}
	return out
}

func BuildTripStopResponse(stop *db_models.TripStop) *TripStopResponse {
	out := &TripStopResponse{
		ID:         stop.ID,
		TripID:     stop.TripID,
		CityID:     stop.CityID,
		OrderIndex: stop.OrderIndex,
		StartDate:  utils.FormatDate(stop.StartDate),
		EndDate:    utils.FormatDate(stop.EndDate),
		Activities: make([]StopActivityResponse, 0, len(stop.Activities)),
	}
	if stop.City != nil {
		out.City = BuildCityResponse(stop.City)
	}
	for i := range stop.Activities {
		out.Activities = append(out.Activities, *BuildStopActivityResponse(&stop.Activities[i]))
	}
	return out
}

func BuildTripExpenseResponse(e *db_models.TripExpense) *TripExpenseResponse {
	return &TripExpenseResponse{
		ID:       e.ID,
		TripID:   e.TripID,
		Category: e.Category,
		Amount:   e.Amount,
		Notes:    e.Notes,
	}
}

func BuildTripResponse(trip *db_models.Trip) *TripResponse {
	out := &TripResponse{
		ID:              trip.ID,
		UserID:          trip.UserID,
		Name:            trip.Name,
		Description:     trip.Description,
		StartDate:       utils.FormatDate(trip.StartDate),
		EndDate:         utils.FormatDate(trip.EndDate),
		CoverImage:      trip.CoverImage,
		Status:          trip.Status,
		IsPublic:        trip.IsPublic,
		ShareToken:      trip.ShareToken,
		EstimatedBudget: trip.EstimatedBudget,
		Stops:           make([]TripStopResponse, 0, len(trip.Stops)),
		Expenses:        make([]TripExpenseResponse, 0, len(trip.Expenses)),
	}
	for i := range trip.Stops {
		out.Stops = append(out.Stops, *BuildTripStopResponse(&trip.Stops[i]))
	}
	for i := range trip.Expenses {
		out.Expenses = append(out.Expenses, *BuildTripExpenseResponse(&trip.Expenses[i]))
	}
	return out
}

func BuildTripResponses(trips []db_models.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *BuildTripResponse(&trips[i]))
	}
	return out
}
