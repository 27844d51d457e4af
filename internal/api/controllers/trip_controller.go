package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/middleware"
	"globetrotter/pkg/utils"
)

const defaultTripListLimit = 100

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

func (t *TripController) ListTrips(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	skip, limit, ok := pagination(c, defaultTripListLimit)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), user.ID, skip, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (t *TripController) CreateTrip(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), user.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

func (t *TripController) GetTrip(c *gin.Context) {
	user, tripID, ok := currentUserAndID(c, "id")
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), user.ID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func (t *TripController) UpdateTrip(c *gin.Context) {
	user, tripID, ok := currentUserAndID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), user.ID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

func (t *TripController) DeleteTrip(c *gin.Context) {
	user, tripID, ok := currentUserAndID(c, "id")
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), user.ID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Trip deleted successfully")
}

func (t *TripController) AddExpense(c *gin.Context) {
	user, tripID, ok := currentUserAndID(c, "id")
	if !ok {
		return
	}

	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := t.tripService.AddExpense(c.Request.Context(), user.ID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expense, "Expense added successfully")
}

func (t *TripController) RemoveExpense(c *gin.Context) {
	user, tripID, ok := currentUserAndID(c, "id")
	if !ok {
		return
	}

	expenseID, err := uuid.Parse(c.Param("expenseId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	if err := t.tripService.RemoveExpense(c.Request.Context(), user.ID, tripID, expenseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Expense removed successfully")
}

// currentUserAndID resolves the authenticated user plus a uuid path param,
// writing the error response itself when either is missing.
func currentUserAndID(c *gin.Context, param string) (*db_models.User, uuid.UUID, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ID")
		return nil, uuid.Nil, false
	}

	return user, id, true
}

func pagination(c *gin.Context, defaultLimit int) (skip int, limit int, ok bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid skip parameter")
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit parameter")
		return 0, 0, false
	}

	return skip, limit, true
}
