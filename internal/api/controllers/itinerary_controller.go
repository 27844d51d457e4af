package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (i *ItineraryController) AddStop(c *gin.Context) {
	user, tripID, ok := currentUserAndID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.AddStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stop, err := i.itineraryService.AddStop(c.Request.Context(), user.ID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop added successfully")
}

func (i *ItineraryController) RemoveStop(c *gin.Context) {
	user, stopID, ok := currentUserAndID(c, "stopId")
	if !ok {
		return
	}

	if err := i.itineraryService.RemoveStop(c.Request.Context(), user.ID, stopID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Stop removed successfully")
}

func (i *ItineraryController) AddActivity(c *gin.Context) {
	user, stopID, ok := currentUserAndID(c, "stopId")
	if !ok {
		return
	}

	var req request_models.AddStopActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := i.itineraryService.AddActivity(c.Request.Context(), user.ID, stopID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity added successfully")
}

func (i *ItineraryController) RemoveActivity(c *gin.Context) {
	user, activityID, ok := currentUserAndID(c, "activityId")
	if !ok {
		return
	}

	if err := i.itineraryService.RemoveActivity(c.Request.Context(), user.ID, activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Activity removed successfully")
}
