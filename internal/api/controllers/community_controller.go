package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type CommunityController struct {
	communityService services.CommunityServiceInterface
}

func NewCommunityController(communityService services.CommunityServiceInterface) *CommunityController {
	return &CommunityController{communityService: communityService}
}

func (cc *CommunityController) GetSharedTrip(c *gin.Context) {
	shareToken := c.Param("shareToken")
	if shareToken == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share token is required")
		return
	}

	trip, err := cc.communityService.GetSharedTrip(c.Request.Context(), shareToken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Shared trip fetched successfully")
}

func (cc *CommunityController) CopyTrip(c *gin.Context) {
	user, tripID, ok := currentUserAndID(c, "tripId")
	if !ok {
		return
	}

	trip, err := cc.communityService.CopyTrip(c.Request.Context(), user.ID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip copied successfully")
}
