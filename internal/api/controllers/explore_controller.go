package controllers

import (
	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ExploreController struct {
	exploreService services.ExploreServiceInterface
}

func NewExploreController(exploreService services.ExploreServiceInterface) *ExploreController {
	return &ExploreController{exploreService: exploreService}
}

func (e *ExploreController) SearchCities(c *gin.Context) {
	skip, limit, ok := pagination(c, services.DefaultSearchLimit)
	if !ok {
		return
	}

	cities, err := e.exploreService.SearchCities(
		c.Request.Context(),
		c.Query("q"),
		c.Query("region"),
		skip, limit,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

func (e *ExploreController) SearchActivities(c *gin.Context) {
	skip, limit, ok := pagination(c, services.DefaultSearchLimit)
	if !ok {
		return
	}

	activities, err := e.exploreService.SearchActivities(
		c.Request.Context(),
		c.Query("q"),
		c.Query("city_id"),
		c.Query("category"),
		skip, limit,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}
