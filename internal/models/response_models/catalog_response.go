package response_models

import (
	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
)

type CityResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	Region      string    `json:"region,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CostIndex   string    `json:"cost_index,omitempty"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description,omitempty"`
}

type ActivityResponse struct {
	ID              uuid.UUID `json:"id"`
	CityID          uuid.UUID `json:"city_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Cost            float64   `json:"cost"`
	Category        string    `json:"category,omitempty"`
}

func BuildCityResponse(c *db_models.City) *CityResponse {
	return &CityResponse{
		ID:          c.ID,
		Name:        c.Name,
		Country:     c.Country,
		Region:      c.Region,
		ImageURL:    c.ImageURL,
		CostIndex:   c.CostIndex,
		Rating:      c.Rating,
		Description: c.Description,
	}
}

func BuildCityResponses(cities []db_models.City) []CityResponse {
	out := make([]CityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, *BuildCityResponse(&cities[i]))
	}
	return out
}

func BuildActivityResponse(a *db_models.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:              a.ID,
		CityID:          a.CityID,
		Name:            a.Name,
		Description:     a.Description,
		ImageURL:        a.ImageURL,
		DurationMinutes: a.DurationMinutes,
		Cost:            a.Cost,
		Category:        a.Category,
	}
}

func BuildActivityResponses(activities []db_models.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, *BuildActivityResponse(&activities[i]))
	}
	return out
}
