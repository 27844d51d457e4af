package request_models

type CreateTripRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	StartDate       string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	CoverImage      string  `json:"cover_image"`
	Status          string  `json:"status" binding:"omitempty,oneof=draft upcoming ongoing completed"`
	IsPublic        bool    `json:"is_public"`
	EstimatedBudget float64 `json:"estimated_budget" binding:"omitempty,gte=0"`
}

// UpdateTripRequest uses pointer fields so that absent fields are left
// untouched: only non-nil fields are written.
type UpdateTripRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	StartDate       *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	CoverImage      *string  `json:"cover_image"`
	Status          *string  `json:"status" binding:"omitempty,oneof=draft upcoming ongoing completed"`
	IsPublic        *bool    `json:"is_public"`
	EstimatedBudget *float64 `json:"estimated_budget" binding:"omitempty,gte=0"`
}

type CreateExpenseRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Notes    string  `json:"notes"`
}
