package request_models

type AddStopRequest struct {
	CityID     string `json:"city_id" binding:"required,uuid"`
	OrderIndex int    `json:"order_index" binding:"gte=0"`
	StartDate  string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type AddStopActivityRequest struct {
	ActivityID    string  `json:"activity_id" binding:"required,uuid"`
	ScheduledTime *string `json:"scheduled_time" binding:"omitempty,datetime=15:04"`
	Notes         string  `json:"notes"`
}
