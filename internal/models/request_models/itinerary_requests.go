package request_models

type CreateItineraryRequest struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateItineraryRequest struct {
	Name      *string `json:"name"`
	Location  *string `json:"location"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Notes     *string `json:"notes"`
}
