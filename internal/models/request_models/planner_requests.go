package request_models

type PlannerAddRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`       // empty keeps the draft in the buffer
	StartTime   string   `json:"start_time"` // empty keeps the draft in the buffer
	DurationMin int      `json:"duration_min"`
	Cost        float64  `json:"cost"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Notes       string   `json:"notes"`
	Tags        []string `json:"tags"`
}

type PlannerScheduleRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
}

type PlannerEditRequest struct {
	Name      *string  `json:"name"`
	Cost      *float64 `json:"cost"`
	Notes     *string  `json:"notes"`
	Location  *string  `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Tags      []string `json:"tags"`
}

type SuggestionRequest struct {
	Location string `json:"location" binding:"required"`
	Days     int    `json:"days"`
}
