package request_models

type CreateActivityRequest struct {
	ItineraryID int64    `json:"itinerary_id" binding:"required"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`       // "YYYY-MM-DD", empty for buffered
	StartTime   string   `json:"start_time"` // "HH:MM"
	DurationMin int      `json:"duration_min"`
	Cost        float64  `json:"cost"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Notes       string   `json:"notes"`
	Tags        []string `json:"tags"`
}

type UpdateActivityRequest struct {
	Name        *string  `json:"name"`
	Location    *string  `json:"location"`
	Date        *string  `json:"date"`
	StartTime   *string  `json:"start_time"`
	DurationMin *int     `json:"duration_min"`
	Cost        *float64 `json:"cost"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Notes       *string  `json:"notes"`
	Tags        []string `json:"tags"`
}
