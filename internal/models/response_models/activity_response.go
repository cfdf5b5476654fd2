package response_models

type ActivityResponse struct {
	ID          int64    `json:"id"`
	ItineraryID int64    `json:"itinerary_id"`
	Name        string   `json:"name"`
	Location    string   `json:"location,omitempty"`
	Date        string   `json:"date,omitempty"` // absent for buffered activities
	StartTime   string   `json:"start_time,omitempty"`
	EndTime     string   `json:"end_time,omitempty"`
	DurationMin int      `json:"duration_min"`
	Cost        float64  `json:"cost"`
	Latitude    float64  `json:"latitude,omitempty"`
	Longitude   float64  `json:"longitude,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type TravelTimeResponse struct {
	Duration string `json:"duration"` // e.g. "25 min"
	Distance string `json:"distance"` // e.g. "3.2 km"
}

type DailyCostsResponse struct {
	Costs map[string]float64 `json:"costs"` // canonical date -> summed cost
	Total float64            `json:"total"`
}
