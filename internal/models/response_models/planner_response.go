package response_models

import "wayfare/internal/planner"

type PlannerStateResponse struct {
	ItineraryID int64              `json:"itinerary_id"`
	Days        []planner.Day      `json:"days"`
	Scheduled   []ActivityResponse `json:"scheduled"`
	Buffered    []ActivityResponse `json:"buffered"`
	PlacedIDs   []int64            `json:"placed_ids"`
	TotalCost   float64            `json:"total_cost"`
	Dirty       bool               `json:"dirty"`
	FromCache   bool               `json:"from_cache,omitempty"`
}

type DayViewResponse struct {
	Day        planner.Day        `json:"day"`
	Activities []ActivityResponse `json:"activities"`
	DayCost    float64            `json:"day_cost"`
	Adjusted   bool               `json:"adjusted"` // true when the optimizer moved a start
}

type SuggestedActivity struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Cost        float64 `json:"cost"`
}
