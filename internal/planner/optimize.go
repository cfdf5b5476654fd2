package planner

import (
	"wayfare/pkg/utils"
)

// TravelEstimator yields an estimated transfer time in minutes between two
// coordinate pairs.
type TravelEstimator interface {
	TravelMinutes(lat1, lng1, lat2, lng2 float64) int
}

// OptimizeDay walks one day's activities, already sorted by start time, and
// pushes each start forward until it clears the previous activity's end plus
// the estimated travel time between the two. Adjustments compound: a pushed
// start feeds the next activity's required start. Starts only ever move
// later, so the entry order is preserved and never re-sorted. Reports
// whether anything moved.
func OptimizeDay(day []Activity, est TravelEstimator) bool {
	changed := false
	for i := 1; i < len(day); i++ {
		prev := day[i-1]
		prevStart, err := utils.TimeToMinutes(prev.Slot.Start)
		if err != nil {
			continue
		}
		curStart, err := utils.TimeToMinutes(day[i].Slot.Start)
		if err != nil {
			continue
		}
		travel := est.TravelMinutes(prev.Latitude, prev.Longitude, day[i].Latitude, day[i].Longitude)
		required := prevStart + prev.DurationMin + travel
		if curStart < required {
			day[i].Slot.Start = utils.MinutesToTime(required)
			changed = true
		}
	}
	return changed
}
