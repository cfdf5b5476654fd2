package planner

import (
	"sort"

	"wayfare/pkg/utils"
)

// Day is one calendar date within an itinerary's inclusive range.
type Day struct {
	Index int    `json:"index"`
	Date  string `json:"date"`  // canonical "YYYY-MM-DD", used for matching
	Label string `json:"label"` // display form
}

// GenerateDays enumerates every calendar day from startDate to endDate,
// inclusive of both endpoints. Dates are noon-anchored before differencing
// so a DST shift cannot drop a bucket; the end date is appended explicitly
// if the increment loop ever lands past it.
func GenerateDays(startDate, endDate string) ([]Day, error) {
	start, err := utils.ParseDay(startDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDay(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, utils.ErrDayRange
	}

	var days []Day
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		days = append(days, Day{Index: len(days), Date: utils.FormatDay(cur), Label: utils.DayLabel(cur)})
	}
	if last := utils.FormatDay(end); len(days) == 0 || days[len(days)-1].Date != last {
		days = append(days, Day{Index: len(days), Date: last, Label: utils.DayLabel(end)})
	}
	return days, nil
}

// DateForIndex returns the canonical date dayIndex days after startDate.
func DateForIndex(startDate string, dayIndex int) (string, error) {
	start, err := utils.ParseDay(startDate)
	if err != nil {
		return "", err
	}
	return utils.FormatDay(start.AddDate(0, 0, dayIndex)), nil
}

// ActivitiesForDay filters activities scheduled on the dayIndex-th day of
// the itinerary and orders them by start time. Ties keep input order;
// entries whose start time fails to parse sort to the end rather than
// dropping out of the view.
func ActivitiesForDay(activities []Activity, startDate string, dayIndex int) ([]Activity, error) {
	date, err := DateForIndex(startDate, dayIndex)
	if err != nil {
		return nil, err
	}

	var day []Activity
	for _, act := range activities {
		if act.Slot.Scheduled && act.Slot.Date == date {
			day = append(day, act)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return startMinutes(day[i]) < startMinutes(day[j])
	})
	return day, nil
}

func startMinutes(act Activity) int {
	minutes, err := utils.TimeToMinutes(act.Slot.Start)
	if err != nil {
		return 24 * 60
	}
	return minutes
}

// DayTotalCost sums the cost of one day's activities.
func DayTotalCost(day []Activity) float64 {
	total := 0.0
	for _, act := range day {
		total += act.Cost
	}
	return total
}

// TotalCost sums the cost of every scheduled activity regardless of day.
func TotalCost(activities []Activity) float64 {
	total := 0.0
	for _, act := range activities {
		if act.Slot.Scheduled {
			total += act.Cost
		}
	}
	return total
}
