package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wayfare/internal/planner"
	"wayfare/pkg/utils"
)

// TestGenerateDays_inclusiveRange verifies both endpoints are enumerated and
// indices count from zero.
func TestGenerateDays_inclusiveRange(t *testing.T) {
	days, err := planner.GenerateDays("2024-06-01", "2024-06-05")

	require.NoError(t, err)
	require.Len(t, days, 5)
	require.Equal(t, 0, days[0].Index)
	require.Equal(t, "2024-06-01", days[0].Date)
	require.Equal(t, "Sat, Jun 1", days[0].Label)
	require.Equal(t, 4, days[4].Index)
	require.Equal(t, "2024-06-05", days[4].Date)
}

// TestGenerateDays_singleDay verifies a trip starting and ending the same
// day yields exactly one bucket.
func TestGenerateDays_singleDay(t *testing.T) {
	days, err := planner.GenerateDays("2024-06-01", "2024-06-01")

	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Equal(t, "2024-06-01", days[0].Date)
}

// TestGenerateDays_monthBoundary verifies enumeration carries across a month
// boundary without skipping.
func TestGenerateDays_monthBoundary(t *testing.T) {
	days, err := planner.GenerateDays("2024-06-29", "2024-07-02")

	require.NoError(t, err)
	require.Len(t, days, 4)
	require.Equal(t, "2024-06-30", days[1].Date)
	require.Equal(t, "2024-07-01", days[2].Date)
}

// TestGenerateDays_endBeforeStart verifies an inverted range is rejected.
func TestGenerateDays_endBeforeStart(t *testing.T) {
	_, err := planner.GenerateDays("2024-06-05", "2024-06-01")
	require.ErrorIs(t, err, utils.ErrDayRange)

	_, err = planner.GenerateDays("not-a-date", "2024-06-01")
	require.ErrorIs(t, err, utils.ErrBadDay)
}

// TestDateForIndex verifies offset arithmetic from the trip start.
func TestDateForIndex(t *testing.T) {
	date, err := planner.DateForIndex("2024-06-01", 0)
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", date)

	date, err = planner.DateForIndex("2024-06-01", 3)
	require.NoError(t, err)
	require.Equal(t, "2024-06-04", date)
}

// TestActivitiesForDay_sortsByStart verifies filtering to the indexed date
// and ordering by start time, with unparseable starts sinking to the end.
func TestActivitiesForDay_sortsByStart(t *testing.T) {
	activities := []planner.Activity{
		scheduledAt(1, "Dinner", "2024-06-02", "19:00", 90),
		scheduledAt(2, "Museum", "2024-06-02", "09:30", 120),
		scheduledAt(3, "Elsewhere", "2024-06-03", "09:00", 60),
		scheduledAt(4, "Mystery", "2024-06-02", "??", 60),
	}

	day, err := planner.ActivitiesForDay(activities, "2024-06-01", 1)

	require.NoError(t, err)
	require.Len(t, day, 3)
	require.Equal(t, []int64{2, 1, 4}, []int64{day[0].ID, day[1].ID, day[2].ID})
}

// TestTotalCost_scheduledOnly verifies buffered activities never count
// toward the trip total, while day totals sum whatever they are given.
func TestTotalCost_scheduledOnly(t *testing.T) {
	activities := []planner.Activity{
		scheduledAt(1, "Museum", "2024-06-01", "09:00", 120),
		{ID: 2, Name: "Maybe later", Cost: 50},
	}
	activities[0].Cost = 25

	require.Equal(t, 25.0, planner.TotalCost(activities))
	require.Equal(t, 75.0, planner.DayTotalCost(activities))
}
