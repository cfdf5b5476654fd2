package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wayfare/internal/planner"
	"wayfare/pkg/utils"
)

func scheduledAt(id int64, name, date, start string, durationMin int) planner.Activity {
	return planner.Activity{
		ID:          id,
		Name:        name,
		Slot:        planner.Slot{Scheduled: true, Date: date, Start: start},
		DurationMin: durationMin,
	}
}

// TestFindConflict_overlap verifies a candidate starting inside an existing
// activity's interval is reported against that activity.
func TestFindConflict_overlap(t *testing.T) {
	scheduled := []planner.Activity{
		scheduledAt(1, "Louvre", "2024-06-01", "09:00", 120),
	}

	got, err := planner.FindConflict(0, "2024-06-01", "10:00", 60, scheduled)

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, int64(1), got.ID)
}

// TestFindConflict_touchingEndpoints verifies half-open semantics: an
// activity ending exactly when the next begins does not conflict, in either
// direction.
func TestFindConflict_touchingEndpoints(t *testing.T) {
	scheduled := []planner.Activity{
		scheduledAt(1, "Louvre", "2024-06-01", "09:00", 120),
	}

	got, err := planner.FindConflict(0, "2024-06-01", "11:00", 60, scheduled)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = planner.FindConflict(0, "2024-06-01", "08:00", 60, scheduled)
	require.NoError(t, err)
	require.Nil(t, got)
}

// TestFindConflict_otherDay verifies the same clock interval on a different
// date never conflicts.
func TestFindConflict_otherDay(t *testing.T) {
	scheduled := []planner.Activity{
		scheduledAt(1, "Louvre", "2024-06-01", "09:00", 120),
	}

	got, err := planner.FindConflict(0, "2024-06-02", "09:00", 120, scheduled)

	require.NoError(t, err)
	require.Nil(t, got)
}

// TestFindConflict_excludesSelf verifies a rescheduled activity is not
// compared against its own prior placement.
func TestFindConflict_excludesSelf(t *testing.T) {
	scheduled := []planner.Activity{
		scheduledAt(1, "Louvre", "2024-06-01", "09:00", 120),
	}

	got, err := planner.FindConflict(1, "2024-06-01", "09:30", 60, scheduled)

	require.NoError(t, err)
	require.Nil(t, got)
}

// TestFindConflict_badCandidateClock verifies an unparseable candidate start
// is an error, while an unparseable existing entry is skipped silently.
func TestFindConflict_badCandidateClock(t *testing.T) {
	scheduled := []planner.Activity{
		scheduledAt(1, "Louvre", "2024-06-01", "bogus", 120),
	}

	_, err := planner.FindConflict(0, "2024-06-01", "25:00", 60, scheduled)
	require.ErrorIs(t, err, utils.ErrBadClock)

	got, err := planner.FindConflict(0, "2024-06-01", "09:00", 60, scheduled)
	require.NoError(t, err)
	require.Nil(t, got)
}

// TestHasConflict verifies the boolean reduction tracks FindConflict.
func TestHasConflict(t *testing.T) {
	scheduled := []planner.Activity{
		scheduledAt(1, "Louvre", "2024-06-01", "09:00", 120),
	}

	ok, err := planner.HasConflict(0, "2024-06-01", "10:00", 60, scheduled)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = planner.HasConflict(0, "2024-06-01", "11:00", 60, scheduled)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestConflictError verifies the message names the blocking activity and its
// occupied window, and that the error unwraps to the conflict sentinel.
func TestConflictError(t *testing.T) {
	err := &planner.ConflictError{With: scheduledAt(1, "Louvre", "2024-06-01", "09:00", 120)}

	require.EqualError(t, err, `overlaps "Louvre" (09:00-11:00)`)
	require.ErrorIs(t, err, utils.ErrScheduleConflict)
}
