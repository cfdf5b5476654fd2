package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wayfare/pkg/utils"
)

// TestTimeToMinutes_valid verifies plain 24-hour clock strings parse to
// minutes since midnight.
func TestTimeToMinutes_valid(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:00": 540,
		"09:30": 570,
		"23:59": 1439,
	}
	for clock, want := range cases {
		got, err := utils.TimeToMinutes(clock)
		require.NoError(t, err, clock)
		require.Equal(t, want, got, clock)
	}
}

// TestTimeToMinutes_invalid verifies malformed or out-of-range clocks are
// rejected with ErrBadClock.
func TestTimeToMinutes_invalid(t *testing.T) {
	for _, clock := range []string{"", "9", "24:00", "12:60", "ab:cd", "09:00:00", "-1:30"} {
		_, err := utils.TimeToMinutes(clock)
		require.ErrorIs(t, err, utils.ErrBadClock, clock)
	}
}

// TestMinutesToTime_wraps verifies values past midnight wrap modulo one day
// and negatives wrap backwards.
func TestMinutesToTime_wraps(t *testing.T) {
	require.Equal(t, "09:05", utils.MinutesToTime(545))
	require.Equal(t, "00:00", utils.MinutesToTime(1440))
	require.Equal(t, "01:30", utils.MinutesToTime(1530))
	require.Equal(t, "23:30", utils.MinutesToTime(-30))
}

// TestTimeToMinutes_roundTrip verifies every valid minute value survives the
// render-then-parse cycle unchanged.
func TestTimeToMinutes_roundTrip(t *testing.T) {
	for m := 0; m < 24*60; m++ {
		got, err := utils.TimeToMinutes(utils.MinutesToTime(m))
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

// TestEndTime verifies durations extend the start clock, wrapping past
// midnight.
func TestEndTime(t *testing.T) {
	end, err := utils.EndTime("09:00", 120)
	require.NoError(t, err)
	require.Equal(t, "11:00", end)

	end, err = utils.EndTime("23:30", 60)
	require.NoError(t, err)
	require.Equal(t, "00:30", end)

	_, err = utils.EndTime("25:00", 30)
	require.ErrorIs(t, err, utils.ErrBadClock)
}

// TestParseDay_noonAnchor verifies dates parse to 12:00 UTC so day
// arithmetic never straddles a DST boundary.
func TestParseDay_noonAnchor(t *testing.T) {
	got, err := utils.ParseDay("2024-06-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), got)

	_, err = utils.ParseDay("06/01/2024")
	require.ErrorIs(t, err, utils.ErrBadDay)
	_, err = utils.ParseDay("")
	require.ErrorIs(t, err, utils.ErrBadDay)
}

// TestFormatDay verifies the canonical form and the zero-time sentinel.
func TestFormatDay(t *testing.T) {
	day, err := utils.ParseDay("2024-06-03")
	require.NoError(t, err)
	require.Equal(t, "2024-06-03", utils.FormatDay(day))
	require.Equal(t, "", utils.FormatDay(time.Time{}))
	require.Equal(t, "Mon, Jun 3", utils.DayLabel(day))
}
