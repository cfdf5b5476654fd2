// Package planner holds the in-memory scheduling engine behind the activity
// planner view: day bucketing, overlap detection, travel-time aware start
// adjustment, and the session store that ties them together.
package planner

const (
	// DefaultDurationMinutes applies when a draft omits its length.
	DefaultDurationMinutes = 120

	// DefaultStart is the clock time offered when an activity re-enters the
	// schedule from the buffer without an explicit time.
	DefaultStart = "09:00"
)

// Slot is the scheduling state of an activity. A zero Slot means the
// activity sits in the buffer; a Scheduled slot carries the concrete day and
// start time. There is no third state.
type Slot struct {
	Scheduled bool
	Date      string // "YYYY-MM-DD", set only when Scheduled
	Start     string // "HH:MM", set only when Scheduled
}

// Activity is the planner's view of one plotted event.
type Activity struct {
	ID          int64
	ItineraryID int64
	Name        string
	Location    string
	Slot        Slot
	DurationMin int
	Cost        float64
	Latitude    float64
	Longitude   float64
	Notes       string
	Tags        []string
}

// Dedup collapses records sharing an id into one authoritative record,
// preserving first-seen order. When a scheduled and a buffered variant of
// the same id meet, the scheduled one wins.
func Dedup(records []Activity) []Activity {
	seen := make(map[int64]int, len(records))
	out := make([]Activity, 0, len(records))
	for _, rec := range records {
		idx, ok := seen[rec.ID]
		if !ok {
			seen[rec.ID] = len(out)
			out = append(out, rec)
			continue
		}
		if rec.Slot.Scheduled && !out[idx].Slot.Scheduled {
			out[idx] = rec
		}
	}
	return out
}
