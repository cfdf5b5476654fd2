package planner

import (
	"wayfare/pkg/utils"
)

// FindConflict scans scheduled, in input order, for the first activity on
// date whose occupied interval overlaps the candidate [start, start+duration).
// Intervals are half-open: an activity ending exactly when the candidate
// begins does not conflict. excludeID lets a rescheduled activity skip the
// comparison against its own prior placement; pass 0 to compare against all.
//
// Returns nil when the candidate fits. The candidate's own start must parse;
// existing entries with unparseable times are skipped rather than treated as
// blocking.
func FindConflict(excludeID int64, date, start string, durationMin int, scheduled []Activity) (*Activity, error) {
	candidateStart, err := utils.TimeToMinutes(start)
	if err != nil {
		return nil, err
	}
	candidateEnd := candidateStart + durationMin

	for i := range scheduled {
		existing := &scheduled[i]
		if existing.ID == excludeID || !existing.Slot.Scheduled || existing.Slot.Date != date {
			continue
		}
		existingStart, err := utils.TimeToMinutes(existing.Slot.Start)
		if err != nil {
			continue
		}
		existingEnd := existingStart + existing.DurationMin
		if candidateStart < existingEnd && candidateEnd > existingStart {
			return existing, nil
		}
	}
	return nil, nil
}

// HasConflict is FindConflict reduced to a yes/no answer.
func HasConflict(excludeID int64, date, start string, durationMin int, scheduled []Activity) (bool, error) {
	conflict, err := FindConflict(excludeID, date, start, durationMin, scheduled)
	if err != nil {
		return false, err
	}
	return conflict != nil, nil
}
