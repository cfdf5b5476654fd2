package planner

import (
	"fmt"

	"wayfare/pkg/utils"
)

// ConflictError reports a rejected placement and carries the activity it
// would have overlapped, for user-facing messaging. It unwraps to
// utils.ErrScheduleConflict so the HTTP layer can map it like any sentinel.
type ConflictError struct {
	With Activity
}

func (e *ConflictError) Error() string {
	end, err := utils.EndTime(e.With.Slot.Start, e.With.DurationMin)
	if err != nil {
		return fmt.Sprintf("overlaps %q", e.With.Name)
	}
	return fmt.Sprintf("overlaps %q (%s-%s)", e.With.Name, e.With.Slot.Start, end)
}

func (e *ConflictError) Unwrap() error {
	return utils.ErrScheduleConflict
}
