package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"wayfare/pkg/utils"
)

// Loader fetches the authoritative records for a session. ListRemote is the
// primary source; ListCached is the per-user mirror consulted only when the
// remote store is unreachable.
type Loader interface {
	ListRemote(ctx context.Context, itineraryID int64) ([]Activity, error)
	ListCached(ctx context.Context, userID string, itineraryID int64) ([]Activity, error)
}

// Patch carries the mutable detail fields for EditDetails. Nil pointers
// leave the corresponding field untouched. Scheduling state is never part
// of a patch.
type Patch struct {
	Name      *string
	Cost      *float64
	Notes     *string
	Location  *string
	Latitude  *float64
	Longitude *float64
	Tags      []string
}

// Store owns one planning session's state: the scheduled and buffered
// collections, the ever-placed id set, and a dirty flag the session layer
// watches to know when to persist. The store never persists itself.
//
// All operations reject invalid input before touching state, so a failed
// call always leaves the prior state intact.
type Store struct {
	userID      string
	itineraryID int64
	loader      Loader

	requested uint64 // newest load generation handed out (atomic)

	mu        sync.Mutex
	applied   uint64 // generation of the load currently reflected in state
	scheduled []Activity
	buffered  []Activity
	placed    map[int64]struct{}
	dirty     bool
}

func NewStore(userID string, itineraryID int64, loader Loader) *Store {
	return &Store{
		userID:      userID,
		itineraryID: itineraryID,
		loader:      loader,
		placed:      make(map[int64]struct{}),
	}
}

// Load fetches the record set and fully replaces the in-memory collections;
// there is no merge with local edits. Concurrent loads race by generation:
// a completion older than the one already applied is discarded, so the most
// recently applied load stays authoritative. Reports whether the records
// came from the fallback mirror instead of the remote store.
func (s *Store) Load(ctx context.Context) (bool, error) {
	gen := atomic.AddUint64(&s.requested, 1)

	fromCache := false
	records, err := s.loader.ListRemote(ctx, s.itineraryID)
	if err != nil {
		cached, cacheErr := s.loader.ListCached(ctx, s.userID, s.itineraryID)
		if cacheErr != nil {
			return false, fmt.Errorf("%w: %v", utils.ErrRemoteUnavailable, err)
		}
		records = cached
		fromCache = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.applied {
		return fromCache, nil // superseded by a newer load
	}
	s.applied = gen

	scheduled := make([]Activity, 0, len(records))
	buffered := make([]Activity, 0)
	for _, rec := range Dedup(records) {
		if rec.Slot.Scheduled {
			scheduled = append(scheduled, rec)
			s.placed[rec.ID] = struct{}{}
		} else {
			buffered = append(buffered, rec)
		}
	}
	s.scheduled, s.buffered = scheduled, buffered
	s.dirty = false
	return fromCache, nil
}

// Add validates a draft and inserts it into the schedule or the buffer. A
// draft carrying a concrete date and start is checked for conflicts first;
// on overlap the store is left untouched and the returned error names the
// conflicting activity.
func (s *Store) Add(draft Activity) (Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(draft.Name) == "" {
		return Activity{}, utils.ErrNameRequired
	}
	if draft.Cost < 0 {
		return Activity{}, utils.ErrInvalidInput
	}
	if draft.DurationMin <= 0 {
		draft.DurationMin = DefaultDurationMinutes
	}
	if draft.ID == 0 {
		draft.ID = s.nextLocalIDLocked()
	} else if s.findLocked(draft.ID) != nil {
		return Activity{}, utils.ErrInvalidInput
	}

	if draft.Slot.Scheduled && draft.Slot.Date != "" && draft.Slot.Start != "" {
		if _, err := utils.ParseDay(draft.Slot.Date); err != nil {
			return Activity{}, err
		}
		conflict, err := FindConflict(0, draft.Slot.Date, draft.Slot.Start, draft.DurationMin, s.scheduled)
		if err != nil {
			return Activity{}, err
		}
		if conflict != nil {
			return Activity{}, &ConflictError{With: *conflict}
		}
		s.scheduled = append(s.scheduled, draft)
		s.placed[draft.ID] = struct{}{}
	} else {
		draft.Slot = Slot{}
		s.buffered = append(s.buffered, draft)
	}
	s.dirty = true
	return draft, nil
}

// Schedule places an activity on a concrete day and start time, moving it
// out of the buffer if that is where it lives. The conflict scan excludes
// the activity's own prior placement. On conflict nothing moves.
func (s *Store) Schedule(id int64, date, start string) (Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if start == "" {
		start = DefaultStart
	}
	if _, err := utils.ParseDay(date); err != nil {
		return Activity{}, err
	}

	act := s.findLocked(id)
	if act == nil {
		return Activity{}, utils.ErrActivityNotFound
	}

	conflict, err := FindConflict(id, date, start, act.DurationMin, s.scheduled)
	if err != nil {
		return Activity{}, err
	}
	if conflict != nil {
		return Activity{}, &ConflictError{With: *conflict}
	}

	updated := *act
	updated.Slot = Slot{Scheduled: true, Date: date, Start: start}

	s.buffered = removeByID(s.buffered, id)
	if idx := indexOf(s.scheduled, id); idx >= 0 {
		s.scheduled[idx] = updated
	} else {
		s.scheduled = append(s.scheduled, updated)
	}
	s.placed[id] = struct{}{}
	s.dirty = true
	return updated, nil
}

// Unschedule moves a scheduled activity back to the buffer, clearing its
// slot and forgetting its placed-id mark.
func (s *Store) Unschedule(id int64) (Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.scheduled, id)
	if idx < 0 {
		return Activity{}, utils.ErrActivityNotFound
	}

	updated := s.scheduled[idx]
	updated.Slot = Slot{}

	s.scheduled = append(s.scheduled[:idx], s.scheduled[idx+1:]...)
	if bufIdx := indexOf(s.buffered, id); bufIdx >= 0 {
		s.buffered[bufIdx] = updated
	} else {
		s.buffered = append(s.buffered, updated)
	}
	delete(s.placed, id)
	s.dirty = true
	return updated, nil
}

// Delete permanently removes a buffered activity. A currently scheduled
// activity must be unscheduled first.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.scheduled, id) >= 0 {
		return utils.ErrStillScheduled
	}
	idx := indexOf(s.buffered, id)
	if idx < 0 {
		return utils.ErrActivityNotFound
	}
	s.buffered = append(s.buffered[:idx], s.buffered[idx+1:]...)
	s.dirty = true
	return nil
}

// EditDetails updates the mutable detail fields wherever the activity
// currently resides. Scheduling state is untouched.
func (s *Store) EditDetails(id int64, patch Patch) (Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act := s.findLocked(id)
	if act == nil {
		return Activity{}, utils.ErrActivityNotFound
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return Activity{}, utils.ErrNameRequired
	}
	if patch.Cost != nil && *patch.Cost < 0 {
		return Activity{}, utils.ErrInvalidInput
	}

	if patch.Name != nil {
		act.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Cost != nil {
		act.Cost = *patch.Cost
	}
	if patch.Notes != nil {
		act.Notes = *patch.Notes
	}
	if patch.Location != nil {
		act.Location = *patch.Location
	}
	if patch.Latitude != nil {
		act.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		act.Longitude = *patch.Longitude
	}
	if patch.Tags != nil {
		act.Tags = patch.Tags
	}
	s.dirty = true
	return *act, nil
}

// OptimizeDay runs the travel-time pass over one day and writes adjusted
// start times back into the schedule. Returns the day's (possibly adjusted)
// activities in start order.
func (s *Store) OptimizeDay(startDate string, dayIndex int, est TravelEstimator) ([]Activity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, err := ActivitiesForDay(s.scheduled, startDate, dayIndex)
	if err != nil {
		return nil, false, err
	}
	changed := OptimizeDay(day, est)
	if changed {
		for _, adjusted := range day {
			if idx := indexOf(s.scheduled, adjusted.ID); idx >= 0 {
				s.scheduled[idx].Slot.Start = adjusted.Slot.Start
			}
		}
		s.dirty = true
	}
	return day, changed, nil
}

// Scheduled returns a copy of the scheduled collection.
func (s *Store) Scheduled() []Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Activity(nil), s.scheduled...)
}

// Buffered returns a copy of the buffer.
func (s *Store) Buffered() []Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Activity(nil), s.buffered...)
}

// Records returns every authoritative record, scheduled first, for
// persistence.
func (s *Store) Records() []Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Activity, 0, len(s.scheduled)+len(s.buffered))
	out = append(out, s.scheduled...)
	return append(out, s.buffered...)
}

// PlacedIDs returns the ids that have ever been scheduled, sorted.
func (s *Store) PlacedIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.placed))
	for id := range s.placed {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SeedPlaced merges previously persisted placed ids into the set.
func (s *Store) SeedPlaced(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.placed[id] = struct{}{}
	}
}

// ReplaceID rewrites a locally assigned id with the one the remote store
// issued at creation.
func (s *Store) ReplaceID(oldID, newID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := indexOf(s.scheduled, oldID); idx >= 0 {
		s.scheduled[idx].ID = newID
	}
	if idx := indexOf(s.buffered, oldID); idx >= 0 {
		s.buffered[idx].ID = newID
	}
	if _, ok := s.placed[oldID]; ok {
		delete(s.placed, oldID)
		s.placed[newID] = struct{}{}
	}
}

func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Store) MarkClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

func (s *Store) findLocked(id int64) *Activity {
	if idx := indexOf(s.scheduled, id); idx >= 0 {
		return &s.scheduled[idx]
	}
	if idx := indexOf(s.buffered, id); idx >= 0 {
		return &s.buffered[idx]
	}
	return nil
}

func (s *Store) nextLocalIDLocked() int64 {
	var max int64
	for _, act := range s.scheduled {
		if act.ID > max {
			max = act.ID
		}
	}
	for _, act := range s.buffered {
		if act.ID > max {
			max = act.ID
		}
	}
	return max + 1
}

func indexOf(records []Activity, id int64) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}

func removeByID(records []Activity, id int64) []Activity {
	if idx := indexOf(records, id); idx >= 0 {
		return append(records[:idx], records[idx+1:]...)
	}
	return records
}
