package services

import (
	"context"
	"fmt"
	"log"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/planner"
	"wayfare/internal/repositories"
	mem "wayfare/pkg/memcache"
	"wayfare/pkg/utils"
)

// PlannerServiceInterface exposes one user's planning session over an
// itinerary: load, day views with travel-time adjustment, and the buffer /
// schedule mutations. Mutations apply in memory first and are flushed to
// postgres plus the redis mirror; a failed flush keeps the session dirty so
// an explicit save can retry.
type PlannerServiceInterface interface {
	LoadSession(ctx context.Context, userID string, itineraryID int64, reload bool) (*response_models.PlannerStateResponse, error)
	DayView(ctx context.Context, userID string, itineraryID int64, dayIndex int, optimize bool) (*response_models.DayViewResponse, error)
	AddActivity(ctx context.Context, userID string, itineraryID int64, request request_models.PlannerAddRequest) (*response_models.ActivityResponse, error)
	ScheduleActivity(ctx context.Context, userID string, itineraryID int64, id int64, request request_models.PlannerScheduleRequest) (*response_models.ActivityResponse, error)
	UnscheduleActivity(ctx context.Context, userID string, itineraryID int64, id int64) (*response_models.ActivityResponse, error)
	DeleteActivity(ctx context.Context, userID string, itineraryID int64, id int64) error
	EditActivity(ctx context.Context, userID string, itineraryID int64, id int64, request request_models.PlannerEditRequest) (*response_models.ActivityResponse, error)
	Save(ctx context.Context, userID string, itineraryID int64) error
}

type PlannerService struct {
	activityRepo  repositories.ActivityRepository
	itineraryRepo repositories.ItineraryRepository
	snapshots     repositories.SnapshotRepository
	sessions      *mem.SessionRegistry
	travel        TravelEstimatorService
}

func NewPlannerService(
	activityRepo repositories.ActivityRepository,
	itineraryRepo repositories.ItineraryRepository,
	snapshots repositories.SnapshotRepository,
	sessions *mem.SessionRegistry,
	travel TravelEstimatorService,
) PlannerServiceInterface {
	return &PlannerService{
		activityRepo:  activityRepo,
		itineraryRepo: itineraryRepo,
		snapshots:     snapshots,
		sessions:      sessions,
		travel:        travel,
	}
}

// storeLoader adapts the repositories to the planner's Loader contract.
type storeLoader struct {
	activityRepo repositories.ActivityRepository
	snapshots    repositories.SnapshotRepository
}

func (l *storeLoader) ListRemote(ctx context.Context, itineraryID int64) ([]planner.Activity, error) {
	records, err := l.activityRepo.ListByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRemoteUnavailable, err)
	}
	return toPlannerActivities(records), nil
}

func (l *storeLoader) ListCached(ctx context.Context, userID string, itineraryID int64) ([]planner.Activity, error) {
	records, err := l.snapshots.GetActivities(ctx, userID)
	if err != nil {
		return nil, err
	}
	var scoped []db_models.Activity
	for _, rec := range records {
		if rec.ItineraryID == itineraryID {
			scoped = append(scoped, rec)
		}
	}
	return toPlannerActivities(scoped), nil
}

func (s *PlannerService) session(ctx context.Context, userID string, itineraryID int64, reload bool) (*planner.Store, *db_models.Itinerary, bool, error) {
	itinerary, err := s.itineraryRepo.FindById(ctx, itineraryID)
	if err != nil {
		return nil, nil, false, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, nil, false, utils.ErrItineraryNotFound
	}

	loader := &storeLoader{activityRepo: s.activityRepo, snapshots: s.snapshots}
	store, created := s.sessions.GetOrCreate(userID, itineraryID, func() *planner.Store {
		return planner.NewStore(userID, itineraryID, loader)
	})

	fromCache := false
	if created || reload {
		fromCache, err = store.Load(ctx)
		if err != nil {
			if created {
				s.sessions.Drop(userID, itineraryID)
			}
			return nil, nil, false, err
		}
		if placed, err := s.snapshots.GetPlacedIDs(ctx, userID); err == nil {
			store.SeedPlaced(placed)
		} else {
			log.Printf("placed-id seed skipped: %v", err)
		}
	}
	return store, itinerary, fromCache, nil
}

func (s *PlannerService) LoadSession(ctx context.Context, userID string, itineraryID int64, reload bool) (*response_models.PlannerStateResponse, error) {
	store, itinerary, fromCache, err := s.session(ctx, userID, itineraryID, reload)
	if err != nil {
		return nil, err
	}

	days, err := planner.GenerateDays(itinerary.StartDate, itinerary.EndDate)
	if err != nil {
		return nil, err
	}

	scheduled := store.Scheduled()
	return &response_models.PlannerStateResponse{
		ItineraryID: itineraryID,
		Days:        days,
		Scheduled:   buildPlannerResponses(scheduled),
		Buffered:    buildPlannerResponses(store.Buffered()),
		PlacedIDs:   store.PlacedIDs(),
		TotalCost:   planner.TotalCost(scheduled),
		Dirty:       store.Dirty(),
		FromCache:   fromCache,
	}, nil
}

func (s *PlannerService) DayView(ctx context.Context, userID string, itineraryID int64, dayIndex int, optimize bool) (*response_models.DayViewResponse, error) {
	store, itinerary, _, err := s.session(ctx, userID, itineraryID, false)
	if err != nil {
		return nil, err
	}

	days, err := planner.GenerateDays(itinerary.StartDate, itinerary.EndDate)
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(days) {
		return nil, utils.ErrInvalidInput
	}

	var day []planner.Activity
	adjusted := false
	if optimize {
		day, adjusted, err = store.OptimizeDay(itinerary.StartDate, dayIndex, s.travel)
		if err != nil {
			return nil, err
		}
		if adjusted {
			s.flush(ctx, userID, itineraryID, store)
		}
	} else {
		day, err = planner.ActivitiesForDay(store.Scheduled(), itinerary.StartDate, dayIndex)
		if err != nil {
			return nil, err
		}
	}

	return &response_models.DayViewResponse{
		Day:        days[dayIndex],
		Activities: buildPlannerResponses(day),
		DayCost:    planner.DayTotalCost(day),
		Adjusted:   adjusted,
	}, nil
}

func (s *PlannerService) AddActivity(ctx context.Context, userID string, itineraryID int64, request request_models.PlannerAddRequest) (*response_models.ActivityResponse, error) {
	store, _, _, err := s.session(ctx, userID, itineraryID, false)
	if err != nil {
		return nil, err
	}

	draft := planner.Activity{
		ItineraryID: itineraryID,
		Name:        request.Name,
		Location:    request.Location,
		DurationMin: request.DurationMin,
		Cost:        request.Cost,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Notes:       request.Notes,
		Tags:        request.Tags,
	}
	if request.Date != "" && request.StartTime != "" {
		draft.Slot = planner.Slot{Scheduled: true, Date: request.Date, Start: request.StartTime}
	}

	added, err := store.Add(draft)
	if err != nil {
		return nil, err
	}

	// Let the remote store issue the real id; keep the local one on failure
	// so the record survives in memory and in the mirror until a save.
	record := fromPlannerActivity(added)
	record.ID = 0
	if insertErr := s.activityRepo.Insert(ctx, &record); insertErr != nil {
		log.Printf("activity insert deferred: %v", insertErr)
	} else if record.ID != added.ID {
		store.ReplaceID(added.ID, record.ID)
		added.ID = record.ID
	}
	s.mirror(ctx, userID, itineraryID, store)

	out := buildPlannerResponse(added)
	return &out, nil
}

func (s *PlannerService) ScheduleActivity(ctx context.Context, userID string, itineraryID int64, id int64, request request_models.PlannerScheduleRequest) (*response_models.ActivityResponse, error) {
	store, _, _, err := s.session(ctx, userID, itineraryID, false)
	if err != nil {
		return nil, err
	}

	updated, err := store.Schedule(id, request.Date, request.StartTime)
	if err != nil {
		return nil, err
	}
	s.flush(ctx, userID, itineraryID, store)

	out := buildPlannerResponse(updated)
	return &out, nil
}

func (s *PlannerService) UnscheduleActivity(ctx context.Context, userID string, itineraryID int64, id int64) (*response_models.ActivityResponse, error) {
	store, _, _, err := s.session(ctx, userID, itineraryID, false)
	if err != nil {
		return nil, err
	}

	updated, err := store.Unschedule(id)
	if err != nil {
		return nil, err
	}
	s.flush(ctx, userID, itineraryID, store)

	out := buildPlannerResponse(updated)
	return &out, nil
}

func (s *PlannerService) DeleteActivity(ctx context.Context, userID string, itineraryID int64, id int64) error {
	store, _, _, err := s.session(ctx, userID, itineraryID, false)
	if err != nil {
		return err
	}

	if err := store.Delete(id); err != nil {
		return err
	}
	if id > 0 {
		if err := s.activityRepo.Delete(ctx, id); err != nil {
			log.Printf("activity delete deferred: %v", err)
		}
	}
	s.mirror(ctx, userID, itineraryID, store)
	return nil
}

func (s *PlannerService) EditActivity(ctx context.Context, userID string, itineraryID int64, id int64, request request_models.PlannerEditRequest) (*response_models.ActivityResponse, error) {
	store, _, _, err := s.session(ctx, userID, itineraryID, false)
	if err != nil {
		return nil, err
	}

	updated, err := store.EditDetails(id, planner.Patch{
		Name:      request.Name,
		Cost:      request.Cost,
		Notes:     request.Notes,
		Location:  request.Location,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		Tags:      request.Tags,
	})
	if err != nil {
		return nil, err
	}
	s.flush(ctx, userID, itineraryID, store)

	out := buildPlannerResponse(updated)
	return &out, nil
}

// Save replays every session record into postgres and refreshes the mirror.
func (s *PlannerService) Save(ctx context.Context, userID string, itineraryID int64) error {
	store, _, _, err := s.session(ctx, userID, itineraryID, false)
	if err != nil {
		return err
	}
	if !s.flush(ctx, userID, itineraryID, store) {
		return utils.ErrRemoteUnavailable
	}
	return nil
}

// flush pushes the session's records to postgres and mirrors them to redis.
// Returns true when every remote write succeeded; only then is the session
// marked clean.
func (s *PlannerService) flush(ctx context.Context, userID string, itineraryID int64, store *planner.Store) bool {
	ok := true
	for _, act := range store.Records() {
		record := fromPlannerActivity(act)
		if err := s.activityRepo.Upsert(ctx, &record); err != nil {
			log.Printf("activity flush deferred: %v", err)
			ok = false
			continue
		}
		if record.ID != act.ID {
			store.ReplaceID(act.ID, record.ID)
		}
	}
	s.mirror(ctx, userID, itineraryID, store)
	if ok {
		store.MarkClean()
	}
	return ok
}

// mirror rewrites this itinerary's slice of the user's redis snapshot,
// leaving other itineraries' records in place. Failures are logged, not
// surfaced: the mirror is best effort.
func (s *PlannerService) mirror(ctx context.Context, userID string, itineraryID int64, store *planner.Store) {
	existing, err := s.snapshots.GetActivities(ctx, userID)
	if err != nil {
		log.Printf("snapshot read skipped: %v", err)
		existing = nil
	}
	merged := make([]db_models.Activity, 0, len(existing))
	for _, rec := range existing {
		if rec.ItineraryID != itineraryID {
			merged = append(merged, rec)
		}
	}
	for _, act := range store.Records() {
		merged = append(merged, fromPlannerActivity(act))
	}
	if err := s.snapshots.PutActivities(ctx, userID, merged); err != nil {
		log.Printf("snapshot write skipped: %v", err)
	}
	if err := s.snapshots.PutPlacedIDs(ctx, userID, store.PlacedIDs()); err != nil {
		log.Printf("placed-id write skipped: %v", err)
	}
}

// ---- mapping between persisted records and planner values ----

func toPlannerActivities(records []db_models.Activity) []planner.Activity {
	out := make([]planner.Activity, 0, len(records))
	for i := range records {
		out = append(out, toPlannerActivity(&records[i]))
	}
	return out
}

func toPlannerActivity(record *db_models.Activity) planner.Activity {
	act := planner.Activity{
		ID:          record.ID,
		ItineraryID: record.ItineraryID,
		Name:        record.Name,
		Location:    record.Location,
		DurationMin: record.DurationMin,
		Cost:        record.Cost,
		Latitude:    record.Latitude,
		Longitude:   record.Longitude,
		Notes:       record.Notes,
		Tags:        record.Tags,
	}
	if record.Date != "" {
		act.Slot = planner.Slot{Scheduled: true, Date: record.Date, Start: record.StartTime}
	}
	return act
}

func fromPlannerActivity(act planner.Activity) db_models.Activity {
	record := db_models.Activity{
		ID:          act.ID,
		ItineraryID: act.ItineraryID,
		Name:        act.Name,
		Location:    act.Location,
		DurationMin: act.DurationMin,
		Cost:        act.Cost,
		Latitude:    act.Latitude,
		Longitude:   act.Longitude,
		Notes:       act.Notes,
		Tags:        act.Tags,
	}
	if act.Slot.Scheduled {
		record.Date = act.Slot.Date
		record.StartTime = act.Slot.Start
	}
	return record
}

func buildPlannerResponses(activities []planner.Activity) []response_models.ActivityResponse {
	out := make([]response_models.ActivityResponse, 0, len(activities))
	for _, act := range activities {
		out = append(out, buildPlannerResponse(act))
	}
	return out
}

func buildPlannerResponse(act planner.Activity) response_models.ActivityResponse {
	out := response_models.ActivityResponse{
		ID:          act.ID,
		ItineraryID: act.ItineraryID,
		Name:        act.Name,
		Location:    act.Location,
		DurationMin: act.DurationMin,
		Cost:        act.Cost,
		Latitude:    act.Latitude,
		Longitude:   act.Longitude,
		Notes:       act.Notes,
		Tags:        act.Tags,
	}
	if act.Slot.Scheduled {
		out.Date = act.Slot.Date
		out.StartTime = act.Slot.Start
		if end, err := utils.EndTime(act.Slot.Start, act.DurationMin); err == nil {
			out.EndTime = end
		}
	}
	return out
}
