package services

import (
	"context"
	"strings"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type ActivityServiceInterface interface {
	ListByItinerary(ctx context.Context, itineraryID int64) ([]response_models.ActivityResponse, error)
	GetById(ctx context.Context, id int64) (*response_models.ActivityResponse, error)
	Create(ctx context.Context, request request_models.CreateActivityRequest) (*response_models.ActivityResponse, error)
	Update(ctx context.Context, id int64, request request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error)
	Delete(ctx context.Context, id int64) error

	TotalCost(ctx context.Context, itineraryID int64) (float64, error)
	DailyCosts(ctx context.Context, itineraryID int64) (*response_models.DailyCostsResponse, error)
	CostForDate(ctx context.Context, itineraryID int64, date string) (float64, error)
}

type ActivityService struct {
	activityRepo  repositories.ActivityRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	itineraryRepo repositories.ItineraryRepository,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo:  activityRepo,
		itineraryRepo: itineraryRepo,
	}
}

func (s *ActivityService) ListByItinerary(ctx context.Context, itineraryID int64) ([]response_models.ActivityResponse, error) {
	activities, err := s.activityRepo.ListByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, buildActivityRecordResponse(&activities[i]))
	}
	return out, nil
}

func (s *ActivityService) GetById(ctx context.Context, id int64) (*response_models.ActivityResponse, error) {
	activity, err := s.activityRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	out := buildActivityRecordResponse(activity)
	return &out, nil
}

func (s *ActivityService) Create(ctx context.Context, request request_models.CreateActivityRequest) (*response_models.ActivityResponse, error) {
	if strings.TrimSpace(request.Name) == "" {
		return nil, utils.ErrNameRequired
	}
	if request.Cost < 0 {
		return nil, utils.ErrInvalidInput
	}

	itinerary, err := s.itineraryRepo.FindById(ctx, request.ItineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	if request.Date != "" {
		if _, err := utils.ParseDay(request.Date); err != nil {
			return nil, err
		}
		if _, err := utils.TimeToMinutes(request.StartTime); err != nil {
			return nil, err
		}
	}

	duration := request.DurationMin
	if duration <= 0 {
		duration = 120
	}

	activity := &db_models.Activity{
		ItineraryID: request.ItineraryID,
		Name:        strings.TrimSpace(request.Name),
		Location:    request.Location,
		Date:        request.Date,
		StartTime:   request.StartTime,
		DurationMin: duration,
		Cost:        request.Cost,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Notes:       request.Notes,
		Tags:        request.Tags,
	}
	if err := s.activityRepo.Insert(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildActivityRecordResponse(activity)
	return &out, nil
}

func (s *ActivityService) Update(ctx context.Context, id int64, request request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error) {
	activity, err := s.activityRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	if request.Name != nil {
		if strings.TrimSpace(*request.Name) == "" {
			return nil, utils.ErrNameRequired
		}
		activity.Name = strings.TrimSpace(*request.Name)
	}
	if request.Cost != nil {
		if *request.Cost < 0 {
			return nil, utils.ErrInvalidInput
		}
		activity.Cost = *request.Cost
	}
	if request.Date != nil {
		if *request.Date != "" {
			if _, err := utils.ParseDay(*request.Date); err != nil {
				return nil, err
			}
		}
		activity.Date = *request.Date
	}
	if request.StartTime != nil {
		if *request.StartTime != "" {
			if _, err := utils.TimeToMinutes(*request.StartTime); err != nil {
				return nil, err
			}
		}
		activity.StartTime = *request.StartTime
	}
	if request.DurationMin != nil && *request.DurationMin > 0 {
		activity.DurationMin = *request.DurationMin
	}
	if request.Location != nil {
		activity.Location = *request.Location
	}
	if request.Latitude != nil {
		activity.Latitude = *request.Latitude
	}
	if request.Longitude != nil {
		activity.Longitude = *request.Longitude
	}
	if request.Notes != nil {
		activity.Notes = *request.Notes
	}
	if request.Tags != nil {
		activity.Tags = request.Tags
	}

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildActivityRecordResponse(activity)
	return &out, nil
}

func (s *ActivityService) Delete(ctx context.Context, id int64) error {
	activity, err := s.activityRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}
	if err := s.activityRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// TotalCost sums every scheduled activity of the itinerary.
func (s *ActivityService) TotalCost(ctx context.Context, itineraryID int64) (float64, error) {
	activities, err := s.activityRepo.ListByItinerary(ctx, itineraryID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	total := 0.0
	for _, activity := range activities {
		if activity.Date != "" {
			total += activity.Cost
		}
	}
	return total, nil
}

// DailyCosts buckets scheduled costs by canonical date.
func (s *ActivityService) DailyCosts(ctx context.Context, itineraryID int64) (*response_models.DailyCostsResponse, error) {
	activities, err := s.activityRepo.ListByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	costs := make(map[string]float64)
	total := 0.0
	for _, activity := range activities {
		if activity.Date == "" {
			continue
		}
		costs[activity.Date] += activity.Cost
		total += activity.Cost
	}
	return &response_models.DailyCostsResponse{Costs: costs, Total: total}, nil
}

func (s *ActivityService) CostForDate(ctx context.Context, itineraryID int64, date string) (float64, error) {
	if _, err := utils.ParseDay(date); err != nil {
		return 0, err
	}
	activities, err := s.activityRepo.ListByItinerary(ctx, itineraryID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	total := 0.0
	for _, activity := range activities {
		if activity.Date == date {
			total += activity.Cost
		}
	}
	return total, nil
}

func buildActivityRecordResponse(activity *db_models.Activity) response_models.ActivityResponse {
	out := response_models.ActivityResponse{
		ID:          activity.ID,
		ItineraryID: activity.ItineraryID,
		Name:        activity.Name,
		Location:    activity.Location,
		Date:        activity.Date,
		StartTime:   activity.StartTime,
		DurationMin: activity.DurationMin,
		Cost:        activity.Cost,
		Latitude:    activity.Latitude,
		Longitude:   activity.Longitude,
		Notes:       activity.Notes,
		Tags:        activity.Tags,
	}
	if activity.Date != "" && activity.StartTime != "" {
		if end, err := utils.EndTime(activity.StartTime, activity.DurationMin); err == nil {
			out.EndTime = end
		}
	}
	return out
}
