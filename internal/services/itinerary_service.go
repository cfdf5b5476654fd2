package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/planner"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type ItineraryServiceInterface interface {
	ListByUser(ctx context.Context, userID string, page int, pageSize int) ([]response_models.ItineraryResponse, error)
	GetById(ctx context.Context, id int64) (*response_models.ItineraryResponse, error)
	Create(ctx context.Context, userID string, request request_models.CreateItineraryRequest) (*response_models.ItineraryResponse, error)
	Update(ctx context.Context, id int64, request request_models.UpdateItineraryRequest) (*response_models.ItineraryResponse, error)
	Delete(ctx context.Context, id int64) error
	Days(ctx context.Context, id int64) ([]planner.Day, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryService) ListByUser(ctx context.Context, userID string, page int, pageSize int) ([]response_models.ItineraryResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itineraries, err := s.itineraryRepo.ListByUser(ctx, uid, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for _, itinerary := range itineraries {
		out = append(out, buildItineraryResponse(&itinerary))
	}
	return out, nil
}

func (s *ItineraryService) GetById(ctx context.Context, id int64) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.itineraryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	out := buildItineraryResponse(itinerary)
	return &out, nil
}

func (s *ItineraryService) Create(ctx context.Context, userID string, request request_models.CreateItineraryRequest) (*response_models.ItineraryResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if strings.TrimSpace(request.Name) == "" {
		return nil, utils.ErrNameRequired
	}
	if err := validateDateRange(request.StartDate, request.EndDate); err != nil {
		return nil, err
	}

	itinerary := &db_models.Itinerary{
		UserID:    uid,
		Name:      strings.TrimSpace(request.Name),
		Location:  request.Location,
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
		Notes:     request.Notes,
	}
	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildItineraryResponse(itinerary)
	return &out, nil
}

func (s *ItineraryService) Update(ctx context.Context, id int64, request request_models.UpdateItineraryRequest) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.itineraryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	if request.Name != nil {
		if strings.TrimSpace(*request.Name) == "" {
			return nil, utils.ErrNameRequired
		}
		itinerary.Name = strings.TrimSpace(*request.Name)
	}
	if request.Location != nil {
		itinerary.Location = *request.Location
	}
	if request.Notes != nil {
		itinerary.Notes = *request.Notes
	}

	startDate := itinerary.StartDate
	endDate := itinerary.EndDate
	if request.StartDate != nil {
		startDate = *request.StartDate
	}
	if request.EndDate != nil {
		endDate = *request.EndDate
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	itinerary.StartDate = startDate
	itinerary.EndDate = endDate

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildItineraryResponse(itinerary)
	return &out, nil
}

func (s *ItineraryService) Delete(ctx context.Context, id int64) error {
	itinerary, err := s.itineraryRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil {
		return utils.ErrItineraryNotFound
	}
	if err := s.itineraryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// Days returns the itinerary's inclusive day buckets.
func (s *ItineraryService) Days(ctx context.Context, id int64) ([]planner.Day, error) {
	itinerary, err := s.itineraryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return planner.GenerateDays(itinerary.StartDate, itinerary.EndDate)
}

func validateDateRange(startDate, endDate string) error {
	start, err := utils.ParseDay(startDate)
	if err != nil {
		return err
	}
	end, err := utils.ParseDay(endDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return utils.ErrDayRange
	}
	return nil
}

func buildItineraryResponse(itinerary *db_models.Itinerary) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		ID:        itinerary.ID,
		Name:      itinerary.Name,
		Location:  itinerary.Location,
		StartDate: itinerary.StartDate,
		EndDate:   itinerary.EndDate,
		Notes:     itinerary.Notes,
	}
}
