package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"wayfare/internal/api/controllers"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/planner"
	"wayfare/pkg/utils"
)

// mockPlannerService covers only the calls each test assigns; anything else
// panics at the fault.
type mockPlannerService struct {
	LoadSessionFn      func(ctx context.Context, userID string, itineraryID int64, reload bool) (*response_models.PlannerStateResponse, error)
	DayViewFn          func(ctx context.Context, userID string, itineraryID int64, dayIndex int, optimize bool) (*response_models.DayViewResponse, error)
	AddActivityFn      func(ctx context.Context, userID string, itineraryID int64, request request_models.PlannerAddRequest) (*response_models.ActivityResponse, error)
	ScheduleActivityFn func(ctx context.Context, userID string, itineraryID int64, id int64, request request_models.PlannerScheduleRequest) (*response_models.ActivityResponse, error)
}

func (m *mockPlannerService) LoadSession(ctx context.Context, userID string, itineraryID int64, reload bool) (*response_models.PlannerStateResponse, error) {
	return m.LoadSessionFn(ctx, userID, itineraryID, reload)
}

func (m *mockPlannerService) DayView(ctx context.Context, userID string, itineraryID int64, dayIndex int, optimize bool) (*response_models.DayViewResponse, error) {
	return m.DayViewFn(ctx, userID, itineraryID, dayIndex, optimize)
}

func (m *mockPlannerService) AddActivity(ctx context.Context, userID string, itineraryID int64, request request_models.PlannerAddRequest) (*response_models.ActivityResponse, error) {
	return m.AddActivityFn(ctx, userID, itineraryID, request)
}

func (m *mockPlannerService) ScheduleActivity(ctx context.Context, userID string, itineraryID int64, id int64, request request_models.PlannerScheduleRequest) (*response_models.ActivityResponse, error) {
	return m.ScheduleActivityFn(ctx, userID, itineraryID, id, request)
}

func (m *mockPlannerService) UnscheduleActivity(ctx context.Context, userID string, itineraryID int64, id int64) (*response_models.ActivityResponse, error) {
	panic("unexpected UnscheduleActivity call")
}

func (m *mockPlannerService) DeleteActivity(ctx context.Context, userID string, itineraryID int64, id int64) error {
	panic("unexpected DeleteActivity call")
}

func (m *mockPlannerService) EditActivity(ctx context.Context, userID string, itineraryID int64, id int64, request request_models.PlannerEditRequest) (*response_models.ActivityResponse, error) {
	panic("unexpected EditActivity call")
}

func (m *mockPlannerService) Save(ctx context.Context, userID string, itineraryID int64) error {
	panic("unexpected Save call")
}

func plannerRouter(svc *mockPlannerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
	})

	ctrl := controllers.NewPlannerController(svc)
	r.GET("/planner/:itineraryId", ctrl.LoadSession)
	r.GET("/planner/:itineraryId/days/:dayIndex", ctrl.DayView)
	r.POST("/planner/:itineraryId/activities", ctrl.AddActivity)
	r.POST("/planner/:itineraryId/activities/:activityId/schedule", ctrl.ScheduleActivity)
	return r
}

// TestLoadSession_handler verifies the path id, the authenticated user and
// the reload flag all reach the service, and the envelope wraps the state.
func TestLoadSession_handler(t *testing.T) {
	svc := &mockPlannerService{
		LoadSessionFn: func(ctx context.Context, userID string, itineraryID int64, reload bool) (*response_models.PlannerStateResponse, error) {
			require.Equal(t, "user-1", userID)
			require.Equal(t, int64(7), itineraryID)
			require.True(t, reload)
			return &response_models.PlannerStateResponse{ItineraryID: 7, TotalCost: 57}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/planner/7?reload=true", nil)
	plannerRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)
}

// TestLoadSession_badItineraryID verifies a non-numeric path id is a 400
// before the service is touched.
func TestLoadSession_badItineraryID(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/planner/seven", nil)
	plannerRouter(&mockPlannerService{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

// TestScheduleActivity_conflictMapsTo409 verifies a schedule conflict comes
// back as 409 with the blocking activity in the message.
func TestScheduleActivity_conflictMapsTo409(t *testing.T) {
	svc := &mockPlannerService{
		ScheduleActivityFn: func(ctx context.Context, userID string, itineraryID int64, id int64, request request_models.PlannerScheduleRequest) (*response_models.ActivityResponse, error) {
			return nil, &planner.ConflictError{With: planner.Activity{
				Name:        "Louvre",
				Slot:        planner.Slot{Scheduled: true, Date: "2024-06-01", Start: "09:00"},
				DurationMin: 120,
			}}
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/planner/7/activities/2/schedule",
		strings.NewReader(`{"date":"2024-06-01","start_time":"10:00"}`))
	req.Header.Set("Content-Type", "application/json")
	plannerRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "Louvre")
}

// TestAddActivity_badBody verifies malformed JSON is rejected up front.
func TestAddActivity_badBody(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/planner/7/activities", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	plannerRouter(&mockPlannerService{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

// TestDayView_optimizeFlag verifies the optimize query parameter threads
// through to the service.
func TestDayView_optimizeFlag(t *testing.T) {
	var sawOptimize bool
	svc := &mockPlannerService{
		DayViewFn: func(ctx context.Context, userID string, itineraryID int64, dayIndex int, optimize bool) (*response_models.DayViewResponse, error) {
			sawOptimize = optimize
			require.Equal(t, 2, dayIndex)
			return &response_models.DayViewResponse{Adjusted: optimize}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/planner/7/days/2?optimize=true", nil)
	plannerRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, sawOptimize)
}
