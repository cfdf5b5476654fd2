package services_test

import (
	"context"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"wayfare/internal/models/db_models"
)

// Function-field mocks: each test assigns only the calls it expects, so an
// unexpected call panics with a nil-func dereference right at the fault.

type mockAccountRepo struct {
	InsertFn      func(ctx context.Context, account *db_models.Account) error
	FindByIdFn    func(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmailFn func(ctx context.Context, email string) (*db_models.Account, error)
}

func (m *mockAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	return m.InsertFn(ctx, account)
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return m.FindByIdFn(ctx, id)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.FindByEmailFn(ctx, email)
}

type mockItineraryRepo struct {
	ListByUserFn func(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.Itinerary, error)
	FindByIdFn   func(ctx context.Context, id int64) (*db_models.Itinerary, error)
	InsertFn     func(ctx context.Context, itinerary *db_models.Itinerary) error
	UpdateFn     func(ctx context.Context, itinerary *db_models.Itinerary) error
	DeleteFn     func(ctx context.Context, id int64) error
}

func (m *mockItineraryRepo) ListByUser(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.Itinerary, error) {
	return m.ListByUserFn(ctx, userID, page, pageSize)
}

func (m *mockItineraryRepo) FindById(ctx context.Context, id int64) (*db_models.Itinerary, error) {
	return m.FindByIdFn(ctx, id)
}

func (m *mockItineraryRepo) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return m.InsertFn(ctx, itinerary)
}

func (m *mockItineraryRepo) Update(ctx context.Context, itinerary *db_models.Itinerary) error {
	return m.UpdateFn(ctx, itinerary)
}

func (m *mockItineraryRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

type mockActivityRepo struct {
	ListByItineraryFn func(ctx context.Context, itineraryID int64) ([]db_models.Activity, error)
	FindByIdFn        func(ctx context.Context, id int64) (*db_models.Activity, error)
	InsertFn          func(ctx context.Context, activity *db_models.Activity) error
	UpdateFn          func(ctx context.Context, activity *db_models.Activity) error
	UpsertFn          func(ctx context.Context, activity *db_models.Activity) error
	DeleteFn          func(ctx context.Context, id int64) error
}

func (m *mockActivityRepo) ListByItinerary(ctx context.Context, itineraryID int64) ([]db_models.Activity, error) {
	return m.ListByItineraryFn(ctx, itineraryID)
}

func (m *mockActivityRepo) FindById(ctx context.Context, id int64) (*db_models.Activity, error) {
	return m.FindByIdFn(ctx, id)
}

func (m *mockActivityRepo) Insert(ctx context.Context, activity *db_models.Activity) error {
	return m.InsertFn(ctx, activity)
}

func (m *mockActivityRepo) Update(ctx context.Context, activity *db_models.Activity) error {
	return m.UpdateFn(ctx, activity)
}

func (m *mockActivityRepo) Upsert(ctx context.Context, activity *db_models.Activity) error {
	return m.UpsertFn(ctx, activity)
}

func (m *mockActivityRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

// mockSnapshotRepo is an in-memory stand-in for the redis mirror. Tests can
// override individual calls via the function fields; unset fields fall back
// to the maps.
type mockSnapshotRepo struct {
	GetActivitiesFn func(ctx context.Context, userID string) ([]db_models.Activity, error)
	PutActivitiesFn func(ctx context.Context, userID string, records []db_models.Activity) error
	GetPlacedIDsFn  func(ctx context.Context, userID string) ([]int64, error)
	PutPlacedIDsFn  func(ctx context.Context, userID string, ids []int64) error

	activities map[string][]db_models.Activity
	placed     map[string][]int64
}

func newMockSnapshotRepo() *mockSnapshotRepo {
	return &mockSnapshotRepo{
		activities: make(map[string][]db_models.Activity),
		placed:     make(map[string][]int64),
	}
}

func (m *mockSnapshotRepo) GetActivities(ctx context.Context, userID string) ([]db_models.Activity, error) {
	if m.GetActivitiesFn != nil {
		return m.GetActivitiesFn(ctx, userID)
	}
	return m.activities[userID], nil
}

func (m *mockSnapshotRepo) PutActivities(ctx context.Context, userID string, records []db_models.Activity) error {
	if m.PutActivitiesFn != nil {
		return m.PutActivitiesFn(ctx, userID, records)
	}
	m.activities[userID] = records
	return nil
}

func (m *mockSnapshotRepo) GetPlacedIDs(ctx context.Context, userID string) ([]int64, error) {
	if m.GetPlacedIDsFn != nil {
		return m.GetPlacedIDsFn(ctx, userID)
	}
	return m.placed[userID], nil
}

func (m *mockSnapshotRepo) PutPlacedIDs(ctx context.Context, userID string, ids []int64) error {
	if m.PutPlacedIDsFn != nil {
		return m.PutPlacedIDsFn(ctx, userID, ids)
	}
	m.placed[userID] = ids
	return nil
}

type mockChatClient struct {
	CreateChatCompletionFn func(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func (m *mockChatClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return m.CreateChatCompletionFn(ctx, request)
}
