package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
)

type ActivityRepository interface {
	ListByItinerary(ctx context.Context, itineraryID int64) ([]db_models.Activity, error)
	FindById(ctx context.Context, id int64) (*db_models.Activity, error)
	Insert(ctx context.Context, activity *db_models.Activity) error
	Update(ctx context.Context, activity *db_models.Activity) error
	Upsert(ctx context.Context, activity *db_models.Activity) error
	Delete(ctx context.Context, id int64) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

func (r *activityRepository) ListByItinerary(ctx context.Context, itineraryID int64) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("date, start_time, id").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindById(ctx context.Context, id int64) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) Update(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

// Upsert writes the record whether or not it already exists; used by the
// session flush, which replays records that may have been created while the
// database was unreachable.
func (r *activityRepository) Upsert(ctx context.Context, activity *db_models.Activity) error {
	if activity.ID <= 0 {
		activity.ID = 0
		return r.db.WithContext(ctx).Create(activity).Error
	}
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&db_models.Activity{}, "id = ?", id).Error
}
