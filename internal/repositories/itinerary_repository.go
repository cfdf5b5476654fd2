package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
)

type ItineraryRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.Itinerary, error)
	FindById(ctx context.Context, id int64) (*db_models.Itinerary, error)
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	Update(ctx context.Context, itinerary *db_models.Itinerary) error
	Delete(ctx context.Context, id int64) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{
		db: db,
	}
}

func (r *itineraryRepository) ListByUser(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) FindById(ctx context.Context, id int64) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) Update(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Save(itinerary).Error
}

func (r *itineraryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&db_models.Itinerary{}, "id = ?", id).Error
}
