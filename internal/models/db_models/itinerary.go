package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Itinerary struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Location  string
	StartDate string // "YYYY-MM-DD"
	EndDate   string // "YYYY-MM-DD", inclusive
	Notes     string

	Activities []Activity `gorm:"foreignKey:ItineraryID"`

	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
