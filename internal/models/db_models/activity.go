package db_models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Activity persists one planned event. An empty Date means the activity is
// buffered, not yet placed on a day; the planner turns that sentinel into an
// explicit slot variant on load.
type Activity struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ItineraryID int64 `gorm:"index"`
	Name        string
	Location    string
	Date        string // "YYYY-MM-DD" or "" for buffered
	StartTime   string // "HH:MM", meaningful only with a concrete Date
	DurationMin int
	Cost        float64
	Latitude    float64
	Longitude   float64
	Notes       string
	Tags        pq.StringArray `gorm:"type:text[]"`

	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
