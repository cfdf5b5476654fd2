package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(
	activityRepo repositories.ActivityRepository,
	itineraryRepo repositories.ItineraryRepository,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, itineraryRepo)
}
