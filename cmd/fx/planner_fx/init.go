package planner_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
	mem "wayfare/pkg/memcache"
)

var Module = fx.Provide(providePlannerService)

func providePlannerService(
	activityRepo repositories.ActivityRepository,
	itineraryRepo repositories.ItineraryRepository,
	snapshots repositories.SnapshotRepository,
	sessions *mem.SessionRegistry,
	travel services.TravelEstimatorService,
) services.PlannerServiceInterface {
	return services.NewPlannerService(activityRepo, itineraryRepo, snapshots, sessions, travel)
}
