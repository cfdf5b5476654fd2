package travel_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/services"
)

var Module = fx.Provide(provideTravelEstimator)

func provideTravelEstimator() services.TravelEstimatorService {
	return services.NewHaversineEstimator()
}
