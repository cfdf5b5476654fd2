package geocode_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/services"
)

var Module = fx.Provide(provideGeocoder)

func provideGeocoder() services.GeocodeServiceInterface {
	return services.NewNominatimGeocoder()
}
