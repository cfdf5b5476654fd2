package controllers_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewLocationController))
