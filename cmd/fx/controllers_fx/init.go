package controllers_fx

import (
	"tripplanner/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewFormController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewHealthController))
