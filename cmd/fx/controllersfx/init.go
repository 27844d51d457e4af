package controllersfx

import (
	"go.uber.org/fx"

	"globetrotter/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewExploreController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewCommunityController),
)
