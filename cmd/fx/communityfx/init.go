package communityfx

import (
	"go.uber.org/fx"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideCommunityService)

func provideCommunityService(tripRepo repositories.TripRepository) services.CommunityServiceInterface {
	return services.NewCommunityService(tripRepo)
}
