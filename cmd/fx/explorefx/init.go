package explorefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo,
	provideExploreService,
)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideExploreService(catalogRepo repositories.CatalogRepository) services.ExploreServiceInterface {
	return services.NewExploreService(catalogRepo)
}
