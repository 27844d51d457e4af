package authfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo,
	provideAuthService,
	provideProfileService,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository, tokenMaker *utils.TokenMaker) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, tokenMaker)
}

func provideProfileService(userRepo repositories.UserRepository) services.ProfileServiceInterface {
	return services.NewProfileService(userRepo)
}
