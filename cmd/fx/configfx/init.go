package configfx

import (
	"go.uber.org/fx"

	"globetrotter/internal/config"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideTokenMaker,
)

func provideTokenMaker(cfg *config.Config) *utils.TokenMaker {
	return utils.NewTokenMaker(cfg.JWTSecret, cfg.JWTExpireMinutes)
}
