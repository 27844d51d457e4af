package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"globetrotter/cmd/fx/authfx"
	"globetrotter/cmd/fx/communityfx"
	"globetrotter/cmd/fx/configfx"
	"globetrotter/cmd/fx/controllersfx"
	"globetrotter/cmd/fx/dbfx"
	"globetrotter/cmd/fx/explorefx"
	"globetrotter/cmd/fx/itineraryfx"
	"globetrotter/cmd/fx/tripfx"
	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/middleware"
	"globetrotter/pkg/utils"
)

func main() {
	app := fx.New(
		configfx.Module,
		dbfx.Module,
		authfx.Module,
		tripfx.Module,
		itineraryfx.Module,
		explorefx.Module,
		communityfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	tokenMaker *utils.TokenMaker,
	userRepo repositories.UserRepository,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	exploreController *controllers.ExploreController,
	profileController *controllers.ProfileController,
	communityController *controllers.CommunityController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	authRequired := middleware.JWTAuthMiddleware(tokenMaker, userRepo)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/signup", authController.Signup)
	auth.POST("/login", authController.Login)
	auth.POST("/login/json", authController.LoginJSON)
	auth.GET("/me", authRequired, authController.Me)

	trips := v1.Group("/trips", authRequired)
	trips.GET("", tripController.ListTrips)
	trips.POST("", tripController.CreateTrip)
	trips.GET("/:id", tripController.GetTrip)
	trips.PUT("/:id", tripController.UpdateTrip)
	trips.DELETE("/:id", tripController.DeleteTrip)
	trips.POST("/:id/expenses", tripController.AddExpense)
	trips.DELETE("/:id/expenses/:expenseId", tripController.RemoveExpense)

	itinerary := v1.Group("/itinerary", authRequired)
	itinerary.POST("/stops/:tripId", itineraryController.AddStop)
	itinerary.DELETE("/stops/:stopId", itineraryController.RemoveStop)
	itinerary.POST("/activities/:stopId", itineraryController.AddActivity)
	itinerary.DELETE("/activities/:activityId", itineraryController.RemoveActivity)

	explore := v1.Group("/explore")
	explore.GET("/cities", exploreController.SearchCities)
	explore.GET("/activities", exploreController.SearchActivities)

	profile := v1.Group("/profile", authRequired)
	profile.GET("", profileController.GetProfile)
	profile.PUT("", profileController.UpdateProfile)

	community := v1.Group("/community")
	community.GET("/shared/:shareToken", communityController.GetSharedTrip)
	community.POST("/copy/:tripId", authRequired, communityController.CopyTrip)

	return r
}
