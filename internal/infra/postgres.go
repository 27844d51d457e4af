package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"globetrotter/internal/config"
	"globetrotter/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.City{},
		&db_models.Activity{},
		&db_models.Trip{},
		&db_models.TripStop{},
		&db_models.StopActivity{},
		&db_models.TripExpense{},
	); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
