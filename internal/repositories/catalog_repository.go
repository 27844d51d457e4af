package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

// CatalogRepository serves the shared city/activity reference data. Catalog
// rows are never mutated by trip operations.
type CatalogRepository interface {
	SearchCities(ctx context.Context, query, region string, skip, limit int) ([]db_models.City, error)
	SearchActivities(ctx context.Context, query string, cityID *uuid.UUID, category string, skip, limit int) ([]db_models.Activity, error)
	CountCities(ctx context.Context) (int64, error)
	InsertCities(ctx context.Context, cities []db_models.City) error
	InsertActivities(ctx context.Context, activities []db_models.Activity) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) SearchCities(ctx context.Context, query, region string, skip, limit int) ([]db_models.City, error) {
	tx := r.db.WithContext(ctx).Model(&db_models.City{})

	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("name ILIKE ? OR country ILIKE ?", pattern, pattern)
	}
	if region != "" {
		tx = tx.Where("region = ?", region)
	}

	var cities []db_models.City
	err := tx.Offset(skip).Limit(limit).Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *catalogRepository) SearchActivities(ctx context.Context, query string, cityID *uuid.UUID, category string, skip, limit int) ([]db_models.Activity, error) {
	tx := r.db.WithContext(ctx).Model(&db_models.Activity{})

	if query != "" {
		tx = tx.Where("name ILIKE ?", "%"+query+"%")
	}
	if cityID != nil {
		tx = tx.Where("city_id = ?", *cityID)
	}
	if category != "" {
		tx = tx.Where("category = ?", category)
	}

	var activities []db_models.Activity
	err := tx.Offset(skip).Limit(limit).Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *catalogRepository) CountCities(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.City{}).Count(&count).Error
	return count, err
}

func (r *catalogRepository) InsertCities(ctx context.Context, cities []db_models.City) error {
	return r.db.WithContext(ctx).Create(&cities).Error
}

func (r *catalogRepository) InsertActivities(ctx context.Context, activities []db_models.Activity) error {
	return r.db.WithContext(ctx).Create(&activities).Error
}
