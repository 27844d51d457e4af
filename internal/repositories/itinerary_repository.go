package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type ItineraryRepository interface {
	InsertStop(ctx context.Context, stop *db_models.TripStop) error
	GetStop(ctx context.Context, id uuid.UUID) (*db_models.TripStop, error)
	GetStopWithCity(ctx context.Context, id uuid.UUID) (*db_models.TripStop, error)
	DeleteStopCascade(ctx context.Context, id uuid.UUID) error

	InsertStopActivity(ctx context.Context, activity *db_models.StopActivity) error
	GetStopActivity(ctx context.Context, id uuid.UUID) (*db_models.StopActivity, error)
	GetStopActivityWithActivity(ctx context.Context, id uuid.UUID) (*db_models.StopActivity, error)
	DeleteStopActivity(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) InsertStop(ctx context.Context, stop *db_models.TripStop) error {
	return r.db.WithContext(ctx).Create(stop).Error
}

func (r *itineraryRepository) GetStop(ctx context.Context, id uuid.UUID) (*db_models.TripStop, error) {
	var stop db_models.TripStop
	err := r.db.WithContext(ctx).First(&stop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stop, nil
}

func (r *itineraryRepository) GetStopWithCity(ctx context.Context, id uuid.UUID) (*db_models.TripStop, error) {
	var stop db_models.TripStop
	err := r.db.WithContext(ctx).
		Preload("City").
		First(&stop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stop, nil
}

// DeleteStopCascade removes the stop and its stop activities in one
// transaction.
func (r *itineraryRepository) DeleteStopCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stop_id = ?", id).
			Delete(&db_models.StopActivity{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.TripStop{}, "id = ?", id).Error
	})
}

func (r *itineraryRepository) InsertStopActivity(ctx context.Context, activity *db_models.StopActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *itineraryRepository) GetStopActivity(ctx context.Context, id uuid.UUID) (*db_models.StopActivity, error) {
	var activity db_models.StopActivity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *itineraryRepository) GetStopActivityWithActivity(ctx context.Context, id uuid.UUID) (*db_models.StopActivity, error) {
	var activity db_models.StopActivity
	err := r.db.WithContext(ctx).
		Preload("Activity").
		First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *itineraryRepository) DeleteStopActivity(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.StopActivity{}, "id = ?", id).Error
}
