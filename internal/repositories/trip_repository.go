package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type TripRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]db_models.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	GetMeta(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	GetByShareToken(ctx context.Context, token string) (*db_models.Trip, error)
	Insert(ctx context.Context, trip *db_models.Trip) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	Copy(ctx context.Context, source *db_models.Trip, newOwner uuid.UUID) (uuid.UUID, error)

	InsertExpense(ctx context.Context, expense *db_models.TripExpense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*db_models.TripExpense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func orderedStops(db *gorm.DB) *gorm.DB {
	return db.Order("trip_stops.order_index ASC")
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Offset(skip).
		Limit(limit).
		Preload("Stops", orderedStops).
		Preload("Stops.City").
		Preload("Expenses").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// GetByID loads the full composition: stops with their city, each stop's
// activities with the catalog activity, and the trip's expenses.
func (r *tripRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Stops", orderedStops).
		Preload("Stops.City").
		Preload("Stops.Activities").
		Preload("Stops.Activities.Activity").
		Preload("Expenses").
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// GetMeta fetches the bare trip row, no associations. Used for ownership
// checks where the nested load would be wasted.
func (r *tripRepository) GetMeta(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) GetByShareToken(ctx context.Context, token string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("share_token = ?", token).
		Preload("Stops", orderedStops).
		Preload("Stops.City").
		Preload("Stops.Activities").
		Preload("Stops.Activities.Activity").
		Preload("Expenses").
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeleteCascade removes the trip and everything it owns, bottom-up, in one
// transaction. Catalog rows (cities, activities) are left untouched.
func (r *tripRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stopIDs := tx.Model(&db_models.TripStop{}).
			Select("id").
			Where("trip_id = ?", id)

		if err := tx.Where("stop_id IN (?)", stopIDs).
			Delete(&db_models.StopActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).
			Delete(&db_models.TripStop{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).
			Delete(&db_models.TripExpense{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Trip{}, "id = ?", id).Error
	})
}

// Copy duplicates the source trip's structure for a new owner in a single
// transaction: either the whole copy lands or none of it does. Dates and
// scheduled times are intentionally not carried over.
func (r *tripRepository) Copy(ctx context.Context, source *db_models.Trip, newOwner uuid.UUID) (uuid.UUID, error) {
	var newID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		newTrip := db_models.Trip{
			UserID:          newOwner,
			Name:            "Copy of " + source.Name,
			Description:     source.Description,
			CoverImage:      source.CoverImage,
			EstimatedBudget: source.EstimatedBudget,
			Status:          db_models.TripStatusDraft,
		}
		if err := tx.Create(&newTrip).Error; err != nil {
			return err
		}
		newID = newTrip.ID

		for i := range source.Stops {
			stop := &source.Stops[i]
			newStop := db_models.TripStop{
				TripID:     newTrip.ID,
				CityID:     stop.CityID,
				OrderIndex: stop.OrderIndex,
			}
			if err := tx.Create(&newStop).Error; err != nil {
				return err
			}

			for j := range stop.Activities {
				newActivity := db_models.StopActivity{
					StopID:     newStop.ID,
					ActivityID: stop.Activities[j].ActivityID,
					Notes:      stop.Activities[j].Notes,
				}
				if err := tx.Create(&newActivity).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		return uuid.Nil, err
	}
	return newID, nil
}

func (r *tripRepository) InsertExpense(ctx context.Context, expense *db_models.TripExpense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *tripRepository) GetExpense(ctx context.Context, id uuid.UUID) (*db_models.TripExpense, error) {
	var expense db_models.TripExpense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *tripRepository) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.TripExpense{}, "id = ?", id).Error
}
