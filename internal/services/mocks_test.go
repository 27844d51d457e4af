package services_test

import (
	"context"

	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
)

// Hand-written test doubles: each method is a function field, set only the
// ones a test needs.

type mockUserRepo struct {
	findByEmail  func(ctx context.Context, email string) (*db_models.User, error)
	findByID     func(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	insert       func(ctx context.Context, user *db_models.User) error
	updateFields func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return m.findByEmail(ctx, email)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return m.findByID(ctx, id)
}
func (m *mockUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	return m.insert(ctx, user)
}
func (m *mockUserRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return m.updateFields(ctx, id, fields)
}

var _ repositories.UserRepository = (*mockUserRepo)(nil)

type mockTripRepo struct {
	listByUser      func(ctx context.Context, userID uuid.UUID, skip, limit int) ([]db_models.Trip, error)
	getByID         func(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	getMeta         func(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	getByShareToken func(ctx context.Context, token string) (*db_models.Trip, error)
	insert          func(ctx context.Context, trip *db_models.Trip) error
	updateFields    func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	deleteCascade   func(ctx context.Context, id uuid.UUID) error
	copyTrip        func(ctx context.Context, source *db_models.Trip, newOwner uuid.UUID) (uuid.UUID, error)
	insertExpense   func(ctx context.Context, expense *db_models.TripExpense) error
	getExpense      func(ctx context.Context, id uuid.UUID) (*db_models.TripExpense, error)
	deleteExpense   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]db_models.Trip, error) {
	return m.listByUser(ctx, userID, skip, limit)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) GetMeta(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	return m.getMeta(ctx, id)
}
func (m *mockTripRepo) GetByShareToken(ctx context.Context, token string) (*db_models.Trip, error) {
	return m.getByShareToken(ctx, token)
}
func (m *mockTripRepo) Insert(ctx context.Context, trip *db_models.Trip) error {
	return m.insert(ctx, trip)
}
func (m *mockTripRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return m.updateFields(ctx, id, fields)
}
func (m *mockTripRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return m.deleteCascade(ctx, id)
}
func (m *mockTripRepo) Copy(ctx context.Context, source *db_models.Trip, newOwner uuid.UUID) (uuid.UUID, error) {
	return m.copyTrip(ctx, source, newOwner)
}
func (m *mockTripRepo) InsertExpense(ctx context.Context, expense *db_models.TripExpense) error {
	return m.insertExpense(ctx, expense)
}
func (m *mockTripRepo) GetExpense(ctx context.Context, id uuid.UUID) (*db_models.TripExpense, error) {
	return m.getExpense(ctx, id)
}
func (m *mockTripRepo) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return m.deleteExpense(ctx, id)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

type mockItineraryRepo struct {
	insertStop                  func(ctx context.Context, stop *db_models.TripStop) error
	getStop                     func(ctx context.Context, id uuid.UUID) (*db_models.TripStop, error)
	getStopWithCity             func(ctx context.Context, id uuid.UUID) (*db_models.TripStop, error)
	deleteStopCascade           func(ctx context.Context, id uuid.UUID) error
	insertStopActivity          func(ctx context.Context, activity *db_models.StopActivity) error
	getStopActivity             func(ctx context.Context, id uuid.UUID) (*db_models.StopActivity, error)
	getStopActivityWithActivity func(ctx context.Context, id uuid.UUID) (*db_models.StopActivity, error)
	deleteStopActivity          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockItineraryRepo) InsertStop(ctx context.Context, stop *db_models.TripStop) error {
	return m.insertStop(ctx, stop)
}
func (m *mockItineraryRepo) GetStop(ctx context.Context, id uuid.UUID) (*db_models.TripStop, error) {
	return m.getStop(ctx, id)
}
func (m *mockItineraryRepo) GetStopWithCity(ctx context.Context, id uuid.UUID) (*db_models.TripStop, error) {
	return m.getStopWithCity(ctx, id)
}
func (m *mockItineraryRepo) DeleteStopCascade(ctx context.Context, id uuid.UUID) error {
	return m.deleteStopCascade(ctx, id)
}
func (m *mockItineraryRepo) InsertStopActivity(ctx context.Context, activity *db_models.StopActivity) error {
	return m.insertStopActivity(ctx, activity)
}
func (m *mockItineraryRepo) GetStopActivity(ctx context.Context, id uuid.UUID) (*db_models.StopActivity, error) {
	return m.getStopActivity(ctx, id)
}
func (m *mockItineraryRepo) GetStopActivityWithActivity(ctx context.Context, id uuid.UUID) (*db_models.StopActivity, error) {
	return m.getStopActivityWithActivity(ctx, id)
}
func (m *mockItineraryRepo) DeleteStopActivity(ctx context.Context, id uuid.UUID) error {
	return m.deleteStopActivity(ctx, id)
}

var _ repositories.ItineraryRepository = (*mockItineraryRepo)(nil)
