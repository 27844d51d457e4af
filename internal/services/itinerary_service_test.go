package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

func tripMetaRepo(trip *db_models.Trip) *mockTripRepo {
	return &mockTripRepo{
		getMeta: func(_ context.Context, _ uuid.UUID) (*db_models.Trip, error) { return trip, nil },
	}
}

func TestItineraryService_AddStop_StoresSuppliedOrderIndex(t *testing.T) {
	owner := uuid.New()
	trip := ownedTrip(owner)
	cityID := uuid.New()

	var inserted *db_models.TripStop
	itinRepo := &mockItineraryRepo{
		insertStop: func(_ context.Context, stop *db_models.TripStop) error {
			stop.ID = uuid.New()
			inserted = stop
			return nil
		},
		getStopWithCity: func(_ context.Context, id uuid.UUID) (*db_models.TripStop, error) {
			inserted.City = &db_models.City{Name: "Paris"}
			return inserted, nil
		},
	}
	svc := services.NewItineraryService(itinRepo, tripMetaRepo(trip))

	stop, err := svc.AddStop(context.Background(), owner, trip.ID, request_models.AddStopRequest{
		CityID:     cityID.String(),
		OrderIndex: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, stop.OrderIndex)
	require.NotNil(t, stop.City)
	assert.Equal(t, "Paris", stop.City.Name)
}

func TestItineraryService_AddStop_NonOwnerForbidden(t *testing.T) {
	trip := ownedTrip(uuid.New())
	svc := services.NewItineraryService(&mockItineraryRepo{}, tripMetaRepo(trip))

	_, err := svc.AddStop(context.Background(), uuid.New(), trip.ID, request_models.AddStopRequest{
		CityID: uuid.New().String(),
	})

	assert.ErrorIs(t, err, utils.ErrNotOwner)
}

func TestItineraryService_RemoveStop_NotFound(t *testing.T) {
	itinRepo := &mockItineraryRepo{
		getStop: func(_ context.Context, _ uuid.UUID) (*db_models.TripStop, error) { return nil, nil },
	}
	svc := services.NewItineraryService(itinRepo, &mockTripRepo{})

	err := svc.RemoveStop(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrStopNotFound)
}

// Deleting a stop must verify ownership through the stop's trip; an id alone
// is not enough.
func TestItineraryService_RemoveStop_NonOwnerForbidden(t *testing.T) {
	trip := ownedTrip(uuid.New())
	stop := &db_models.TripStop{TripID: trip.ID}
	stop.ID = uuid.New()

	itinRepo := &mockItineraryRepo{
		getStop: func(_ context.Context, _ uuid.UUID) (*db_models.TripStop, error) { return stop, nil },
	}
	svc := services.NewItineraryService(itinRepo, tripMetaRepo(trip))

	err := svc.RemoveStop(context.Background(), uuid.New(), stop.ID)

	assert.ErrorIs(t, err, utils.ErrNotOwner)
}

func TestItineraryService_RemoveStop_OwnerCascades(t *testing.T) {
	owner := uuid.New()
	trip := ownedTrip(owner)
	stop := &db_models.TripStop{TripID: trip.ID}
	stop.ID = uuid.New()

	var cascaded uuid.UUID
	itinRepo := &mockItineraryRepo{
		getStop: func(_ context.Context, _ uuid.UUID) (*db_models.TripStop, error) { return stop, nil },
		deleteStopCascade: func(_ context.Context, id uuid.UUID) error {
			cascaded = id
			return nil
		},
	}
	svc := services.NewItineraryService(itinRepo, tripMetaRepo(trip))

	err := svc.RemoveStop(context.Background(), owner, stop.ID)

	require.NoError(t, err)
	assert.Equal(t, stop.ID, cascaded)
}

func TestItineraryService_AddActivity_ReturnsActivityDetails(t *testing.T) {
	owner := uuid.New()
	trip := ownedTrip(owner)
	stop := &db_models.TripStop{TripID: trip.ID}
	stop.ID = uuid.New()
	catalogID := uuid.New()

	var inserted *db_models.StopActivity
	itinRepo := &mockItineraryRepo{
		getStop: func(_ context.Context, _ uuid.UUID) (*db_models.TripStop, error) { return stop, nil },
		insertStopActivity: func(_ context.Context, a *db_models.StopActivity) error {
			a.ID = uuid.New()
			inserted = a
			return nil
		},
		getStopActivityWithActivity: func(_ context.Context, _ uuid.UUID) (*db_models.StopActivity, error) {
			inserted.Activity = &db_models.Activity{Name: "Louvre Museum Tour"}
			return inserted, nil
		},
	}
	svc := services.NewItineraryService(itinRepo, tripMetaRepo(trip))

	activity, err := svc.AddActivity(context.Background(), owner, stop.ID, request_models.AddStopActivityRequest{
		ActivityID: catalogID.String(),
		Notes:      "book tickets ahead",
	})

	require.NoError(t, err)
	assert.Equal(t, catalogID, activity.ActivityID)
	require.NotNil(t, activity.Activity)
	assert.Equal(t, "Louvre Museum Tour", activity.Activity.Name)
}

func TestItineraryService_RemoveActivity_NonOwnerForbidden(t *testing.T) {
	trip := ownedTrip(uuid.New())
	stop := &db_models.TripStop{TripID: trip.ID}
	stop.ID = uuid.New()
	activity := &db_models.StopActivity{StopID: stop.ID}
	activity.ID = uuid.New()

	itinRepo := &mockItineraryRepo{
		getStopActivity: func(_ context.Context, _ uuid.UUID) (*db_models.StopActivity, error) { return activity, nil },
		getStop:         func(_ context.Context, _ uuid.UUID) (*db_models.TripStop, error) { return stop, nil },
	}
	svc := services.NewItineraryService(itinRepo, tripMetaRepo(trip))

	err := svc.RemoveActivity(context.Background(), uuid.New(), activity.ID)

	assert.ErrorIs(t, err, utils.ErrNotOwner)
}

func TestItineraryService_RemoveActivity_NotFound(t *testing.T) {
	itinRepo := &mockItineraryRepo{
		getStopActivity: func(_ context.Context, _ uuid.UUID) (*db_models.StopActivity, error) { return nil, nil },
	}
	svc := services.NewItineraryService(itinRepo, &mockTripRepo{})

	err := svc.RemoveActivity(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}
