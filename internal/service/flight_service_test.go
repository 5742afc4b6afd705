package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	models "github.com/flightops/airdesk/internal"
	"github.com/flightops/airdesk/internal/service"
)

func TestListFlights(t *testing.T) {
	flights := []models.Flight{
		{ID: "FL_1", Destination: "Paris", AircraftName: "Airbus A320", AircraftCapacity: 180},
	}

	t.Run("without cache hits the repository", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), nil)
		ctx := context.Background()

		flightRepo.On("ListFlights", ctx).Return(flights, nil)

		got, err := svc.ListFlights(ctx)

		require.NoError(t, err)
		assert.Equal(t, flights, got)
		flightRepo.AssertExpectations(t)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		cache := new(mockFlightCache)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), cache)
		ctx := context.Background()

		cache.On("GetFlights", ctx).Return(flights, nil)

		got, err := svc.ListFlights(ctx)

		require.NoError(t, err)
		assert.Equal(t, flights, got)
		flightRepo.AssertNotCalled(t, "ListFlights", mock.Anything)
	})

	t.Run("cache miss populates the cache", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		cache := new(mockFlightCache)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), cache)
		ctx := context.Background()

		cache.On("GetFlights", ctx).Return(nil, nil)
		flightRepo.On("ListFlights", ctx).Return(flights, nil)
		cache.On("SetFlights", ctx, flights).Return(nil)

		got, err := svc.ListFlights(ctx)

		require.NoError(t, err)
		assert.Equal(t, flights, got)
		cache.AssertExpectations(t)
	})
}

func TestCreateFlight(t *testing.T) {
	req := &models.FlightRequest{
		DepartureDate: "2026-09-14T10:30:00Z",
		Destination:   "Paris",
		AircraftID:    "AC_001",
	}
	departure := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)

	t.Run("assigns a flight id and persists", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), nil)
		ctx := context.Background()

		flightRepo.On("FlightExistsByRoute", ctx, "Paris", departure, "").Return(false, nil)
		flightRepo.On("CreateFlight", ctx, mock.AnythingOfType("*models.Flight")).Return(nil)

		flight, err := svc.CreateFlight(ctx, req)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(flight.ID, "FL_"))
		assert.Equal(t, "Paris", flight.Destination)
		assert.Equal(t, departure, flight.DepartureDate)
		flightRepo.AssertExpectations(t)
	})

	t.Run("duplicate route rejected before insert", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), nil)
		ctx := context.Background()

		flightRepo.On("FlightExistsByRoute", ctx, "Paris", departure, "").Return(true, nil)

		flight, err := svc.CreateFlight(ctx, req)

		assert.ErrorIs(t, err, models.ErrDuplicateFlight)
		assert.Nil(t, flight)
		flightRepo.AssertNotCalled(t, "CreateFlight", mock.Anything, mock.Anything)
	})

	t.Run("unparseable departure rejected", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), nil)

		flight, err := svc.CreateFlight(context.Background(), &models.FlightRequest{
			DepartureDate: "next tuesday",
			Destination:   "Paris",
			AircraftID:    "AC_001",
		})

		assert.ErrorIs(t, err, models.ErrInvalidDeparture)
		assert.Nil(t, flight)
	})

	t.Run("invalidates the flight cache", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		cache := new(mockFlightCache)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), cache)
		ctx := context.Background()

		flightRepo.On("FlightExistsByRoute", ctx, "Paris", departure, "").Return(false, nil)
		flightRepo.On("CreateFlight", ctx, mock.AnythingOfType("*models.Flight")).Return(nil)
		cache.On("InvalidateFlights", ctx).Return(nil)

		_, err := svc.CreateFlight(ctx, req)

		require.NoError(t, err)
		cache.AssertExpectations(t)
	})
}

func TestUpdateFlight(t *testing.T) {
	req := &models.FlightRequest{
		DepartureDate: "2026-09-14T10:30:00Z",
		Destination:   "Paris",
		AircraftID:    "AC_002",
	}
	departure := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)
	existing := &models.Flight{ID: "FL_1", Destination: "Paris", DepartureDate: departure, AircraftID: "AC_001"}

	t.Run("not found", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), nil)
		ctx := context.Background()

		flightRepo.On("GetFlight", ctx, "FL_missing").Return(nil, models.ErrFlightNotFound)

		flight, err := svc.UpdateFlight(ctx, "FL_missing", req)

		assert.ErrorIs(t, err, models.ErrFlightNotFound)
		assert.Nil(t, flight)
	})

	t.Run("duplicate check excludes the flight itself", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), nil)
		ctx := context.Background()

		flightRepo.On("GetFlight", ctx, "FL_1").Return(existing, nil)
		flightRepo.On("FlightExistsByRoute", ctx, "Paris", departure, "FL_1").Return(false, nil)
		flightRepo.On("UpdateFlight", ctx, mock.AnythingOfType("*models.Flight")).Return(nil)

		flight, err := svc.UpdateFlight(ctx, "FL_1", req)

		require.NoError(t, err)
		assert.Equal(t, "FL_1", flight.ID)
		assert.Equal(t, "AC_002", flight.AircraftID)
		flightRepo.AssertExpectations(t)
	})

	t.Run("duplicate pair rejected", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), nil)
		ctx := context.Background()

		flightRepo.On("GetFlight", ctx, "FL_1").Return(existing, nil)
		flightRepo.On("FlightExistsByRoute", ctx, "Paris", departure, "FL_1").Return(true, nil)

		_, err := svc.UpdateFlight(ctx, "FL_1", req)

		assert.ErrorIs(t, err, models.ErrDuplicateFlight)
		flightRepo.AssertNotCalled(t, "UpdateFlight", mock.Anything, mock.Anything)
	})
}

func TestDeleteFlight(t *testing.T) {
	t.Run("invalidates the cache", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		cache := new(mockFlightCache)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), cache)
		ctx := context.Background()

		flightRepo.On("DeleteFlight", ctx, "FL_1").Return(nil)
		cache.On("InvalidateFlights", ctx).Return(nil)

		require.NoError(t, svc.DeleteFlight(ctx, "FL_1"))
		cache.AssertExpectations(t)
	})

	t.Run("not found passes through and keeps the cache", func(t *testing.T) {
		flightRepo := new(mockFlightRepo)
		cache := new(mockFlightCache)
		svc := service.NewFlightService(flightRepo, new(mockAircraftRepo), cache)
		ctx := context.Background()

		flightRepo.On("DeleteFlight", ctx, "FL_missing").Return(models.ErrFlightNotFound)

		assert.ErrorIs(t, svc.DeleteFlight(ctx, "FL_missing"), models.ErrFlightNotFound)
		cache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
	})
}

func TestListAircraft(t *testing.T) {
	aircraftRepo := new(mockAircraftRepo)
	svc := service.NewFlightService(new(mockFlightRepo), aircraftRepo, nil)
	ctx := context.Background()

	fleet := []models.Aircraft{{ID: "AC_001", Name: "Airbus A320", Capacity: 180}}
	aircraftRepo.On("ListAircraft", ctx).Return(fleet, nil)

	got, err := svc.ListAircraft(ctx)

	require.NoError(t, err)
	assert.Equal(t, fleet, got)
}
