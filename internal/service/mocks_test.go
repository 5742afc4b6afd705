package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	models "github.com/flightops/airdesk/internal"
)

type mockAircraftRepo struct {
	mock.Mock
}

func (m *mockAircraftRepo) ListAircraft(ctx context.Context) ([]models.Aircraft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Aircraft), args.Error(1)
}

type mockFlightRepo struct {
	mock.Mock
}

func (m *mockFlightRepo) ListFlights(ctx context.Context) ([]models.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *mockFlightRepo) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *mockFlightRepo) FlightExistsByRoute(ctx context.Context, destination string, departure time.Time, excludeID string) (bool, error) {
	args := m.Called(ctx, destination, departure, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFlightRepo) CreateFlight(ctx context.Context, flight *models.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *mockFlightRepo) UpdateFlight(ctx context.Context, flight *models.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *mockFlightRepo) DeleteFlight(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) ListBookingsByFlight(ctx context.Context, flightID string) ([]models.Booking, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListBookings(ctx context.Context) ([]models.BookingDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingDetail), args.Error(1)
}

func (m *mockBookingRepo) GetBooking(ctx context.Context, id string) (*models.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDetail), args.Error(1)
}

func (m *mockBookingRepo) HasBooking(ctx context.Context, flightID, bookerName, excludeID string) (bool, error) {
	args := m.Called(ctx, flightID, bookerName, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockBookingRepo) RenameBooker(ctx context.Context, id, bookerName string) (*models.Booking, error) {
	args := m.Called(ctx, id, bookerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingRepo) DeleteBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBookingRepo) TransferBooking(ctx context.Context, id, targetFlightID string) (*models.Booking, error) {
	args := m.Called(ctx, id, targetFlightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type mockFlightCache struct {
	mock.Mock
}

func (m *mockFlightCache) GetFlights(ctx context.Context) ([]models.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *mockFlightCache) SetFlights(ctx context.Context, flights []models.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *mockFlightCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
