package ports

import (
	"context"
	"time"

	models "github.com/flightops/airdesk/internal"
)

type AircraftRepository interface {
	ListAircraft(ctx context.Context) ([]models.Aircraft, error)
}

type FlightRepository interface {
	ListFlights(ctx context.Context) ([]models.Flight, error)
	GetFlight(ctx context.Context, id string) (*models.Flight, error)
	FlightExistsByRoute(ctx context.Context, destination string, departure time.Time, excludeID string) (bool, error)
	CreateFlight(ctx context.Context, flight *models.Flight) error
	UpdateFlight(ctx context.Context, flight *models.Flight) error
	DeleteFlight(ctx context.Context, id string) error
}

type BookingRepository interface {
	ListBookingsByFlight(ctx context.Context, flightID string) ([]models.Booking, error)
	ListBookings(ctx context.Context) ([]models.BookingDetail, error)
	GetBooking(ctx context.Context, id string) (*models.BookingDetail, error)
	HasBooking(ctx context.Context, flightID, bookerName, excludeID string) (bool, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	RenameBooker(ctx context.Context, id, bookerName string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	TransferBooking(ctx context.Context, id, targetFlightID string) (*models.Booking, error)
}

type FlightService interface {
	ListAircraft(ctx context.Context) ([]models.Aircraft, error)
	ListFlights(ctx context.Context) ([]models.Flight, error)
	GetFlight(ctx context.Context, id string) (*models.Flight, error)
	CreateFlight(ctx context.Context, req *models.FlightRequest) (*models.Flight, error)
	UpdateFlight(ctx context.Context, id string, req *models.FlightRequest) (*models.Flight, error)
	DeleteFlight(ctx context.Context, id string) error
}

type BookingService interface {
	ListFlightBookings(ctx context.Context, flightID string) ([]models.Booking, error)
	AllBookings(ctx context.Context) ([]models.BookingDetail, error)
	CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, req *models.BookingUpdateRequest) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	TransferBooking(ctx context.Context, id string, req *models.TransferRequest) (*models.Booking, error)
}

// FlightCache is an optional read-path cache for the flight list. A nil
// cache disables caching.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]models.Flight, error)
	SetFlights(ctx context.Context, flights []models.Flight) error
	InvalidateFlights(ctx context.Context) error
}
