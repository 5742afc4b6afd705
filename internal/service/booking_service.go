package service

import (
	"context"
	"errors"
	"fmt"

	models "github.com/flightops/airdesk/internal"
	"github.com/flightops/airdesk/internal/ports"
	"github.com/flightops/airdesk/pkg/ident"
)

type bookingService struct {
	bookings ports.BookingRepository
	flights  ports.FlightRepository
}

func NewBookingService(bookings ports.BookingRepository, flights ports.FlightRepository) *bookingService {
	return &bookingService{
		bookings: bookings,
		flights:  flights,
	}
}

func (s *bookingService) ListFlightBookings(ctx context.Context, flightID string) ([]models.Booking, error) {
	bookings, err := s.bookings.ListBookingsByFlight(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) AllBookings(ctx context.Context) ([]models.BookingDetail, error) {
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	// Friendly pre-checks first. The repository re-runs the capacity and
	// uniqueness checks inside its transaction, which is what actually
	// holds under concurrent requests.
	if _, err := s.flights.GetFlight(ctx, req.FlightID); err != nil {
		return nil, err
	}

	taken, err := s.bookings.HasBooking(ctx, req.FlightID, req.BookerName, "")
	if err != nil {
		return nil, fmt.Errorf("error checking for existing booking: %w", err)
	}
	if taken {
		return nil, models.ErrDuplicateBooking
	}

	booking := &models.Booking{
		ID:         ident.New(ident.BookingPrefix),
		FlightID:   req.FlightID,
		BookerName: req.BookerName,
	}
	if err := s.bookings.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateBooking renames the booker. The uniqueness re-check runs against
// the flight in the request when one is supplied and the booking's stored
// flight otherwise; the stored flight reference itself never changes here.
func (s *bookingService) UpdateBooking(ctx context.Context, id string, req *models.BookingUpdateRequest) (*models.Booking, error) {
	current, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	checkFlightID := req.FlightID
	if checkFlightID == "" {
		checkFlightID = current.FlightID
	}

	taken, err := s.bookings.HasBooking(ctx, checkFlightID, req.BookerName, id)
	if err != nil {
		return nil, fmt.Errorf("error checking for existing booking: %w", err)
	}
	if taken {
		return nil, models.ErrDuplicateBooking
	}

	return s.bookings.RenameBooker(ctx, id, req.BookerName)
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) error {
	return s.bookings.DeleteBooking(ctx, id)
}

// TransferBooking applies the transfer checks in order, fail fast: booking
// exists, target flight exists, destinations match, booker not already on
// the target, target has a free seat. The repository repeats the checks
// transactionally before the single-row update.
func (s *bookingService) TransferBooking(ctx context.Context, id string, req *models.TransferRequest) (*models.Booking, error) {
	booking, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	target, err := s.flights.GetFlight(ctx, req.TargetFlightID)
	if err != nil {
		if errors.Is(err, models.ErrFlightNotFound) {
			return nil, models.ErrTargetFlightNotFound
		}
		return nil, err
	}

	if target.Destination != booking.Destination {
		return nil, models.ErrDestinationMismatch
	}

	taken, err := s.bookings.HasBooking(ctx, target.ID, booking.BookerName, "")
	if err != nil {
		return nil, fmt.Errorf("error checking for existing booking: %w", err)
	}
	if taken {
		return nil, models.ErrDuplicateTransfer
	}

	return s.bookings.TransferBooking(ctx, id, target.ID)
}
