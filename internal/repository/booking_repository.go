package repository

import (
	"context"
	"errors"

	models "github.com/flightops/airdesk/internal"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db DBConn
}

func NewBookingRepository(db DBConn) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) ListBookingsByFlight(ctx context.Context, flightID string) ([]models.Booking, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, flight_id, booker_name FROM bookings
        WHERE flight_id = $1
        ORDER BY booker_name
    `, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.FlightID, &b.BookerName); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) ListBookings(ctx context.Context) ([]models.BookingDetail, error) {
	rows, err := r.db.Query(ctx, `
        SELECT B.id, B.flight_id, B.booker_name, F.destination, F.departure_date
        FROM bookings B
        JOIN flights F ON F.id = B.flight_id
        ORDER BY F.departure_date, B.booker_name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.BookingDetail, 0)
	for rows.Next() {
		var b models.BookingDetail
		if err := rows.Scan(&b.ID, &b.FlightID, &b.BookerName, &b.Destination, &b.DepartureDate); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) GetBooking(ctx context.Context, id string) (*models.BookingDetail, error) {
	row := r.db.QueryRow(ctx, `
        SELECT B.id, B.flight_id, B.booker_name, F.destination, F.departure_date
        FROM bookings B
        JOIN flights F ON F.id = B.flight_id
        WHERE B.id = $1
    `, id)
	var b models.BookingDetail
	err := row.Scan(&b.ID, &b.FlightID, &b.BookerName, &b.Destination, &b.DepartureDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// HasBooking is the advisory duplicate-person pre-check; the unique
// constraint on (flight_id, booker_name) remains authoritative.
func (r *BookingRepository) HasBooking(ctx context.Context, flightID, bookerName, excludeID string) (bool, error) {
	row := r.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM bookings
            WHERE flight_id = $1 AND booker_name = $2 AND id != $3
        )`, flightID, bookerName, excludeID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateBooking inserts a booking with the capacity check and the insert in
// one transaction. The SELECT locks the flight row, so concurrent seat
// grabs for the same flight serialize and the capacity ceiling holds.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var capacity int
	err = tx.QueryRow(ctx, `
        SELECT A.capacity
        FROM flights F
        JOIN aircraft A ON A.id = F.aircraft_id
        WHERE F.id = $1
        FOR UPDATE OF F
    `, booking.FlightID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrFlightNotFound
		}
		return err
	}

	var count int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE flight_id = $1`, booking.FlightID).Scan(&count)
	if err != nil {
		return err
	}
	if count >= capacity {
		return models.ErrNoSeats
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO bookings (id, flight_id, booker_name)
        VALUES ($1, $2, $3)
    `, booking.ID, booking.FlightID, booking.BookerName)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateBooking
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *BookingRepository) RenameBooker(ctx context.Context, id, bookerName string) (*models.Booking, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE bookings SET booker_name = $1
        WHERE id = $2
        RETURNING id, flight_id, booker_name
    `, bookerName, id)
	var b models.Booking
	if err := row.Scan(&b.ID, &b.FlightID, &b.BookerName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateBooking
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) DeleteBooking(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrBookingNotFound
	}
	return nil
}

// TransferBooking moves a booking to the target flight as a single row
// update. All five transfer checks run again inside the transaction with
// the target flight row locked, so the outcome under concurrency matches
// the advisory checks the service already ran.
func (r *BookingRepository) TransferBooking(ctx context.Context, id, targetFlightID string) (*models.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var booking models.Booking
	var currentDestination string
	err = tx.QueryRow(ctx, `
        SELECT B.id, B.flight_id, B.booker_name, F.destination
        FROM bookings B
        JOIN flights F ON F.id = B.flight_id
        WHERE B.id = $1
    `, id).Scan(&booking.ID, &booking.FlightID, &booking.BookerName, &currentDestination)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}

	var targetDestination string
	var capacity int
	err = tx.QueryRow(ctx, `
        SELECT F.destination, A.capacity
        FROM flights F
        JOIN aircraft A ON A.id = F.aircraft_id
        WHERE F.id = $1
        FOR UPDATE OF F
    `, targetFlightID).Scan(&targetDestination, &capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrTargetFlightNotFound
		}
		return nil, err
	}

	if targetDestination != currentDestination {
		return nil, models.ErrDestinationMismatch
	}

	// No self-exception here: a transfer onto the booking's current flight
	// is a conflict, the booker already holds that seat.
	var taken bool
	err = tx.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM bookings
            WHERE flight_id = $1 AND booker_name = $2
        )`, targetFlightID, booking.BookerName).Scan(&taken)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrDuplicateTransfer
	}

	var count int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE flight_id = $1`, targetFlightID).Scan(&count)
	if err != nil {
		return nil, err
	}
	if count >= capacity {
		return nil, models.ErrNoSeatsOnTarget
	}

	_, err = tx.Exec(ctx, `UPDATE bookings SET flight_id = $1 WHERE id = $2`, targetFlightID, id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateTransfer
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	booking.FlightID = targetFlightID
	return &booking, nil
}
