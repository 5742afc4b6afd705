package repository

import (
	"context"
	"errors"
	"time"

	models "github.com/flightops/airdesk/internal"
	"github.com/jackc/pgx/v5"
)

type FlightRepository struct {
	db DBConn
}

func NewFlightRepository(db DBConn) *FlightRepository {
	return &FlightRepository{db: db}
}

const flightColumns = `
        F.id, F.departure_date, F.destination, F.aircraft_id,
        A.name, A.capacity
    FROM flights F
    JOIN aircraft A ON A.id = F.aircraft_id`

func (r *FlightRepository) ListFlights(ctx context.Context) ([]models.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT`+flightColumns+` ORDER BY F.departure_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]models.Flight, 0)
	for rows.Next() {
		var f models.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *FlightRepository) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT`+flightColumns+` WHERE F.id = $1`, id)
	var f models.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FlightExistsByRoute is the advisory duplicate pre-check. The unique
// constraint on (destination, departure_date) remains authoritative.
func (r *FlightRepository) FlightExistsByRoute(ctx context.Context, destination string, departure time.Time, excludeID string) (bool, error) {
	row := r.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM flights
            WHERE destination = $1 AND departure_date = $2 AND id != $3
        )`, destination, departure, excludeID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *FlightRepository) CreateFlight(ctx context.Context, flight *models.Flight) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO flights (id, departure_date, destination, aircraft_id)
        VALUES ($1, $2, $3, $4)
    `, flight.ID, flight.DepartureDate, flight.Destination, flight.AircraftID)
	if err != nil {
		return mapFlightWriteError(err)
	}
	return r.reload(ctx, flight)
}

func (r *FlightRepository) UpdateFlight(ctx context.Context, flight *models.Flight) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE flights
        SET departure_date = $1, destination = $2, aircraft_id = $3
        WHERE id = $4
    `, flight.DepartureDate, flight.Destination, flight.AircraftID, flight.ID)
	if err != nil {
		return mapFlightWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrFlightNotFound
	}
	return r.reload(ctx, flight)
}

// DeleteFlight removes a flight and the bookings it owns in one
// transaction, so a partial delete is never observable.
func (r *FlightRepository) DeleteFlight(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE flight_id = $1`, id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrFlightNotFound
	}

	return tx.Commit(ctx)
}

// reload refreshes the joined aircraft fields after a write.
func (r *FlightRepository) reload(ctx context.Context, flight *models.Flight) error {
	row := r.db.QueryRow(ctx, `SELECT`+flightColumns+` WHERE F.id = $1`, flight.ID)
	return scanFlight(row, flight)
}

func scanFlight(row pgx.Row, f *models.Flight) error {
	return row.Scan(
		&f.ID, &f.DepartureDate, &f.Destination, &f.AircraftID,
		&f.AircraftName, &f.AircraftCapacity,
	)
}

func mapFlightWriteError(err error) error {
	switch {
	case isUniqueViolation(err):
		return models.ErrDuplicateFlight
	case isForeignKeyViolation(err):
		return models.ErrAircraftNotFound
	default:
		return err
	}
}
