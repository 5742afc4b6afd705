package repository

import (
	"context"

	models "github.com/flightops/airdesk/internal"
)

type AircraftRepository struct {
	db DBConn
}

func NewAircraftRepository(db DBConn) *AircraftRepository {
	return &AircraftRepository{db: db}
}

func (r *AircraftRepository) ListAircraft(ctx context.Context) ([]models.Aircraft, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, capacity FROM aircraft ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aircraft := make([]models.Aircraft, 0)
	for rows.Next() {
		var a models.Aircraft
		if err := rows.Scan(&a.ID, &a.Name, &a.Capacity); err != nil {
			return nil, err
		}
		aircraft = append(aircraft, a)
	}
	return aircraft, rows.Err()
}
