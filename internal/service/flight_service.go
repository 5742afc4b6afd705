package service

import (
	"context"
	"fmt"

	models "github.com/flightops/airdesk/internal"
	"github.com/flightops/airdesk/internal/ports"
	"github.com/flightops/airdesk/pkg/ident"
)

type flightService struct {
	flights  ports.FlightRepository
	aircraft ports.AircraftRepository
	cache    ports.FlightCache
}

func NewFlightService(flights ports.FlightRepository, aircraft ports.AircraftRepository, cache ports.FlightCache) *flightService {
	return &flightService{
		flights:  flights,
		aircraft: aircraft,
		cache:    cache,
	}
}

func (s *flightService) ListAircraft(ctx context.Context) ([]models.Aircraft, error) {
	aircraft, err := s.aircraft.ListAircraft(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching aircraft: %w", err)
	}
	return aircraft, nil
}

func (s *flightService) ListFlights(ctx context.Context) ([]models.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.flights.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching flights: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *flightService) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	return s.flights.GetFlight(ctx, id)
}

func (s *flightService) CreateFlight(ctx context.Context, req *models.FlightRequest) (*models.Flight, error) {
	departure, err := models.ParseDeparture(req.DepartureDate)
	if err != nil {
		return nil, models.ErrInvalidDeparture
	}

	// Advisory pre-check for a friendly error; the unique constraint
	// catches the race at insert time.
	exists, err := s.flights.FlightExistsByRoute(ctx, req.Destination, departure, "")
	if err != nil {
		return nil, fmt.Errorf("error checking for duplicate flight: %w", err)
	}
	if exists {
		return nil, models.ErrDuplicateFlight
	}

	flight := &models.Flight{
		ID:            ident.New(ident.FlightPrefix),
		DepartureDate: departure,
		Destination:   req.Destination,
		AircraftID:    req.AircraftID,
	}
	if err := s.flights.CreateFlight(ctx, flight); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return flight, nil
}

func (s *flightService) UpdateFlight(ctx context.Context, id string, req *models.FlightRequest) (*models.Flight, error) {
	departure, err := models.ParseDeparture(req.DepartureDate)
	if err != nil {
		return nil, models.ErrInvalidDeparture
	}

	if _, err := s.flights.GetFlight(ctx, id); err != nil {
		return nil, err
	}

	exists, err := s.flights.FlightExistsByRoute(ctx, req.Destination, departure, id)
	if err != nil {
		return nil, fmt.Errorf("error checking for duplicate flight: %w", err)
	}
	if exists {
		return nil, models.ErrDuplicateFlight
	}

	flight := &models.Flight{
		ID:            id,
		DepartureDate: departure,
		Destination:   req.Destination,
		AircraftID:    req.AircraftID,
	}
	if err := s.flights.UpdateFlight(ctx, flight); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return flight, nil
}

func (s *flightService) DeleteFlight(ctx context.Context, id string) error {
	if err := s.flights.DeleteFlight(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *flightService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}
