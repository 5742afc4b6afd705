package models

import (
	"time"
)

// Aircraft is a reusable fleet resource. Capacity is the seat count and the
// ceiling on simultaneous bookings for any flight using the aircraft.
type Aircraft struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Flight is a scheduled departure to a destination at a specific time.
// AircraftName and AircraftCapacity are joined in when reading, not stored.
type Flight struct {
	ID               string    `json:"id"`
	DepartureDate    time.Time `json:"departure_date"`
	Destination      string    `json:"destination"`
	AircraftID       string    `json:"aircraft_id"`
	AircraftName     string    `json:"aircraft_name"`
	AircraftCapacity int       `json:"aircraft_capacity"`
}

// Booking is a named reservation of one seat on one flight.
type Booking struct {
	ID         string `json:"id"`
	FlightID   string `json:"flight_id"`
	BookerName string `json:"booker_name"`
}

// BookingDetail is a booking joined with its flight's destination and
// departure. Transfer reads the current destination from this join, never
// from client input.
type BookingDetail struct {
	Booking
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
}

type FlightRequest struct {
	DepartureDate string `json:"departure_date" validate:"required,departure"`
	Destination   string `json:"destination" validate:"required"`
	AircraftID    string `json:"aircraft_id" validate:"required"`
}

type BookingRequest struct {
	FlightID   string `json:"flight_id" validate:"required"`
	BookerName string `json:"booker_name" validate:"required"`
}

// BookingUpdateRequest renames the booker. FlightID, when present, only
// selects the flight the uniqueness re-check runs against; the stored flight
// reference is never changed here (moving a booking is the transfer's job).
type BookingUpdateRequest struct {
	BookerName string `json:"booker_name" validate:"required"`
	FlightID   string `json:"flight_id,omitempty"`
}

type TransferRequest struct {
	TargetFlightID string `json:"target_flight_id" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// departureLayouts are the accepted departure timestamp formats: RFC 3339
// first, then the datetime-local shapes operator tooling submits.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func ParseDeparture(s string) (time.Time, error) {
	var err error
	for _, layout := range departureLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
