package models

import "errors"

// Sentinel errors for the booking/transfer rule set. Services return these
// from friendly pre-checks and repositories return the same values when a
// storage constraint fires on a race, so the API layer maps one taxonomy.
var (
	ErrFlightNotFound       = errors.New("flight not found")
	ErrTargetFlightNotFound = errors.New("target flight not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrAircraftNotFound     = errors.New("aircraft not found")

	ErrInvalidDeparture = errors.New("departure date is not a valid timestamp")

	ErrDuplicateFlight = errors.New("flight with the same destination and departure date already exists")

	ErrDuplicateBooking  = errors.New("this person already has a booking on this flight")
	ErrDuplicateTransfer = errors.New("this person already has a booking on the target flight")

	ErrNoSeats         = errors.New("no available seats on this flight")
	ErrNoSeatsOnTarget = errors.New("no available seats on the target flight")

	ErrDestinationMismatch = errors.New("destination of target flight must be the same as the original flight")
)
