package api

import (
	"net/http"

	"github.com/flightops/airdesk/internal/ports"
	"github.com/flightops/airdesk/internal/utils"
	"github.com/flightops/airdesk/pkg/health"
)

// NewRouter binds the route table. Write endpoints accept JSON bodies only.
func NewRouter(flights ports.FlightService, bookings ports.BookingService) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /health", health.HealthGet())

	router.HandleFunc("GET /aircraft", AircraftList(flights))

	router.HandleFunc("GET /flights", FlightList(flights))
	router.HandleFunc("GET /flights/{id}", FlightGet(flights))
	router.HandleFunc("POST /flights", jsonOnly(FlightCreate(flights)))
	router.HandleFunc("PUT /flights/{id}", jsonOnly(FlightUpdate(flights)))
	router.HandleFunc("DELETE /flights/{id}", FlightDelete(flights))
	router.HandleFunc("GET /flights/{flightId}/bookings", FlightBookingList(bookings))

	router.HandleFunc("GET /bookings", BookingList(bookings))
	router.HandleFunc("POST /bookings", jsonOnly(BookingCreate(bookings)))
	router.HandleFunc("PUT /bookings/{id}", jsonOnly(BookingUpdate(bookings)))
	router.HandleFunc("DELETE /bookings/{id}", BookingDelete(bookings))
	router.HandleFunc("POST /bookings/{id}/transfer", jsonOnly(BookingTransfer(bookings)))

	return router
}

func jsonOnly(next http.HandlerFunc) http.HandlerFunc {
	return utils.AllowedContentTypes(next, "application/json")
}
