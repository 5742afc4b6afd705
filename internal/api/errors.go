package api

import (
	"errors"
	"net/http"

	models "github.com/flightops/airdesk/internal"
	"github.com/flightops/airdesk/internal/utils"
)

// getApiError maps the service error taxonomy onto HTTP status codes. The
// external interface folds validation, conflict and capacity errors into
// the same 400 class; only absence maps to 404.
func getApiError(err error) utils.ApiError {
	switch {
	case errors.Is(err, models.ErrFlightNotFound),
		errors.Is(err, models.ErrTargetFlightNotFound),
		errors.Is(err, models.ErrBookingNotFound):
		return utils.NewNotFound(err.Error())
	case errors.Is(err, models.ErrInvalidDeparture),
		errors.Is(err, models.ErrAircraftNotFound),
		errors.Is(err, models.ErrDuplicateFlight),
		errors.Is(err, models.ErrDuplicateBooking),
		errors.Is(err, models.ErrDuplicateTransfer),
		errors.Is(err, models.ErrNoSeats),
		errors.Is(err, models.ErrNoSeatsOnTarget),
		errors.Is(err, models.ErrDestinationMismatch):
		return utils.NewBadRequest(err.Error())
	default:
		return utils.NewInternalServerError(err.Error())
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	ae := getApiError(err)
	utils.RenderResponse(r, w, ae.StatusCode, ae)
}

func renderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	ae := utils.NewBadRequest(msg)
	utils.RenderResponse(r, w, ae.StatusCode, ae)
}
