package api

import (
	"net/http"

	models "github.com/flightops/airdesk/internal"
	"github.com/flightops/airdesk/internal/ports"
	"github.com/flightops/airdesk/internal/utils"
	"github.com/flightops/airdesk/internal/validator"
)

func AircraftList(service ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aircraft, err := service.ListAircraft(r.Context())
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, aircraft)
	}
}

func FlightList(service ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flights, err := service.ListFlights(r.Context())
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, flights)
	}
}

func FlightGet(service ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flight, err := service.GetFlight(r.Context(), r.PathValue("id"))
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, flight)
	}
}

func FlightCreate(service ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeFlightRequest(w, r)
		if !ok {
			return
		}

		flight, err := service.CreateFlight(r.Context(), req)
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusCreated, flight)
	}
}

func FlightUpdate(service ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeFlightRequest(w, r)
		if !ok {
			return
		}

		flight, err := service.UpdateFlight(r.Context(), r.PathValue("id"), req)
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, flight)
	}
}

func FlightDelete(service ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteFlight(r.Context(), r.PathValue("id")); err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, models.MessageResponse{Message: "Flight deleted successfully"})
	}
}

func decodeFlightRequest(w http.ResponseWriter, r *http.Request) (*models.FlightRequest, bool) {
	var req models.FlightRequest
	if err := utils.JsonDecodeBody(r, &req); err != nil {
		renderBadRequest(w, r, "error json decoding body")
		return nil, false
	}

	v := validator.NewCustomValidator()
	if err := v.Validate(req); err != nil {
		renderBadRequest(w, r, "missing or invalid required fields: departure_date, destination, aircraft_id")
		return nil, false
	}
	return &req, true
}
