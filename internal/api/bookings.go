package api

import (
	"net/http"

	models "github.com/flightops/airdesk/internal"
	"github.com/flightops/airdesk/internal/ports"
	"github.com/flightops/airdesk/internal/utils"
	"github.com/flightops/airdesk/internal/validator"
)

func FlightBookingList(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := service.ListFlightBookings(r.Context(), r.PathValue("flightId"))
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, bookings)
	}
}

func BookingList(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := service.AllBookings(r.Context())
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, bookings)
	}
}

func BookingCreate(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BookingRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			renderBadRequest(w, r, "error json decoding body")
			return
		}
		if err := validator.NewCustomValidator().Validate(req); err != nil {
			renderBadRequest(w, r, "missing required fields: flight_id, booker_name")
			return
		}

		booking, err := service.CreateBooking(r.Context(), &req)
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusCreated, booking)
	}
}

func BookingUpdate(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BookingUpdateRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			renderBadRequest(w, r, "error json decoding body")
			return
		}
		if err := validator.NewCustomValidator().Validate(req); err != nil {
			renderBadRequest(w, r, "missing required field: booker_name")
			return
		}

		booking, err := service.UpdateBooking(r.Context(), r.PathValue("id"), &req)
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, booking)
	}
}

func BookingDelete(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteBooking(r.Context(), r.PathValue("id")); err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, models.MessageResponse{Message: "Booking deleted successfully"})
	}
}

func BookingTransfer(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TransferRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			renderBadRequest(w, r, "error json decoding body")
			return
		}
		if err := validator.NewCustomValidator().Validate(req); err != nil {
			renderBadRequest(w, r, "missing required field: target_flight_id")
			return
		}

		booking, err := service.TransferBooking(r.Context(), r.PathValue("id"), &req)
		if err != nil {
			renderError(w, r, err)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, booking)
	}
}
