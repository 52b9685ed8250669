package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saikiran2022/Health-care/internal/delivery/dto"
	"github.com/saikiran2022/Health-care/internal/usecase"
	"github.com/saikiran2022/Health-care/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	created, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr) && errors.Is(err, usecase.ErrMissingRequiredFields):
			response.ValidationError(w, "Missing required fields", validationErr.Fields)
		case errors.As(err, &validationErr):
			response.ValidationError(w, "Invalid appointment request", validationErr.Fields)
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, created)
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch appointments")
		return
	}

	response.Success(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	err = h.appointmentUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to cancel appointment")
		return
	}

	response.Message(w, http.StatusOK, "Appointment cancelled successfully")
}
