package handler

import (
	"errors"
	"net/http"

	"github.com/saikiran2022/Health-care/internal/usecase"
	"github.com/saikiran2022/Health-care/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch doctors")
		return
	}

	response.Success(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Error fetching doctor")
		return
	}

	response.Success(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) SeedDoctors(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.doctorUsecase.SeedDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to seed doctors")
		return
	}

	response.Success(w, http.StatusCreated, seeded)
}
