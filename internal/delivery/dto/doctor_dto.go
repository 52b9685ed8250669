package dto

import (
	"github.com/google/uuid"
)

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Availability   string    `json:"availability"`
	Experience     string    `json:"experience"`
	Image          string    `json:"image,omitempty"`
}

// DoctorSummary is the doctor view embedded in each appointment
type DoctorSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Experience     string    `json:"experience"`
	Image          string    `json:"image,omitempty"`
}

type SeedResponse struct {
	Message string           `json:"message"`
	Count   int              `json:"count"`
	Doctors []DoctorResponse `json:"doctors"`
}
