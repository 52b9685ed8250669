package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID    string `json:"doctorId" validate:"required,uuid"`
	PatientName string `json:"patientName" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	Phone       string `json:"phone,omitempty" validate:"omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty"`
}

// Response DTOs

type AppointmentCreatedResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type AppointmentResponse struct {
	ID          uuid.UUID     `json:"id"`
	DoctorID    uuid.UUID     `json:"doctorId"`
	PatientName string        `json:"patientName"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Reason      string        `json:"reason"`
	Phone       string        `json:"phone,omitempty"`
	Email       string        `json:"email,omitempty"`
	Doctor      DoctorSummary `json:"doctor"`
}

// Event DTOs published to the message broker

type AppointmentEvent struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	DoctorID      uuid.UUID `json:"doctorId"`
	DoctorName    string    `json:"doctorName,omitempty"`
	PatientName   string    `json:"patientName,omitempty"`
	Date          string    `json:"date,omitempty"`
	Time          string    `json:"time,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
}
