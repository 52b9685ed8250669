package usecase

import (
	"errors"
)

var (
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrAuditLogNotFound      = errors.New("audit log not found")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAppointment    = errors.New("invalid appointment request")
)

// ValidationError carries per-field messages for a rejected request.
// It unwraps to ErrMissingRequiredFields or ErrInvalidAppointment.
type ValidationError struct {
	Fields map[string]string
	cause  error
}

func (e *ValidationError) Error() string {
	return e.cause.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}
