package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	DoctorID    string `json:"doctorId" validate:"required,uuid"`
	PatientName string `json:"patientName" validate:"required"`
	Phone       string `json:"phone,omitempty" validate:"omitempty"`
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&bookingForm{DoctorID: "not-a-uuid"})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "patientName is required", fields["patientName"])
	assert.Equal(t, "doctorId must be a valid identifier", fields["doctorId"])
	assert.True(t, v.HasMissingFields(err))
}

func TestHasMissingFields_OnlyFormatFailure(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&bookingForm{DoctorID: "D1", PatientName: "Asha"})
	require.Error(t, err)
	assert.False(t, v.HasMissingFields(err))
}

func TestValidate_OK(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&bookingForm{DoctorID: "7f0c6a51-1c1f-4f0e-9c47-2b8f5d9a0e11", PatientName: "Asha"})
	assert.NoError(t, err)
	assert.Empty(t, v.FormatValidationErrors(err))
}
