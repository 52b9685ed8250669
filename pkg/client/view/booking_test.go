package view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2030, 1, 10, 9, 30, 0, 0, time.Local)
}

func TestBookingForm_SubmitConfirms(t *testing.T) {
	ctx := context.Background()
	api, doctors := newSeededAPI(t)
	priya := findDoctor(t, doctors, "Dr. Priya Sharma")

	form := NewBookingForm(api)
	form.now = fixedClock
	require.NoError(t, form.Load(ctx, priya.ID))
	assert.Equal(t, "Dr. Priya Sharma", form.Doctor().Name)

	form.PatientName = "Asha"
	form.Date = "2030-01-10"
	form.Time = "10:00"
	form.Reason = "checkup"

	confirmation, err := form.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Priya Sharma", confirmation.DoctorName)
	assert.Equal(t, "2030-01-10", confirmation.Date)
	assert.Equal(t, "10:00", confirmation.Time)
	assert.NotEmpty(t, confirmation.AppointmentID)

	appointments, err := api.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, confirmation.AppointmentID, appointments[0].ID)
	assert.Equal(t, "Dr. Priya Sharma", appointments[0].Doctor.Name)
}

func TestBookingForm_MinDateIsToday(t *testing.T) {
	form := NewBookingForm(newAPI(t))
	form.now = fixedClock

	assert.Equal(t, "2030-01-10", form.MinDate())
}

func TestBookingForm_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *BookingForm)
		field  string
	}{
		{"missing patient name", func(f *BookingForm) { f.PatientName = " " }, "patientName"},
		{"missing reason", func(f *BookingForm) { f.Reason = "" }, "reason"},
		{"missing time", func(f *BookingForm) { f.Time = "" }, "time"},
		{"missing date", func(f *BookingForm) { f.Date = "" }, "date"},
		{"date before today", func(f *BookingForm) { f.Date = "2030-01-09" }, "date"},
		{"malformed date", func(f *BookingForm) { f.Date = "10/01/2030" }, "date"},
		{"malformed time", func(f *BookingForm) { f.Time = "10am" }, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := &BookingForm{
				PatientName: "Asha",
				Date:        "2030-01-10",
				Time:        "10:00",
				Reason:      "checkup",
				now:         fixedClock,
			}
			require.Nil(t, form.Validate())

			tt.modify(form)
			fields := form.Validate()
			assert.Len(t, fields, 1)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestBookingForm_InvalidFormIsNotSent(t *testing.T) {
	ctx := context.Background()
	api, doctors := newSeededAPI(t)

	form := NewBookingForm(api)
	form.now = fixedClock
	require.NoError(t, form.Load(ctx, findDoctor(t, doctors, "Dr. Ravi Kumar").ID))
	form.Date = "2030-01-11"
	form.Time = "10:00"
	form.Reason = "headache"

	_, err := form.Submit(ctx)
	var formErr *FormError
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Fields, "patientName")

	appointments, err := api.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestBookingForm_SubmitWithoutDoctor(t *testing.T) {
	form := NewBookingForm(newAPI(t))

	_, err := form.Submit(context.Background())
	assert.Error(t, err)
}

func TestBookingForm_ServerFailure(t *testing.T) {
	form := NewBookingForm(newBrokenAPI(t))
	form.now = fixedClock

	err := form.Load(context.Background(), "any")
	assert.Error(t, err)
	assert.Equal(t, "Doctor not found", form.Error())
}
