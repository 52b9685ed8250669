package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/saikiran2022/Health-care/internal/converter"
	"github.com/saikiran2022/Health-care/internal/delivery/dto"
	"github.com/saikiran2022/Health-care/internal/domain/entity"
	"github.com/saikiran2022/Health-care/internal/service"
	"github.com/saikiran2022/Health-care/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentFixture struct {
	doctors      *mockDoctorRepo
	appointments *mockAppointmentRepo
	audit        *mockAuditRepo
	publisher    *recordingPublisher
	usecase      AppointmentUsecase
	doctor       entity.Doctor
}

func newAppointmentFixture() *appointmentFixture {
	doctor := entity.Doctor{
		ID:             uuid.New(),
		Name:           "Dr. Priya Sharma",
		Specialization: "Cardiologist",
		Experience:     "12 years",
		Availability:   entity.AvailabilityAvailableToday,
	}
	doctors := &mockDoctorRepo{doctors: []entity.Doctor{doctor}}
	appointments := &mockAppointmentRepo{doctors: doctors}
	audit := &mockAuditRepo{}
	publisher := &recordingPublisher{}
	log := silentLogger()

	return &appointmentFixture{
		doctors:      doctors,
		appointments: appointments,
		audit:        audit,
		publisher:    publisher,
		doctor:       doctor,
		usecase: NewAppointmentUsecase(
			log,
			validator.NewValidator(),
			appointments,
			service.NewAuditService(log, audit),
			publisher,
		),
	}
}

func (f *appointmentFixture) validRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		DoctorID:    f.doctor.ID.String(),
		PatientName: "Asha",
		Date:        "2030-01-01",
		Time:        "10:00",
		Reason:      "checkup",
	}
}

func TestAppointmentUsecase_BookingScenario(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	created, err := f.usecase.CreateAppointment(ctx, f.validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Appointment booked successfully", created.Message)
	assert.NotEqual(t, uuid.Nil, created.ID)

	list, err := f.usecase.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Asha", got.PatientName)
	assert.Equal(t, "2030-01-01", got.Date)
	assert.Equal(t, "10:00", got.Time)
	assert.Equal(t, "checkup", got.Reason)
	assert.Equal(t, f.doctor.ID, got.Doctor.ID)
	assert.Equal(t, f.doctor.Name, got.Doctor.Name)
	assert.Equal(t, f.doctor.Specialization, got.Doctor.Specialization)
	assert.Equal(t, f.doctor.Experience, got.Doctor.Experience)

	assert.Equal(t, []string{service.EventAppointmentBooked}, f.publisher.keys())
	require.Len(t, f.audit.logs, 1)
	assert.Equal(t, entity.AuditActionAppointmentCreate, f.audit.logs[0].Action)
}

func TestAppointmentUsecase_CreateAddsExactlyOneRecord(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	_, err := f.usecase.CreateAppointment(ctx, f.validRequest())
	require.NoError(t, err)
	before, err := f.usecase.ListAppointments(ctx)
	require.NoError(t, err)

	req := f.validRequest()
	req.PatientName = "Ravi"
	req.Phone = "+91 98765 43210"
	req.Email = "ravi@example.com"
	created, err := f.usecase.CreateAppointment(ctx, req)
	require.NoError(t, err)

	after, err := f.usecase.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	var matches int
	for _, a := range after {
		if a.ID == created.ID {
			matches++
			assert.Equal(t, "Ravi", a.PatientName)
			assert.Equal(t, "+91 98765 43210", a.Phone)
			assert.Equal(t, "ravi@example.com", a.Email)
			assert.Equal(t, f.doctor.Name, a.Doctor.Name)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestAppointmentUsecase_SameSlotTwiceIsAccepted(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.usecase.CreateAppointment(context.Background(), f.validRequest())
	require.NoError(t, err)
	_, err = f.usecase.CreateAppointment(context.Background(), f.validRequest())
	require.NoError(t, err)

	assert.Len(t, f.appointments.appointments, 2)
}

func TestAppointmentUsecase_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		field string
		clear func(*dto.CreateAppointmentRequest)
	}{
		{"doctorId", "doctorId", func(r *dto.CreateAppointmentRequest) { r.DoctorID = "" }},
		{"patientName", "patientName", func(r *dto.CreateAppointmentRequest) { r.PatientName = "" }},
		{"date", "date", func(r *dto.CreateAppointmentRequest) { r.Date = "" }},
		{"time", "time", func(r *dto.CreateAppointmentRequest) { r.Time = "" }},
		{"reason", "reason", func(r *dto.CreateAppointmentRequest) { r.Reason = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppointmentFixture()
			req := f.validRequest()
			tt.clear(req)

			created, err := f.usecase.CreateAppointment(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, created)
			assert.ErrorIs(t, err, ErrMissingRequiredFields)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)

			assert.Empty(t, f.appointments.appointments)
			assert.Empty(t, f.publisher.keys())
		})
	}
}

func TestAppointmentUsecase_OptionalContactFields(t *testing.T) {
	f := newAppointmentFixture()
	req := f.validRequest()
	req.Phone = ""
	req.Email = ""

	_, err := f.usecase.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
}

func TestAppointmentUsecase_MalformedDoctorID(t *testing.T) {
	f := newAppointmentFixture()
	req := f.validRequest()
	req.DoctorID = "D1"

	_, err := f.usecase.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidAppointment)
	assert.NotErrorIs(t, err, ErrMissingRequiredFields)
	assert.Empty(t, f.appointments.appointments)
}

func TestAppointmentUsecase_UnknownDoctorUsesPlaceholder(t *testing.T) {
	f := newAppointmentFixture()
	req := f.validRequest()
	missing := uuid.New()
	req.DoctorID = missing.String()

	_, err := f.usecase.CreateAppointment(context.Background(), req)
	require.NoError(t, err)

	list, err := f.usecase.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, missing, list[0].Doctor.ID)
	assert.Equal(t, converter.UnknownDoctorName, list[0].Doctor.Name)
	assert.Equal(t, converter.UnknownDoctorSpecialization, list[0].Doctor.Specialization)
}

func TestAppointmentUsecase_CancelTwice(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	created, err := f.usecase.CreateAppointment(ctx, f.validRequest())
	require.NoError(t, err)

	require.NoError(t, f.usecase.CancelAppointment(ctx, created.ID))

	list, err := f.usecase.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = f.usecase.CancelAppointment(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	assert.Equal(t, []string{service.EventAppointmentBooked, service.EventAppointmentCancelled}, f.publisher.keys())
}

func TestAppointmentUsecase_SideEffectFailuresAreNotFatal(t *testing.T) {
	f := newAppointmentFixture()
	f.audit.err = errors.New("audit table missing")
	f.publisher.err = errors.New("broker down")

	created, err := f.usecase.CreateAppointment(context.Background(), f.validRequest())
	require.NoError(t, err)
	require.NoError(t, f.usecase.CancelAppointment(context.Background(), created.ID))
}

func TestAppointmentUsecase_StoreFailure(t *testing.T) {
	f := newAppointmentFixture()
	storeErr := errors.New("connection reset")
	f.appointments.err = storeErr

	_, err := f.usecase.CreateAppointment(context.Background(), f.validRequest())
	assert.ErrorIs(t, err, storeErr)

	_, err = f.usecase.ListAppointments(context.Background())
	assert.ErrorIs(t, err, storeErr)

	err = f.usecase.CancelAppointment(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storeErr)
}
