package usecase

import (
	"context"

	"github.com/saikiran2022/Health-care/internal/converter"
	"github.com/saikiran2022/Health-care/internal/delivery/dto"
	"github.com/saikiran2022/Health-care/internal/domain/entity"
	"github.com/saikiran2022/Health-care/internal/domain/repository"
	"github.com/saikiran2022/Health-care/internal/service"
	"github.com/saikiran2022/Health-care/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentCreatedResponse, error)
	ListAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	publisher       service.EventPublisher
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	publisher service.EventPublisher,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		validator:       validator,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		publisher:       publisher,
	}
}

// CreateAppointment records a booking after a presence check of the required fields.
// The doctor reference, the date and slot availability are not checked.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentCreatedResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		cause := ErrInvalidAppointment
		if u.validator.HasMissingFields(err) {
			cause = ErrMissingRequiredFields
		}
		return nil, &ValidationError{
			Fields: u.validator.FormatValidationErrors(err),
			cause:  cause,
		}
	}

	// Validated as a UUID above
	doctorID := uuid.MustParse(req.DoctorID)

	appointment := &entity.Appointment{
		DoctorID:    doctorID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
		Phone:       req.Phone,
		Email:       req.Email,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Errorf("Failed to save appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToEvent(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := u.publisher.PublishJSON(ctx, service.EventAppointmentBooked, converter.AppointmentToEvent(appointment)); err != nil {
		u.log.Warnf("Failed to publish %s for appointment %s: %+v", service.EventAppointmentBooked, appointment.ID, err)
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, time=%s", appointment.ID, appointment.DoctorID, appointment.Date, appointment.Time)
	return &dto.AppointmentCreatedResponse{
		Message: "Appointment booked successfully",
		ID:      appointment.ID,
	}, nil
}

// ListAppointments returns all appointments joined with a doctor summary.
// A missing doctor resolves to a placeholder summary.
func (u *appointmentUsecase) ListAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAllWithDoctor(ctx)
	if err != nil {
		u.log.Errorf("Failed to fetch appointments: %+v", err)
		return nil, err
	}

	for i := range appointments {
		if appointments[i].Doctor == nil {
			u.log.Warnf("Appointment %s references missing doctor %s", appointments[i].ID, appointments[i].DoctorID)
		}
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// CancelAppointment deletes the appointment. Any caller holding the id may cancel.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	affected, err := u.appointmentRepo.Delete(ctx, appointmentID)
	if err != nil {
		u.log.Errorf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	event := dto.AppointmentEvent{AppointmentID: appointmentID}
	if err := u.publisher.PublishJSON(ctx, service.EventAppointmentCancelled, event); err != nil {
		u.log.Warnf("Failed to publish %s for appointment %s: %+v", service.EventAppointmentCancelled, appointmentID, err)
	}

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return nil
}
