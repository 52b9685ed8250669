package converter

import (
	"github.com/saikiran2022/Health-care/internal/delivery/dto"
	"github.com/saikiran2022/Health-care/internal/domain/entity"
)

// Placeholder values used when an appointment references a doctor that no longer exists
const (
	UnknownDoctorName           = "Unknown Doctor"
	UnknownDoctorSpecialization = "Unknown Specialty"
)

// AppointmentToResponse converts an Appointment entity, joined with its doctor, to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		PatientName: appointment.PatientName,
		Date:        appointment.Date,
		Time:        appointment.Time,
		Reason:      appointment.Reason,
		Phone:       appointment.Phone,
		Email:       appointment.Email,
		Doctor:      doctorSummary(appointment),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToEvent converts an Appointment entity to the event payload
func AppointmentToEvent(appointment *entity.Appointment) dto.AppointmentEvent {
	summary := doctorSummary(appointment)
	return dto.AppointmentEvent{
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		DoctorName:    summary.Name,
		PatientName:   appointment.PatientName,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Phone:         appointment.Phone,
		Email:         appointment.Email,
	}
}

func doctorSummary(appointment *entity.Appointment) dto.DoctorSummary {
	doctor := appointment.Doctor
	if doctor == nil {
		return dto.DoctorSummary{
			ID:             appointment.DoctorID,
			Name:           UnknownDoctorName,
			Specialization: UnknownDoctorSpecialization,
		}
	}

	return dto.DoctorSummary{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		Experience:     doctor.Experience,
		Image:          doctor.Image,
	}
}
