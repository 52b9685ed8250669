package view

import (
	"context"
	"time"

	"github.com/saikiran2022/Health-care/pkg/client"
)

const (
	ErrFetchAppointments = "Failed to fetch appointments"
	ErrCancelAppointment = "Failed to cancel appointment"

	unknownDoctorName           = "Unknown Doctor"
	unknownDoctorSpecialization = "Unknown Specialty"
)

type Filter string

const (
	FilterUpcoming Filter = "upcoming"
	FilterPast     Filter = "past"
	FilterAll      Filter = "all"
)

// ConfirmFunc asks the user to confirm cancelling an appointment
type ConfirmFunc func(appointment client.Appointment) bool

type AppointmentsList struct {
	api          *client.Client
	now          func() time.Time
	appointments []client.Appointment
	err          string
}

func NewAppointmentsList(api *client.Client) *AppointmentsList {
	return &AppointmentsList{api: api, now: time.Now}
}

func (l *AppointmentsList) Load(ctx context.Context) error {
	appointments, err := l.api.ListAppointments(ctx)
	if err != nil {
		l.err = ErrFetchAppointments
		return err
	}

	for i := range appointments {
		if appointments[i].Doctor.Name == "" {
			appointments[i].Doctor = client.DoctorSummary{
				ID:             appointments[i].DoctorID,
				Name:           unknownDoctorName,
				Specialization: unknownDoctorSpecialization,
			}
		}
	}

	l.appointments = appointments
	l.err = ""
	return nil
}

func (l *AppointmentsList) Error() string {
	return l.err
}

// IsUpcoming reports whether the appointment's local date and time is at or after now.
// A date or time that does not parse counts as past.
func IsUpcoming(appointment client.Appointment, now time.Time) bool {
	at, err := time.ParseInLocation(dateLayout+" "+timeLayout, appointment.Date+" "+appointment.Time, now.Location())
	if err != nil {
		return false
	}
	return !at.Before(now)
}

// Filter returns the loaded appointments matching f; an unknown filter behaves like FilterAll
func (l *AppointmentsList) Filter(f Filter) []client.Appointment {
	now := l.now()

	out := make([]client.Appointment, 0, len(l.appointments))
	for _, a := range l.appointments {
		switch f {
		case FilterUpcoming:
			if !IsUpcoming(a, now) {
				continue
			}
		case FilterPast:
			if IsUpcoming(a, now) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// Cancel deletes the appointment once confirm approves it and drops it from the local list.
// It reports whether the appointment was cancelled.
func (l *AppointmentsList) Cancel(ctx context.Context, id string, confirm ConfirmFunc) (bool, error) {
	idx := -1
	for i := range l.appointments {
		if l.appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	if confirm == nil || !confirm(l.appointments[idx]) {
		return false, nil
	}

	if err := l.api.CancelAppointment(ctx, id); err != nil {
		l.err = ErrCancelAppointment
		return false, err
	}

	l.appointments = append(l.appointments[:idx:idx], l.appointments[idx+1:]...)
	return true, nil
}
