package view

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/saikiran2022/Health-care/pkg/client"
)

const (
	ErrBookingFailed = "Booking failed"

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// FormError lists the fields that failed client-side checks
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid booking form: %s", strings.Join(names, ", "))
}

// Confirmation is what the success screen shows after a booking
type Confirmation struct {
	AppointmentID string
	DoctorName    string
	Date          string
	Time          string
}

type BookingForm struct {
	PatientName string
	Email       string
	Phone       string
	Date        string
	Time        string
	Reason      string

	api    *client.Client
	now    func() time.Time
	doctor *client.Doctor
	err    string
}

func NewBookingForm(api *client.Client) *BookingForm {
	return &BookingForm{api: api, now: time.Now}
}

// Load fetches the doctor being booked so the form can show who the visit is with
func (f *BookingForm) Load(ctx context.Context, doctorID string) error {
	doctor, err := f.api.GetDoctor(ctx, doctorID)
	if err != nil {
		f.doctor = nil
		f.err = ErrDoctorNotFound
		return err
	}
	f.doctor = doctor
	f.err = ""
	return nil
}

func (f *BookingForm) Doctor() *client.Doctor {
	return f.doctor
}

func (f *BookingForm) Error() string {
	return f.err
}

// MinDate is the earliest selectable date, today in local time
func (f *BookingForm) MinDate() string {
	return f.now().Format(dateLayout)
}

// Validate returns the failing fields, or nil when the form can be submitted
func (f *BookingForm) Validate() map[string]string {
	fields := map[string]string{}

	required := map[string]string{
		"patientName": f.PatientName,
		"date":        f.Date,
		"time":        f.Time,
		"reason":      f.Reason,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[name] = "is required"
		}
	}

	if _, missing := fields["date"]; !missing {
		day, err := time.ParseInLocation(dateLayout, f.Date, time.Local)
		switch {
		case err != nil:
			fields["date"] = "must be a date (YYYY-MM-DD)"
		case day.Format(dateLayout) < f.MinDate():
			fields["date"] = "must be today or later"
		}
	}

	if _, missing := fields["time"]; !missing {
		if _, err := time.Parse(timeLayout, f.Time); err != nil {
			fields["time"] = "must be a time (HH:MM)"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Submit books the appointment with the loaded doctor
func (f *BookingForm) Submit(ctx context.Context) (*Confirmation, error) {
	if f.doctor == nil {
		return nil, errors.New("no doctor loaded")
	}
	if fields := f.Validate(); fields != nil {
		return nil, &FormError{Fields: fields}
	}

	result, err := f.api.BookAppointment(ctx, client.BookingRequest{
		DoctorID:    f.doctor.ID,
		PatientName: strings.TrimSpace(f.PatientName),
		Date:        f.Date,
		Time:        f.Time,
		Reason:      strings.TrimSpace(f.Reason),
		Phone:       strings.TrimSpace(f.Phone),
		Email:       strings.TrimSpace(f.Email),
	})
	if err != nil {
		f.err = ErrBookingFailed
		return nil, err
	}

	f.err = ""
	return &Confirmation{
		AppointmentID: result.ID,
		DoctorName:    f.doctor.Name,
		Date:          f.Date,
		Time:          f.Time,
	}, nil
}
