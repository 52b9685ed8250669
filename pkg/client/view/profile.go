package view

import (
	"context"

	"github.com/saikiran2022/Health-care/pkg/client"
)

const (
	ErrDoctorNotFound = "Doctor not found"
	availabilityFull  = "Fully Booked"
)

type Profile struct {
	api    *client.Client
	doctor *client.Doctor
	err    string
}

func NewProfile(api *client.Client) *Profile {
	return &Profile{api: api}
}

func (p *Profile) Load(ctx context.Context, doctorID string) error {
	doctor, err := p.api.GetDoctor(ctx, doctorID)
	if err != nil {
		p.doctor = nil
		p.err = ErrDoctorNotFound
		return err
	}
	p.doctor = doctor
	p.err = ""
	return nil
}

func (p *Profile) Doctor() *client.Doctor {
	return p.doctor
}

func (p *Profile) Error() string {
	return p.err
}

// CanBook is false only when the availability label reads "Fully Booked"
func (p *Profile) CanBook() bool {
	return p.doctor != nil && p.doctor.Availability != availabilityFull
}
