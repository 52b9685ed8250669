package usecase

import (
	"context"
	"io"
	"sync"

	"github.com/saikiran2022/Health-care/internal/domain/entity"
	"github.com/saikiran2022/Health-care/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// -- Mock Repositories --

type mockDoctorRepo struct {
	doctors []entity.Doctor
	err     error
}

func (m *mockDoctorRepo) CreateBatch(_ context.Context, doctors []entity.Doctor) error {
	if m.err != nil {
		return m.err
	}
	for i := range doctors {
		if doctors[i].ID == uuid.Nil {
			doctors[i].ID = uuid.New()
		}
	}
	m.doctors = append(m.doctors, doctors...)
	return nil
}

func (m *mockDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]entity.Doctor, len(m.doctors))
	copy(out, m.doctors)
	return out, nil
}

func (m *mockDoctorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.doctors {
		if m.doctors[i].ID == id {
			d := m.doctors[i]
			return &d, nil
		}
	}
	return nil, nil
}

type mockAppointmentRepo struct {
	doctors      *mockDoctorRepo
	appointments []entity.Appointment
	err          error
}

func (m *mockAppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	if m.err != nil {
		return m.err
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	m.appointments = append(m.appointments, *a)
	return nil
}

func (m *mockAppointmentRepo) FindAllWithDoctor(ctx context.Context) ([]entity.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]entity.Appointment, len(m.appointments))
	for i, a := range m.appointments {
		if m.doctors != nil {
			a.Doctor, _ = m.doctors.FindByID(ctx, a.DoctorID)
		}
		out[i] = a
	}
	return out, nil
}

func (m *mockAppointmentRepo) FindByDate(ctx context.Context, date string) ([]entity.Appointment, error) {
	all, err := m.FindAllWithDoctor(ctx)
	if err != nil {
		return nil, err
	}
	var out []entity.Appointment
	for _, a := range all {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type mockAuditRepo struct {
	logs []entity.AuditLog
	err  error
}

func (m *mockAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	if m.err != nil {
		return m.err
	}
	log.ID = int64(len(m.logs) + 1)
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockAuditRepo) FindAll(_ context.Context) ([]entity.AuditLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.logs, nil
}

func (m *mockAuditRepo) FindByID(_ context.Context, id int64) (*entity.AuditLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.logs {
		if m.logs[i].ID == id {
			l := m.logs[i]
			return &l, nil
		}
	}
	return nil, nil
}

// -- Mock Services --

type publishedEvent struct {
	key     string
	payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{key: key, payload: v})
	return nil
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, len(p.events))
	for i, e := range p.events {
		keys[i] = e.key
	}
	return keys
}

var _ service.EventPublisher = (*recordingPublisher)(nil)

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
