// Package memory holds mutex-guarded in-process implementations of the domain
// repositories. They back the service when DB_DRIVER=memory and are used by
// end-to-end tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/saikiran2022/Health-care/internal/domain/entity"
	domainRepo "github.com/saikiran2022/Health-care/internal/domain/repository"

	"github.com/google/uuid"
)

// Store keeps every table behind one lock so the appointment join sees a
// consistent doctor set.
type Store struct {
	mu           sync.RWMutex
	doctors      []entity.Doctor
	appointments []entity.Appointment
	auditLogs    []entity.AuditLog
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Doctors() domainRepo.DoctorRepository {
	return &doctorRepository{store: s}
}

func (s *Store) Appointments() domainRepo.AppointmentRepository {
	return &appointmentRepository{store: s}
}

func (s *Store) AuditLogs() domainRepo.AuditLogRepository {
	return &auditLogRepository{store: s}
}

type doctorRepository struct {
	store *Store
}

func (r *doctorRepository) CreateBatch(ctx context.Context, doctors []entity.Doctor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	for i := range doctors {
		if doctors[i].ID == uuid.Nil {
			doctors[i].ID = uuid.New()
		}
		doctors[i].CreatedAt = now
		doctors[i].UpdatedAt = now
	}
	r.store.doctors = append(r.store.doctors, doctors...)
	return nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]entity.Doctor{}, r.store.doctors...), nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.doctorLocked(id), nil
}

func (s *Store) doctorLocked(id uuid.UUID) *entity.Doctor {
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			doctor := s.doctors[i]
			return &doctor
		}
	}
	return nil
}

type appointmentRepository struct {
	store *Store
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	appointment.CreatedAt = time.Now()

	stored := *appointment
	stored.Doctor = nil
	r.store.appointments = append(r.store.appointments, stored)
	return nil
}

func (r *appointmentRepository) FindAllWithDoctor(ctx context.Context) ([]entity.Appointment, error) {
	return r.find(ctx, func(entity.Appointment) bool { return true })
}

func (r *appointmentRepository) FindByDate(ctx context.Context, date string) ([]entity.Appointment, error) {
	return r.find(ctx, func(a entity.Appointment) bool { return a.Date == date })
}

func (r *appointmentRepository) find(ctx context.Context, match func(entity.Appointment) bool) ([]entity.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	appointments := make([]entity.Appointment, 0, len(r.store.appointments))
	for _, a := range r.store.appointments {
		if !match(a) {
			continue
		}
		a.Doctor = r.store.doctorLocked(a.DoctorID)
		appointments = append(appointments, a)
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
	return appointments, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.appointments {
		if r.store.appointments[i].ID == id {
			r.store.appointments = append(r.store.appointments[:i], r.store.appointments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type auditLogRepository struct {
	store *Store
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	log.ID = int64(len(r.store.auditLogs) + 1)
	log.CreatedAt = time.Now()
	r.store.auditLogs = append(r.store.auditLogs, *log)
	return nil
}

func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	logs := make([]entity.AuditLog, len(r.store.auditLogs))
	for i, l := range r.store.auditLogs {
		logs[len(logs)-1-i] = l
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.auditLogs {
		if r.store.auditLogs[i].ID == id {
			log := r.store.auditLogs[i]
			return &log, nil
		}
	}
	return nil, nil
}
