package repository

import (
	"context"

	"github.com/saikiran2022/Health-care/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindAllWithDoctor(ctx context.Context) ([]entity.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]entity.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
