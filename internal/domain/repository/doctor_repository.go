package repository

import (
	"context"

	"github.com/saikiran2022/Health-care/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	CreateBatch(ctx context.Context, doctors []entity.Doctor) error
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
}
