package repository

import (
	"context"
	"errors"

	"github.com/saikiran2022/Health-care/internal/domain/entity"
	domainRepo "github.com/saikiran2022/Health-care/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

// CreateBatch inserts all doctors with a single multi-row statement
func (r *doctorRepository) CreateBatch(ctx context.Context, doctors []entity.Doctor) error {
	if len(doctors) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&doctors).Error
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
