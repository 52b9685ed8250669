package usecase

import (
	"context"

	"github.com/saikiran2022/Health-care/internal/converter"
	"github.com/saikiran2022/Health-care/internal/delivery/dto"
	"github.com/saikiran2022/Health-care/internal/domain/entity"
	"github.com/saikiran2022/Health-care/internal/domain/repository"
	"github.com/saikiran2022/Health-care/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	SeedDoctors(ctx context.Context) (*dto.SeedResponse, error)
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	doctorCache  service.DoctorCache
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	doctorCache service.DoctorCache,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		doctorCache:  doctorCache,
		auditService: auditService,
	}
}

// SeedDoctorSet is the fixed catalog inserted by SeedDoctors
func SeedDoctorSet() []entity.Doctor {
	return []entity.Doctor{
		{
			Name:           "Dr. Priya Sharma",
			Specialization: "Cardiologist",
			Availability:   entity.AvailabilityAvailableToday,
			Experience:     "12 years",
			Image:          "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=200",
		},
		{
			Name:           "Dr. Ravi Kumar",
			Specialization: "Neurologist",
			Availability:   entity.AvailabilityFullyBooked,
			Experience:     "15 years",
			Image:          "https://images.unsplash.com/photo-1526256262350-7da7584cf5eb?w=200",
		},
		{
			Name:           "Dr. Meera Joshi",
			Specialization: "Dermatologist",
			Availability:   entity.AvailabilityOnLeave,
			Experience:     "8 years",
			Image:          "https://images.unsplash.com/photo-1537368910025-700350fe46c7?w=200",
		},
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	cached, err := u.doctorCache.GetDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to read doctor list from cache: %+v", err)
	}
	if cached != nil {
		return cached, nil
	}

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)
	if err := u.doctorCache.SetDoctors(ctx, responses); err != nil {
		u.log.Warnf("Failed to cache doctor list: %+v", err)
	}

	return responses, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	cached, err := u.doctorCache.GetDoctor(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to read doctor %s from cache: %+v", doctorID, err)
	}
	if cached != nil {
		return cached, nil
	}

	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		u.log.Warnf("Failed to find doctor: %+v", "doctor not found")
		return nil, ErrDoctorNotFound
	}

	response := converter.DoctorToResponse(doctor)
	if err := u.doctorCache.SetDoctor(ctx, response); err != nil {
		u.log.Warnf("Failed to cache doctor %s: %+v", doctorID, err)
	}

	return response, nil
}

// SeedDoctors inserts the fixed example catalog. Repeated calls insert duplicates.
func (u *doctorUsecase) SeedDoctors(ctx context.Context) (*dto.SeedResponse, error) {
	doctors := SeedDoctorSet()
	if err := u.doctorRepo.CreateBatch(ctx, doctors); err != nil {
		u.log.Warnf("Failed to seed doctors: %+v", err)
		return nil, err
	}

	if err := u.doctorCache.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate doctor cache: %+v", err)
	}

	responses := converter.DoctorsToResponses(doctors)
	ids := make([]string, len(doctors))
	for i := range doctors {
		ids[i] = doctors[i].ID.String()
	}
	if err := u.auditService.LogCreate(ctx, entity.AuditActionDoctorSeed, "doctor", "", ids); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Seeded %d doctors", len(doctors))
	return &dto.SeedResponse{
		Message: "Seeded",
		Count:   len(responses),
		Doctors: responses,
	}, nil
}
