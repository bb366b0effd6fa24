package repository

import (
	"context"

	"gorm.io/gorm"

	"campuslink/internal/model"
)

// FreelancerRepository defines freelancer profile persistence operations.
type FreelancerRepository interface {
	Create(ctx context.Context, profile *model.FreelancerProfile) error
	FindByID(ctx context.Context, id uint) (*model.FreelancerProfile, error)
	List(ctx context.Context) ([]model.FreelancerProfile, error)
}

type freelancerRepository struct {
	db *gorm.DB
}

// NewFreelancerRepository builds a GORM-backed repository.
func NewFreelancerRepository(db *gorm.DB) FreelancerRepository {
	return &freelancerRepository{db: db}
}

func (r *freelancerRepository) Create(ctx context.Context, profile *model.FreelancerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *freelancerRepository) FindByID(ctx context.Context, id uint) (*model.FreelancerProfile, error) {
	var profile model.FreelancerProfile
	if err := r.db.WithContext(ctx).Preload("Services").First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *freelancerRepository) List(ctx context.Context) ([]model.FreelancerProfile, error) {
	var profiles []model.FreelancerProfile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
