package repository

import (
	"context"

	"gorm.io/gorm"

	"campuslink/internal/model"
)

// ServiceRepository defines service listing persistence operations.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	ListByFreelancer(ctx context.Context, freelancerID uint) ([]model.Service, error)
	Delete(ctx context.Context, id uint) error
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository builds a GORM-backed repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) ListByFreelancer(ctx context.Context, freelancerID uint) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).Where("freelancer_id = ?", freelancerID).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
