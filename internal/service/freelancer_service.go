package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "campuslink/internal/errors"
	"campuslink/internal/model"
	"campuslink/internal/repository"
)

// FreelancerService exposes marketplace operations for freelancer
// profiles and their service listings.
type FreelancerService interface {
	CreateFreelancer(ctx context.Context, accountID uint, headline, skills string) (*model.FreelancerProfile, error)
	GetFreelancer(ctx context.Context, id uint) (*model.FreelancerProfile, error)
	ListFreelancers(ctx context.Context) ([]model.FreelancerProfile, error)
	CreateService(ctx context.Context, freelancerID uint, title, description string, hourlyRate decimal.Decimal) (*model.Service, error)
	ListServices(ctx context.Context, freelancerID uint) ([]model.Service, error)
	DeleteService(ctx context.Context, id uint) error
}

type freelancerService struct {
	freelancerRepo repository.FreelancerRepository
	serviceRepo    repository.ServiceRepository
	accountRepo    repository.AccountRepository
}

// NewFreelancerService builds a FreelancerService.
func NewFreelancerService(freelancerRepo repository.FreelancerRepository, serviceRepo repository.ServiceRepository, accountRepo repository.AccountRepository) FreelancerService {
	return &freelancerService{
		freelancerRepo: freelancerRepo,
		serviceRepo:    serviceRepo,
		accountRepo:    accountRepo,
	}
}

func (s *freelancerService) CreateFreelancer(ctx context.Context, accountID uint, headline, skills string) (*model.FreelancerProfile, error) {
	if accountID == 0 || headline == "" {
		return nil, apperrors.Invalid("account_id and headline are required")
	}
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	if account.Role != model.RoleFreelancer {
		return nil, apperrors.Invalid("account role must be freelancer")
	}
	profile := &model.FreelancerProfile{AccountID: accountID, Headline: headline, Skills: skills}
	if err := s.freelancerRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create freelancer profile: %w", err)
	}
	return profile, nil
}

func (s *freelancerService) GetFreelancer(ctx context.Context, id uint) (*model.FreelancerProfile, error) {
	profile, err := s.freelancerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFreelancerNotFound
		}
		return nil, fmt.Errorf("find freelancer profile: %w", err)
	}
	return profile, nil
}

func (s *freelancerService) ListFreelancers(ctx context.Context) ([]model.FreelancerProfile, error) {
	return s.freelancerRepo.List(ctx)
}

func (s *freelancerService) CreateService(ctx context.Context, freelancerID uint, title, description string, hourlyRate decimal.Decimal) (*model.Service, error) {
	if freelancerID == 0 || title == "" {
		return nil, apperrors.Invalid("freelancer_id and title are required")
	}
	if hourlyRate.IsNegative() {
		return nil, apperrors.Invalid("hourly_rate must not be negative")
	}
	if _, err := s.freelancerRepo.FindByID(ctx, freelancerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFreelancerNotFound
		}
		return nil, fmt.Errorf("find freelancer profile: %w", err)
	}
	service := &model.Service{
		FreelancerID: freelancerID,
		Title:        title,
		Description:  description,
		HourlyRate:   hourlyRate,
	}
	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return service, nil
}

func (s *freelancerService) ListServices(ctx context.Context, freelancerID uint) ([]model.Service, error) {
	return s.serviceRepo.ListByFreelancer(ctx, freelancerID)
}

func (s *freelancerService) DeleteService(ctx context.Context, id uint) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
