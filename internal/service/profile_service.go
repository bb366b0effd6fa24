package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "campuslink/internal/errors"
	"campuslink/internal/model"
	"campuslink/internal/repository"
)

// ProfileService exposes bio profile operations.
type ProfileService interface {
	CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	UpdateProfile(ctx context.Context, id uint, name, bio, quote string) (*model.Profile, error)
	GetProfile(ctx context.Context, id uint) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	DeleteProfile(ctx context.Context, id uint) error
}

type profileService struct {
	repo repository.ProfileRepository
}

// NewProfileService builds a ProfileService.
func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	if profile.Name == "" {
		return nil, apperrors.Invalid("name is required")
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, id uint, name, bio, quote string) (*model.Profile, error) {
	if name == "" {
		return nil, apperrors.Invalid("name is required")
	}
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	profile.Name = name
	profile.Bio = bio
	profile.Quote = quote
	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetProfile(ctx context.Context, id uint) (*model.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	return s.repo.List(ctx)
}

// DeleteProfile removes the profile together with its study groups and
// hobbies, mirroring what deleting a member page means on the site.
func (s *profileService) DeleteProfile(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
