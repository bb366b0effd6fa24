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

// HobbyService exposes hobby operations.
type HobbyService interface {
	CreateHobby(ctx context.Context, profileID uint, name string) (*model.Hobby, error)
	ListHobbies(ctx context.Context, profileID uint) ([]model.Hobby, error)
	RenameHobby(ctx context.Context, id uint, name string) error
	DeleteHobby(ctx context.Context, id uint) error
}

type hobbyService struct {
	repo repository.HobbyRepository
}

// NewHobbyService builds a HobbyService.
func NewHobbyService(repo repository.HobbyRepository) HobbyService {
	return &hobbyService{repo: repo}
}

func (s *hobbyService) CreateHobby(ctx context.Context, profileID uint, name string) (*model.Hobby, error) {
	if profileID == 0 || name == "" {
		return nil, apperrors.Invalid("profile_id and hobby name are required")
	}
	hobby := &model.Hobby{ProfileID: profileID, Name: name}
	if err := s.repo.Create(ctx, hobby); err != nil {
		return nil, fmt.Errorf("create hobby: %w", err)
	}
	return hobby, nil
}

func (s *hobbyService) ListHobbies(ctx context.Context, profileID uint) ([]model.Hobby, error) {
	return s.repo.ListByProfile(ctx, profileID)
}

func (s *hobbyService) RenameHobby(ctx context.Context, id uint, name string) error {
	if name == "" {
		return apperrors.Invalid("hobby name is required")
	}
	if err := s.repo.UpdateName(ctx, id, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHobbyNotFound
		}
		return fmt.Errorf("rename hobby: %w", err)
	}
	return nil
}

func (s *hobbyService) DeleteHobby(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHobbyNotFound
		}
		return fmt.Errorf("delete hobby: %w", err)
	}
	return nil
}
