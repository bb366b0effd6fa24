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

// StudyGroupService exposes study group operations.
type StudyGroupService interface {
	CreateGroup(ctx context.Context, profileID uint, name string) (*model.StudyGroup, error)
	ListGroups(ctx context.Context, profileID uint) ([]model.StudyGroup, error)
	DeleteGroup(ctx context.Context, id uint) error
}

type studyGroupService struct {
	repo repository.StudyGroupRepository
}

// NewStudyGroupService builds a StudyGroupService.
func NewStudyGroupService(repo repository.StudyGroupRepository) StudyGroupService {
	return &studyGroupService{repo: repo}
}

func (s *studyGroupService) CreateGroup(ctx context.Context, profileID uint, name string) (*model.StudyGroup, error) {
	if profileID == 0 || name == "" {
		return nil, apperrors.Invalid("profile_id and study group name are required")
	}
	group := &model.StudyGroup{ProfileID: profileID, Name: name}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("create study group: %w", err)
	}
	return group, nil
}

func (s *studyGroupService) ListGroups(ctx context.Context, profileID uint) ([]model.StudyGroup, error) {
	return s.repo.ListByProfile(ctx, profileID)
}

func (s *studyGroupService) DeleteGroup(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStudyGroupNotFound
		}
		return fmt.Errorf("delete study group: %w", err)
	}
	return nil
}
