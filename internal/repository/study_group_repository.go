package repository

import (
	"context"

	"gorm.io/gorm"

	"campuslink/internal/model"
)

// StudyGroupRepository defines study group persistence operations.
type StudyGroupRepository interface {
	Create(ctx context.Context, group *model.StudyGroup) error
	ListByProfile(ctx context.Context, profileID uint) ([]model.StudyGroup, error)
	Delete(ctx context.Context, id uint) error
}

type studyGroupRepository struct {
	db *gorm.DB
}

// NewStudyGroupRepository builds a GORM-backed repository.
func NewStudyGroupRepository(db *gorm.DB) StudyGroupRepository {
	return &studyGroupRepository{db: db}
}

func (r *studyGroupRepository) Create(ctx context.Context, group *model.StudyGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *studyGroupRepository) ListByProfile(ctx context.Context, profileID uint) ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *studyGroupRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.StudyGroup{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
