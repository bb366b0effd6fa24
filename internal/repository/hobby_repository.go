package repository

import (
	"context"

	"gorm.io/gorm"

	"campuslink/internal/model"
)

// HobbyRepository defines hobby persistence operations.
type HobbyRepository interface {
	Create(ctx context.Context, hobby *model.Hobby) error
	ListByProfile(ctx context.Context, profileID uint) ([]model.Hobby, error)
	UpdateName(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type hobbyRepository struct {
	db *gorm.DB
}

// NewHobbyRepository builds a GORM-backed repository.
func NewHobbyRepository(db *gorm.DB) HobbyRepository {
	return &hobbyRepository{db: db}
}

func (r *hobbyRepository) Create(ctx context.Context, hobby *model.Hobby) error {
	return r.db.WithContext(ctx).Create(hobby).Error
}

func (r *hobbyRepository) ListByProfile(ctx context.Context, profileID uint) ([]model.Hobby, error) {
	var hobbies []model.Hobby
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).Find(&hobbies).Error; err != nil {
		return nil, err
	}
	return hobbies, nil
}

func (r *hobbyRepository) UpdateName(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).Model(&model.Hobby{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *hobbyRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Hobby{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
