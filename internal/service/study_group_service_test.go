package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "campuslink/internal/errors"
	"campuslink/internal/model"
)

// MockStudyGroupRepository is a mock implementation of StudyGroupRepository.
type MockStudyGroupRepository struct {
	mock.Mock
}

func (m *MockStudyGroupRepository) Create(ctx context.Context, group *model.StudyGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockStudyGroupRepository) ListByProfile(ctx context.Context, profileID uint) ([]model.StudyGroup, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudyGroup), args.Error(1)
}

func (m *MockStudyGroupRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestStudyGroupService_CreateGroup(t *testing.T) {
	tests := []struct {
		name          string
		profileID     uint
		groupName     string
		setupMock     func(*MockStudyGroupRepository)
		expectedError error
	}{
		{
			name:      "created",
			profileID: 1,
			groupName: "NITS23K",
			setupMock: func(m *MockStudyGroupRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.StudyGroup")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "missing profile id",
			profileID:     0,
			groupName:     "NITS23K",
			setupMock:     func(m *MockStudyGroupRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "missing name",
			profileID:     1,
			groupName:     "",
			setupMock:     func(m *MockStudyGroupRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockStudyGroupRepository)
			tt.setupMock(mockRepo)

			svc := NewStudyGroupService(mockRepo)
			group, err := svc.CreateGroup(context.Background(), tt.profileID, tt.groupName)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, group)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.groupName, group.Name)
				assert.Equal(t, tt.profileID, group.ProfileID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStudyGroupService_DeleteGroup(t *testing.T) {
	mockRepo := new(MockStudyGroupRepository)
	mockRepo.On("Delete", mock.Anything, uint(9)).Return(gorm.ErrRecordNotFound)

	svc := NewStudyGroupService(mockRepo)
	err := svc.DeleteGroup(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrStudyGroupNotFound)
}
