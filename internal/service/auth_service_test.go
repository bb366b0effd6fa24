package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campuslink/internal/auth"
	apperrors "campuslink/internal/errors"
	"campuslink/internal/model"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, accountID uint, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, accountID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		role          string
		setupMock     func(*MockAccountRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "Jane.Doe",
			email:    "jane@x.com",
			password: "secret1",
			role:     "customer",
			setupMock: func(m *MockAccountRepository) {
				m.On("FindByUsername", mock.Anything, "Jane.Doe").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "jane@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Account")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "lowercase username rejected",
			username:      "jane.doe",
			email:         "jane@x.com",
			password:      "secret1",
			role:          "customer",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "username without dot rejected",
			username:      "JaneDoe",
			email:         "jane@x.com",
			password:      "secret1",
			role:          "customer",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "missing password rejected",
			username:      "Jane.Doe",
			email:         "jane@x.com",
			password:      "",
			role:          "customer",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "malformed email rejected",
			username:      "Jane.Doe",
			email:         "jane@x",
			password:      "secret1",
			role:          "customer",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "unknown role rejected",
			username:      "Jane.Doe",
			email:         "jane@x.com",
			password:      "secret1",
			role:          "admin",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:     "username conflict wins over email conflict",
			username: "Jane.Doe",
			email:    "jane@x.com",
			password: "secret1",
			role:     "customer",
			setupMock: func(m *MockAccountRepository) {
				m.On("FindByUsername", mock.Anything, "Jane.Doe").Return(&model.Account{Username: "Jane.Doe"}, nil)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
		{
			name:     "email conflict",
			username: "Jane.Doe",
			email:    "taken@x.com",
			password: "secret1",
			role:     "customer",
			setupMock: func(m *MockAccountRepository) {
				m.On("FindByUsername", mock.Anything, "Jane.Doe").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "taken@x.com").Return(&model.Account{Email: "taken@x.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name:     "uniqueness race lost at insert reports username conflict",
			username: "Jane.Doe",
			email:    "jane@x.com",
			password: "secret1",
			role:     "customer",
			setupMock: func(m *MockAccountRepository) {
				// Pre-check passes, a concurrent insert wins, the second
				// lookup finds the winner.
				m.On("FindByUsername", mock.Anything, "Jane.Doe").Return(nil, gorm.ErrRecordNotFound).Once()
				m.On("FindByEmail", mock.Anything, "jane@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Account")).Return(gorm.ErrDuplicatedKey)
				m.On("FindByUsername", mock.Anything, "Jane.Doe").Return(&model.Account{Username: "Jane.Doe"}, nil).Once()
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
		{
			name:     "uniqueness race lost on email index reports email conflict",
			username: "Jane.Doe",
			email:    "jane@x.com",
			password: "secret1",
			role:     "customer",
			setupMock: func(m *MockAccountRepository) {
				m.On("FindByUsername", mock.Anything, "Jane.Doe").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "jane@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Account")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAccountRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			service := NewAuthService(mockRepo, jwtService, mockTokenStore)
			account, err := service.Register(context.Background(), tt.username, tt.email, tt.password, tt.role)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, account)
				assert.Equal(t, tt.username, account.Username)
				assert.Equal(t, tt.email, account.Email)
				assert.Equal(t, tt.role, account.Role)
				assert.NotEmpty(t, account.PasswordHash)
				assert.NotEqual(t, tt.password, account.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(tt.password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret1"), 10)
	stored := &model.Account{
		ID:           7,
		Username:     "Jane.Doe",
		Email:        "jane@x.com",
		PasswordHash: string(hashedPassword),
		Role:         "customer",
	}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockAccountRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "Jane.Doe",
			password: "secret1",
			setupMock: func(mRepo *MockAccountRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "Jane.Doe").Return(stored, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(7), "Jane.Doe", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "Nosuch.User",
			password: "secret1",
			setupMock: func(mRepo *MockAccountRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "Nosuch.User").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "Jane.Doe",
			password: "wrong",
			setupMock: func(mRepo *MockAccountRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "Jane.Doe").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:          "missing password",
			username:      "Jane.Doe",
			password:      "",
			setupMock:     func(mRepo *MockAccountRepository, mToken *MockTokenStore) {},
			expectedError: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAccountRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore)

			account, tokens, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
				assert.Nil(t, tokens)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, account)
				assert.NotNil(t, tokens)
				assert.Equal(t, tt.username, account.Username)
				assert.Equal(t, "customer", account.Role)
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

// Unknown usernames and wrong passwords must be indistinguishable.
func TestAuthService_LoginDenialIsGeneric(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret1"), 10)

	mockRepo := new(MockAccountRepository)
	mockRepo.On("FindByUsername", mock.Anything, "Nosuch.User").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByUsername", mock.Anything, "Jane.Doe").Return(&model.Account{
		ID:           1,
		Username:     "Jane.Doe",
		PasswordHash: string(hashedPassword),
		Role:         "customer",
	}, nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))

	_, _, errUnknown := service.Login(context.Background(), "Nosuch.User", "secret1")
	_, _, errWrongPass := service.Login(context.Background(), "Jane.Doe", "wrong")

	assert.Error(t, errUnknown)
	assert.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockTokenStore := new(MockTokenStore)

	var stored *model.Account
	mockRepo.On("FindByUsername", mock.Anything, "Jane.Doe").Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("FindByEmail", mock.Anything, "jane@x.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Account")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*model.Account)
		stored.ID = 1
	}).Return(nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), mockTokenStore)

	_, err := service.Register(context.Background(), "Jane.Doe", "jane@x.com", "secret1", "customer")
	assert.NoError(t, err)
	assert.NotNil(t, stored)

	mockRepo.On("FindByUsername", mock.Anything, "Jane.Doe").Return(stored, nil)
	mockTokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "Jane.Doe", mock.Anything).Return(nil)

	account, tokens, err := service.Login(context.Background(), "Jane.Doe", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "Jane.Doe", account.Username)
	assert.Equal(t, "customer", account.Role)
	assert.NotEmpty(t, tokens.AccessToken)

	_, _, err = service.Login(context.Background(), "Jane.Doe", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_GetAccount(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockRepo.On("FindByUsername", mock.Anything, "Jane.Doe").Return(&model.Account{ID: 1, Username: "Jane.Doe", Role: "customer"}, nil)
	mockRepo.On("FindByUsername", mock.Anything, "Nosuch.User").Return(nil, gorm.ErrRecordNotFound)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))

	account, err := service.GetAccount(context.Background(), "Jane.Doe")
	assert.NoError(t, err)
	assert.Equal(t, "Jane.Doe", account.Username)

	_, err = service.GetAccount(context.Background(), "Nosuch.User")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}
