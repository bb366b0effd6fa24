package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campuslink/internal/auth"
	apperrors "campuslink/internal/errors"
	"campuslink/internal/model"
	"campuslink/internal/repository"
)

const bcryptCost = 10

var (
	// usernameRe requires the First.Last shape: a capitalized word, a
	// literal dot, another capitalized word (e.g. "Jane.Doe").
	usernameRe = regexp.MustCompile(`^[A-Z][a-z]+\.[A-Z][a-z]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// TokenPair carries the session tokens issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration and authentication.
type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*model.Account, error)
	Login(ctx context.Context, username, password string) (*model.Account, *TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	GetAccount(ctx context.Context, username string) (*model.Account, error)
}

type authService struct {
	accountRepo repository.AccountRepository
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(accountRepo repository.AccountRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// Register validates the request, enforces username/email uniqueness and
// persists the account with a bcrypt hash of the password. The unique
// indexes in the store remain authoritative: if a concurrent registration
// wins the race after the pre-check passed, the insert's duplicate-key
// error is reported as the same conflict the pre-check would have raised.
func (s *authService) Register(ctx context.Context, username, email, password, role string) (*model.Account, error) {
	if username == "" {
		return nil, apperrors.Invalid("username is required")
	}
	if password == "" {
		return nil, apperrors.Invalid("password is required")
	}
	if email == "" {
		return nil, apperrors.Invalid("email is required")
	}
	if role == "" {
		return nil, apperrors.Invalid("role is required")
	}
	if !usernameRe.MatchString(username) {
		return nil, apperrors.Invalid("username must be in Firstname.Lastname format")
	}
	if !emailRe.MatchString(email) {
		return nil, apperrors.Invalid("email is not a valid address")
	}
	if role != model.RoleFreelancer && role != model.RoleCustomer {
		return nil, apperrors.Invalid("role must be freelancer or customer")
	}

	// Username is checked before email; the first conflict wins.
	if _, err := s.accountRepo.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if _, err := s.accountRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.raceConflict(ctx, username)
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// raceConflict decides which field a lost uniqueness race was on, so the
// caller sees the same message a pre-check conflict would produce.
func (s *authService) raceConflict(ctx context.Context, username string) error {
	if _, err := s.accountRepo.FindByUsername(ctx, username); err == nil {
		return apperrors.ErrUsernameTaken
	}
	return apperrors.ErrEmailTaken
}

// Login verifies the password against the stored bcrypt hash and issues a
// token pair. Unknown usernames and wrong passwords produce the same
// error so the response cannot be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, username, password string) (*model.Account, *TokenPair, error) {
	if username == "" || password == "" {
		return nil, nil, apperrors.Invalid("username and password are required")
	}

	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(account.ID, account.Username, account.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(account.ID, account.Username, account.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, account.ID, account.Username, auth.RefreshTokenExpiry); err != nil {
		return nil, nil, fmt.Errorf("store refresh token: %w", err)
	}

	return account, &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	storedAccountID, storedUsername, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	if storedAccountID != claims.AccountID || storedUsername != claims.Username {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.AccountID, claims.Username, claims.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

// GetAccount returns the stored identity for a username.
func (s *authService) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return account, nil
}
