package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/constants"
	apperrors "github.com/adamhaque27/Cricket-Performance-Tracker/internal/errors"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/models"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/notify"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/repository"
	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/utils"
)

var (
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUsernameRequired     = errors.New("username is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// CredentialService handles registration, authentication and password
// recovery. Passwords only ever exist here as bcrypt digests.
type CredentialService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	notifier  notify.Notifier
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, notifier notify.Notifier) *CredentialService {
	return &CredentialService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		notifier:  notifier,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user with a hashed credential.
func (s *CredentialService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, apperrors.ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apperrors.ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *CredentialService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// RequestReset issues a single-use reset token for the account with the
// given email and hands it to the notifier. A delivery failure is reported
// alongside the token: the token was persisted before the send and stays
// valid, so the caller can retry delivery out of band.
func (s *CredentialService) RequestReset(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if _, err := s.userRepo.FindByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUnknownEmail
		}
		return "", fmt.Errorf("failed to find account: %w", err)
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.tokenRepo.Create(&models.ResetToken{Email: email, Token: token}); err != nil {
		return "", fmt.Errorf("failed to persist reset token: %w", err)
	}

	body := fmt.Sprintf("Your password reset token is %s", token)
	if err := s.notifier.Notify(email, body); err != nil {
		return token, fmt.Errorf("%w: %v", apperrors.ErrNotificationFailed, err)
	}

	return token, nil
}

// ConsumeReset exchanges a valid token for a password update. The token is
// invalidated in the same transaction, so a second consumption of the same
// token fails.
func (s *CredentialService) ConsumeReset(token, newPassword string) error {
	if len(newPassword) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	if err := s.tokenRepo.ConsumeAndUpdatePassword(token, string(hashedPassword)); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	return nil
}
