package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/repository"
)

const (
	bcryptCost = 10
	// bcrypt only reads the first 72 bytes of a password and rejects longer input.
	maxPasswordBytes = 72
)

// CredentialService registers users and verifies their secrets.
type CredentialService interface {
	Register(ctx context.Context, username, password string, role model.Role) (*model.User, error)
	Verify(ctx context.Context, username, password string) (*model.User, bool, error)
}

type credentialService struct {
	userRepo repository.UserRepository
}

// NewCredentialService creates a new credential service.
func NewCredentialService(userRepo repository.UserRepository) CredentialService {
	return &credentialService{userRepo: userRepo}
}

// Register creates a user with a hashed password.
func (s *credentialService) Register(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", apperrors.ErrValidation)
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", apperrors.ErrValidation, maxPasswordBytes)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateUsername
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Another request may have taken the name between the lookup and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Verify checks password against the stored hash. ok is false on a mismatch.
func (s *credentialService) Verify(ctx context.Context, username, password string) (*model.User, bool, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, false, nil
	}
	return user, true, nil
}
