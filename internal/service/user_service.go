package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperr "ecomshop/internal/errors"
	"ecomshop/internal/model"
	"ecomshop/internal/repository"
)

const bcryptCost = 10

// UserService handles registration, credential checks and user lookup.
type UserService interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, user *model.User, password string) (*model.User, error)
	ValidatePassword(password, hash string) bool
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UsernameExists reports whether the username is already registered.
func (s *userService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.userRepo.ExistsByUsername(ctx, username)
}

// EmailExists reports whether the email is already registered.
func (s *userService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.userRepo.ExistsByEmail(ctx, email)
}

// Register hashes the plaintext password and persists the user. The caller's
// existence pre-checks can race with a concurrent registration; the unique
// indexes catch the loser, and the duplicate-key error is mapped back to the
// same taken-username/taken-email errors the pre-checks produce.
func (s *userService) Register(ctx context.Context, user *model.User, password string) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.classifyConflict(ctx, user.Username)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// classifyConflict decides which unique index a duplicate-key insert hit.
func (s *userService) classifyConflict(ctx context.Context, username string) error {
	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err == nil && taken {
		return apperr.ErrUsernameTaken
	}
	return apperr.ErrEmailTaken
}

// ValidatePassword verifies a plaintext password against the stored hash.
// It never compares plaintext directly.
func (s *userService) ValidatePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// FindByUsername looks up a user, mapping a missing row to ErrUserNotFound.
func (s *userService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
