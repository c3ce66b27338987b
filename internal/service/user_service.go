package service

import (
	"context"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"

	"go.uber.org/zap"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	// RegisterUser creates a user unless one with the same email exists, in
	// which case the existing user is returned.
	RegisterUser(ctx context.Context, name, email string) (*domain.User, bool, error)
}

type userService struct {
	users domain.UserRepository
}

// NewUserService creates a new instance of userService
func NewUserService(users domain.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}
	return &dto.UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Points: user.Points,
	}, nil
}

func (s *userService) RegisterUser(ctx context.Context, name, email string) (*domain.User, bool, error) {
	user := domain.NewUser(name, email)
	if err := user.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, false, domain.NewInternalError("Failed to look up user", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, false, domain.NewInternalError("Failed to create user", err)
	}
	logger.Get().Info("Registered user", zap.String("user_id", user.ID), zap.String("email", email))
	return user, true, nil
}
