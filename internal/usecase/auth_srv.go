package usecase

import (
	"context"
	"fmt"
	"time"

	"course-platform/internal/data/repository"
	"course-platform/internal/dto/request"
	"course-platform/internal/dto/response"
	"course-platform/pkg/apperr"
	"course-platform/pkg/token"
	"course-platform/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	ChangePassword(ctx context.Context, userID int64, req *request.ChangePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// 3. Unknown email and wrong password are indistinguishable to the caller
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthorized)
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthorized)
	}

	// 5. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("account is deactivated: %w", apperr.ErrForbidden)
	}

	// 6. Issue token
	ttl := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	signed, err := token.Issue(token.Claims{
		UserID:   user.ID,
		Username: user.Name,
		Email:    user.Email,
		Role:     string(user.Role),
	}, s.config.JWT.Secret, ttl)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return &response.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID int64, req *request.ChangePasswordRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for password change", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user: %w", apperr.ErrNotFound)
	}

	// 3. Current password must match
	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		s.log.Warn("Current password mismatch", zap.Int64("user_id", userID))
		return fmt.Errorf("current password is incorrect: %w", apperr.ErrUnauthorized)
	}

	// 4. Hash and store new password
	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, hashed); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password changed", zap.Int64("user_id", userID))
	return nil
}
