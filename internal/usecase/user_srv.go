package usecase

import (
	"context"
	"fmt"
	"time"

	"course-platform/internal/data/entity"
	"course-platform/internal/data/repository"
	"course-platform/internal/dto/request"
	"course-platform/internal/dto/response"
	"course-platform/pkg/apperr"
	"course-platform/pkg/mailer"
	"course-platform/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeleteUser(ctx context.Context, userID int64) error
	EnsureInitialAdmin(ctx context.Context) error
}

type userService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) UserService {
	return &userService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "user")),
	}
}

func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Check email not taken
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", apperr.ErrConflict)
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleUser
	if entity.EqualRole(req.Role, string(entity.RoleAdmin)) {
		role = entity.RoleAdmin
	}

	// 4. Create user entity
	user := &entity.User{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		PasswordHash: hashed,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 5. Welcome email is best-effort; a failed send never fails the request
	if err := s.mail.Send(user.Email,
		"Welcome to the platform",
		fmt.Sprintf("Dear %s,\n\nYour account has been created.\n\nLogin email: %s\nPassword: %s\n\nPlease change your password after your first login.\n", user.Name, user.Email, req.Password),
	); err != nil {
		s.log.Warn("Failed to send welcome email", zap.Error(err), zap.String("email", user.Email))
	}

	s.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}

	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get all users", zap.Error(err), zap.Int("page", req.Page))
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.Limit(), total), nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user for delete", zap.Error(err), zap.Int64("id", userID))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user: %w", apperr.ErrNotFound)
	}

	if err := s.repo.User.Delete(ctx, userID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.Int64("id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted", zap.Int64("user_id", userID), zap.String("email", user.Email))
	return nil
}

// EnsureInitialAdmin seeds the first admin account at startup when no
// admin exists yet, using the configured bootstrap credentials.
func (s *userService) EnsureInitialAdmin(ctx context.Context) error {
	count, err := s.repo.User.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	if s.config.Admin.Password == "" {
		s.log.Warn("No admin exists and ADMIN_PASSWORD is not set; skipping bootstrap")
		return nil
	}

	hashed, err := utils.HashPassword(s.config.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.User{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		Name:         "Admin",
		Email:        s.config.Admin.Email,
		Role:         entity.RoleAdmin,
		PasswordHash: hashed,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("create initial admin: %w", err)
	}

	s.log.Info("Initial admin user created", zap.String("email", admin.Email))
	return nil
}
