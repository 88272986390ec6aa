package usecase

import (
	"context"
	"testing"

	"course-platform/internal/data/entity"
	"course-platform/internal/dto/request"
	"course-platform/pkg/apperr"
	"course-platform/pkg/utils"

	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	config := newTestConfig()

	t.Run("success sends welcome email with credentials", func(t *testing.T) {
		repo := newTestRepository()
		mail := &fakeMailer{}
		svc := NewUserService(repo, config, mail, newTestLogger())

		resp, err := svc.CreateUser(ctx, &request.CreateUserRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", resp.Email)
		require.Equal(t, entity.RoleUser, resp.Role)

		require.Len(t, mail.sent, 1)
		require.Equal(t, "alice@example.com", mail.sent[0].To)
		require.Contains(t, mail.sent[0].Body, "secret123")

		// Stored hash must verify, never the raw password
		stored, err := repo.User.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotEqual(t, "secret123", stored.PasswordHash)
		require.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		repo := newTestRepository()
		svc := NewUserService(repo, config, &fakeMailer{}, newTestLogger())

		req := &request.CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
		_, err := svc.CreateUser(ctx, req)
		require.NoError(t, err)

		_, err = svc.CreateUser(ctx, req)
		require.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("email failure does not fail creation", func(t *testing.T) {
		repo := newTestRepository()
		svc := NewUserService(repo, config, &fakeMailer{err: context.DeadlineExceeded}, newTestLogger())

		_, err := svc.CreateUser(ctx, &request.CreateUserRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
	})

	t.Run("admin role is honored", func(t *testing.T) {
		repo := newTestRepository()
		svc := NewUserService(repo, config, &fakeMailer{}, newTestLogger())

		resp, err := svc.CreateUser(ctx, &request.CreateUserRequest{
			Name:     "Root",
			Email:    "root@example.com",
			Role:     "admin",
			Password: "secret123",
		})
		require.NoError(t, err)
		require.Equal(t, entity.RoleAdmin, resp.Role)
	})
}

func TestGetAllUsers(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	svc := NewUserService(repo, newTestConfig(), &fakeMailer{}, newTestLogger())

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.CreateUser(ctx, &request.CreateUserRequest{Name: "U", Email: email, Password: "secret123"})
		require.NoError(t, err)
	}

	page, err := svc.GetAllUsers(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	require.Equal(t, int64(3), page.Pagination.Total)

	page, err = svc.GetAllUsers(ctx, &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	svc := NewUserService(repo, newTestConfig(), &fakeMailer{}, newTestLogger())

	resp, err := svc.CreateUser(ctx, &request.CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, resp.ID))
	require.ErrorIs(t, svc.DeleteUser(ctx, resp.ID), apperr.ErrNotFound)
}

func TestEnsureInitialAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates admin when none exists", func(t *testing.T) {
		repo := newTestRepository()
		config := newTestConfig()
		svc := NewUserService(repo, config, &fakeMailer{}, newTestLogger())

		require.NoError(t, svc.EnsureInitialAdmin(ctx))

		admin, err := repo.User.FindByEmail(ctx, config.Admin.Email)
		require.NoError(t, err)
		require.NotNil(t, admin)
		require.True(t, admin.IsAdmin())
		require.True(t, utils.CheckPasswordHash(config.Admin.Password, admin.PasswordHash))

		// Second call is a no-op
		require.NoError(t, svc.EnsureInitialAdmin(ctx))
		count, err := repo.User.CountAdmins(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})

	t.Run("skips when an admin already exists", func(t *testing.T) {
		repo := newTestRepository()
		config := newTestConfig()
		svc := NewUserService(repo, config, &fakeMailer{}, newTestLogger())

		_, err := svc.CreateUser(ctx, &request.CreateUserRequest{
			Name:     "Root",
			Email:    "root@example.com",
			Role:     "admin",
			Password: "secret123",
		})
		require.NoError(t, err)

		require.NoError(t, svc.EnsureInitialAdmin(ctx))
		admin, err := repo.User.FindByEmail(ctx, config.Admin.Email)
		require.NoError(t, err)
		require.Nil(t, admin)
	})
}
