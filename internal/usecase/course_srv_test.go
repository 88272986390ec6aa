package usecase

import (
	"context"
	"testing"

	"course-platform/internal/dto/request"
	"course-platform/pkg/apperr"

	"github.com/stretchr/testify/require"
)

func TestCourseCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	svc := NewCourseService(repo, newTestLogger())

	t.Run("create defaults to active", func(t *testing.T) {
		created, err := svc.CreateCourse(ctx, &request.CourseRequest{Name: "Go Basics"})
		require.NoError(t, err)
		require.True(t, created.IsActive)

		got, err := svc.GetCourse(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Go Basics", got.Name)
	})

	t.Run("create rejects empty name", func(t *testing.T) {
		_, err := svc.CreateCourse(ctx, &request.CourseRequest{})
		require.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("update and delete", func(t *testing.T) {
		created, err := svc.CreateCourse(ctx, &request.CourseRequest{Name: "Temp"})
		require.NoError(t, err)

		inactive := false
		updated, err := svc.UpdateCourse(ctx, created.ID, &request.CourseRequest{Name: "Renamed", IsActive: &inactive})
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.Name)
		require.False(t, updated.IsActive)

		require.NoError(t, svc.DeleteCourse(ctx, created.ID))
		_, err = svc.GetCourse(ctx, created.ID)
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("missing course is not found", func(t *testing.T) {
		_, err := svc.GetCourse(ctx, 9999)
		require.ErrorIs(t, err, apperr.ErrNotFound)

		_, err = svc.UpdateCourse(ctx, 9999, &request.CourseRequest{Name: "X"})
		require.ErrorIs(t, err, apperr.ErrNotFound)

		require.ErrorIs(t, svc.DeleteCourse(ctx, 9999), apperr.ErrNotFound)
	})
}
