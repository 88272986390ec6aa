package usecase

import (
	"context"
	"strings"
	"testing"

	"course-platform/internal/dto/request"
	"course-platform/pkg/apperr"

	"github.com/stretchr/testify/require"
)

func TestCreateLecture(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores video under generated name", func(t *testing.T) {
		repo := newTestRepository()
		store := newFakeStorage()
		svc := NewLectureService(repo, store, newTestLogger())

		course := seedCourse(t, repo, "Go Basics")

		lecture, err := svc.CreateLecture(ctx, course.ID, &request.LectureRequest{
			Title:       "Intro",
			Description: "First lecture",
			Position:    1,
			IsActive:    true,
		}, &Upload{Filename: "intro.mp4", Reader: strings.NewReader("video-bytes")}, nil)
		require.NoError(t, err)

		require.NotNil(t, lecture.VideoURL)
		require.True(t, strings.HasPrefix(*lecture.VideoURL, "/videos/"))
		require.True(t, strings.HasSuffix(*lecture.VideoURL, ".mp4"))
		// The stored name is generated, never the client filename
		require.NotContains(t, *lecture.VideoURL, "intro")
		require.Nil(t, lecture.ThumbnailURL)

		stored := strings.TrimPrefix(*lecture.VideoURL, "/videos/")
		require.Equal(t, []byte("video-bytes"), store.files[stored])
	})

	t.Run("missing video is a validation error", func(t *testing.T) {
		repo := newTestRepository()
		svc := NewLectureService(repo, newFakeStorage(), newTestLogger())

		course := seedCourse(t, repo, "Go Basics")

		_, err := svc.CreateLecture(ctx, course.ID, &request.LectureRequest{
			Title:       "Intro",
			Description: "First lecture",
		}, nil, nil)
		require.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("missing course is not found", func(t *testing.T) {
		repo := newTestRepository()
		svc := NewLectureService(repo, newFakeStorage(), newTestLogger())

		_, err := svc.CreateLecture(ctx, 42, &request.LectureRequest{
			Title:       "Intro",
			Description: "First lecture",
		}, &Upload{Filename: "intro.mp4", Reader: strings.NewReader("x")}, nil)
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("failed upload leaves no lecture row", func(t *testing.T) {
		repo := newTestRepository()
		store := newFakeStorage()
		store.err = context.DeadlineExceeded
		svc := NewLectureService(repo, store, newTestLogger())

		course := seedCourse(t, repo, "Go Basics")

		_, err := svc.CreateLecture(ctx, course.ID, &request.LectureRequest{
			Title:       "Intro",
			Description: "First lecture",
		}, &Upload{Filename: "intro.mp4", Reader: strings.NewReader("x")}, nil)
		require.Error(t, err)

		lectures, err := svc.GetLecturesByCourse(ctx, course.ID)
		require.NoError(t, err)
		require.Empty(t, lectures)
	})
}

func TestGetLecture(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	svc := NewLectureService(repo, newFakeStorage(), newTestLogger())

	courseA := seedCourse(t, repo, "Course A")
	courseB := seedCourse(t, repo, "Course B")

	created, err := svc.CreateLecture(ctx, courseA.ID, &request.LectureRequest{
		Title:       "Intro",
		Description: "First lecture",
	}, &Upload{Filename: "intro.mp4", Reader: strings.NewReader("x")}, nil)
	require.NoError(t, err)

	got, err := svc.GetLecture(ctx, courseA.ID, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	// A lecture is only addressable through its own course
	_, err = svc.GetLecture(ctx, courseB.ID, created.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateLecture(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	store := newFakeStorage()
	svc := NewLectureService(repo, store, newTestLogger())

	course := seedCourse(t, repo, "Go Basics")

	created, err := svc.CreateLecture(ctx, course.ID, &request.LectureRequest{
		Title:       "Intro",
		Description: "First lecture",
	}, &Upload{Filename: "intro.mp4", Reader: strings.NewReader("v1")}, nil)
	require.NoError(t, err)

	t.Run("without video keeps the existing URL", func(t *testing.T) {
		updated, err := svc.UpdateLecture(ctx, course.ID, created.ID, &request.LectureRequest{
			Title:       "Intro v2",
			Description: "Revised",
			Position:    2,
			IsActive:    true,
		}, nil, nil)
		require.NoError(t, err)
		require.Equal(t, "Intro v2", updated.Title)
		require.Equal(t, created.VideoURL, updated.VideoURL)
	})

	t.Run("with video replaces the URL", func(t *testing.T) {
		updated, err := svc.UpdateLecture(ctx, course.ID, created.ID, &request.LectureRequest{
			Title:       "Intro v3",
			Description: "Revised again",
		}, &Upload{Filename: "new.mp4", Reader: strings.NewReader("v2")}, nil)
		require.NoError(t, err)
		require.NotEqual(t, created.VideoURL, updated.VideoURL)

		stored := strings.TrimPrefix(*updated.VideoURL, "/videos/")
		require.Equal(t, []byte("v2"), store.files[stored])
	})
}

func TestDeleteLecture(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	svc := NewLectureService(repo, newFakeStorage(), newTestLogger())

	course := seedCourse(t, repo, "Go Basics")

	created, err := svc.CreateLecture(ctx, course.ID, &request.LectureRequest{
		Title:       "Intro",
		Description: "First lecture",
	}, &Upload{Filename: "intro.mp4", Reader: strings.NewReader("x")}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLecture(ctx, course.ID, created.ID))
	require.ErrorIs(t, svc.DeleteLecture(ctx, course.ID, created.ID), apperr.ErrNotFound)
}
