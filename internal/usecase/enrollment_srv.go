package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-platform/internal/data/entity"
	"course-platform/internal/data/repository"
	"course-platform/internal/dto/response"
	"course-platform/pkg/apperr"
	"course-platform/pkg/mailer"

	"go.uber.org/zap"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, userID, courseID int64) (*response.EnrollmentResponse, error)
	Unenroll(ctx context.Context, userID, courseID int64) error
	EnrolledCourses(ctx context.Context, userID int64) ([]response.EnrollmentResponse, error)
	AvailableCourses(ctx context.Context, userID int64) ([]response.CourseResponse, error)
	UsersForCourse(ctx context.Context, courseID int64) ([]response.UserResponse, error)
	EnsureEnrolledOrAdmin(ctx context.Context, userID int64, role string, courseID int64) error
}

type enrollmentService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewEnrollmentService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) EnrollmentService {
	return &enrollmentService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "enrollment")),
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, userID, courseID int64) (*response.EnrollmentResponse, error) {
	// 1. Target user must exist and must not be an admin
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user for enrollment", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user: %w", apperr.ErrNotFound)
	}
	if user.IsAdmin() {
		return nil, fmt.Errorf("admin accounts cannot be enrolled: %w", apperr.ErrForbidden)
	}

	// 2. Course must exist
	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		s.log.Error("Failed to get course for enrollment", zap.Error(err), zap.Int64("course_id", courseID))
		return nil, fmt.Errorf("find course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("course: %w", apperr.ErrNotFound)
	}

	// 3. Insert enrollment; course name and description are frozen here.
	// Duplicates are caught by the unique constraint, not a prior read.
	enrollment := &entity.Enrollment{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		UserID:            userID,
		CourseID:          courseID,
		CourseName:        course.Name,
		CourseDescription: course.Description,
	}
	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("user already enrolled in course: %w", apperr.ErrConflict)
		}
		s.log.Error("Failed to create enrollment", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("course_id", courseID))
		return nil, fmt.Errorf("create enrollment: %w", err)
	}

	// 4. Notify the user; a failed send never fails the enrollment
	if err := s.mail.Send(user.Email,
		"Course enrollment confirmation",
		fmt.Sprintf("Dear %s,\n\nYou have been enrolled in the course %q.\n", user.Name, course.Name),
	); err != nil {
		s.log.Warn("Failed to send enrollment email", zap.Error(err), zap.String("email", user.Email))
	}

	s.log.Info("User enrolled",
		zap.Int64("user_id", userID),
		zap.Int64("course_id", courseID),
		zap.String("course_name", course.Name))

	resp := response.EnrollmentToResponse(enrollment)
	return &resp, nil
}

func (s *enrollmentService) Unenroll(ctx context.Context, userID, courseID int64) error {
	if err := s.repo.Enrollment.Delete(ctx, userID, courseID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("enrollment: %w", apperr.ErrNotFound)
		}
		s.log.Error("Failed to delete enrollment", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("course_id", courseID))
		return fmt.Errorf("delete enrollment: %w", err)
	}

	s.log.Info("User unenrolled", zap.Int64("user_id", userID), zap.Int64("course_id", courseID))
	return nil
}

func (s *enrollmentService) EnrolledCourses(ctx context.Context, userID int64) ([]response.EnrollmentResponse, error) {
	enrollments, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get enrollments", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get enrollments: %w", err)
	}

	enrollmentResponses := make([]response.EnrollmentResponse, len(enrollments))
	for i, enrollment := range enrollments {
		enrollmentResponses[i] = response.EnrollmentToResponse(enrollment)
	}
	return enrollmentResponses, nil
}

func (s *enrollmentService) AvailableCourses(ctx context.Context, userID int64) ([]response.CourseResponse, error) {
	courses, err := s.repo.Course.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get courses", zap.Error(err))
		return nil, fmt.Errorf("get courses: %w", err)
	}

	enrollments, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get enrollments", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get enrollments: %w", err)
	}

	enrolled := make(map[int64]struct{}, len(enrollments))
	for _, enrollment := range enrollments {
		enrolled[enrollment.CourseID] = struct{}{}
	}

	available := make([]response.CourseResponse, 0, len(courses))
	for _, course := range courses {
		if !course.IsActive {
			continue
		}
		if _, ok := enrolled[course.ID]; ok {
			continue
		}
		available = append(available, response.CourseToResponse(course))
	}
	return available, nil
}

func (s *enrollmentService) UsersForCourse(ctx context.Context, courseID int64) ([]response.UserResponse, error) {
	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		s.log.Error("Failed to get course", zap.Error(err), zap.Int64("course_id", courseID))
		return nil, fmt.Errorf("find course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("course: %w", apperr.ErrNotFound)
	}

	enrollments, err := s.repo.Enrollment.FindByCourseID(ctx, courseID)
	if err != nil {
		s.log.Error("Failed to get course enrollments", zap.Error(err), zap.Int64("course_id", courseID))
		return nil, fmt.Errorf("get enrollments: %w", err)
	}

	users := make([]response.UserResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		user, err := s.repo.User.FindByID(ctx, enrollment.UserID)
		if err != nil {
			s.log.Error("Failed to get enrolled user", zap.Error(err), zap.Int64("user_id", enrollment.UserID))
			return nil, fmt.Errorf("find user: %w", err)
		}
		if user == nil {
			continue
		}
		users = append(users, response.UserToResponse(user))
	}
	return users, nil
}

// EnsureEnrolledOrAdmin gates per-course reads: admins always pass,
// everyone else must hold an enrollment in the course.
func (s *enrollmentService) EnsureEnrolledOrAdmin(ctx context.Context, userID int64, role string, courseID int64) error {
	if entity.EqualRole(role, string(entity.RoleAdmin)) {
		return nil
	}

	enrollment, err := s.repo.Enrollment.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		s.log.Error("Failed to check enrollment", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("course_id", courseID))
		return fmt.Errorf("check enrollment: %w", err)
	}
	if enrollment == nil {
		return fmt.Errorf("not enrolled in course: %w", apperr.ErrForbidden)
	}
	return nil
}
