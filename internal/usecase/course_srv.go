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
	"course-platform/pkg/utils"

	"go.uber.org/zap"
)

type CourseService interface {
	CreateCourse(ctx context.Context, req *request.CourseRequest) (*response.CourseResponse, error)
	GetAllCourses(ctx context.Context) ([]response.CourseResponse, error)
	GetCourse(ctx context.Context, courseID int64) (*response.CourseResponse, error)
	UpdateCourse(ctx context.Context, courseID int64, req *request.CourseRequest) (*response.CourseResponse, error)
	DeleteCourse(ctx context.Context, courseID int64) error
}

type courseService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCourseService(repo *repository.Repository, log *zap.Logger) CourseService {
	return &courseService{
		repo: repo,
		log:  log.With(zap.String("service", "course")),
	}
}

func (s *courseService) CreateCourse(ctx context.Context, req *request.CourseRequest) (*response.CourseResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create course validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. New courses are active unless the request says otherwise
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	course := &entity.Course{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		IsActive:     isActive,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.log.Error("Failed to create course", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.log.Info("Course created", zap.Int64("course_id", course.ID), zap.String("name", course.Name))

	resp := response.CourseToResponse(course)
	return &resp, nil
}

func (s *courseService) GetAllCourses(ctx context.Context) ([]response.CourseResponse, error) {
	courses, err := s.repo.Course.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all courses", zap.Error(err))
		return nil, fmt.Errorf("get courses: %w", err)
	}

	courseResponses := make([]response.CourseResponse, len(courses))
	for i, course := range courses {
		courseResponses[i] = response.CourseToResponse(course)
	}
	return courseResponses, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID int64) (*response.CourseResponse, error) {
	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		s.log.Error("Failed to get course", zap.Error(err), zap.Int64("id", courseID))
		return nil, fmt.Errorf("find course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("course: %w", apperr.ErrNotFound)
	}

	resp := response.CourseToResponse(course)
	return &resp, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, courseID int64, req *request.CourseRequest) (*response.CourseResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update course validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Load existing course
	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		s.log.Error("Failed to get course for update", zap.Error(err), zap.Int64("id", courseID))
		return nil, fmt.Errorf("find course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("course: %w", apperr.ErrNotFound)
	}

	// 3. Apply changes. Existing enrollments keep the name they were
	// created with; only the catalog row changes.
	course.Name = req.Name
	course.Description = req.Description
	if req.ThumbnailURL != nil {
		course.ThumbnailURL = req.ThumbnailURL
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.log.Error("Failed to update course", zap.Error(err), zap.Int64("id", courseID))
		return nil, fmt.Errorf("update course: %w", err)
	}

	s.log.Info("Course updated", zap.Int64("course_id", course.ID), zap.String("name", course.Name))

	resp := response.CourseToResponse(course)
	return &resp, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, courseID int64) error {
	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		s.log.Error("Failed to get course for delete", zap.Error(err), zap.Int64("id", courseID))
		return fmt.Errorf("find course: %w", err)
	}
	if course == nil {
		return fmt.Errorf("course: %w", apperr.ErrNotFound)
	}

	if err := s.repo.Course.Delete(ctx, courseID); err != nil {
		s.log.Error("Failed to delete course", zap.Error(err), zap.Int64("id", courseID))
		return fmt.Errorf("delete course: %w", err)
	}

	s.log.Info("Course deleted", zap.Int64("course_id", courseID), zap.String("name", course.Name))
	return nil
}
