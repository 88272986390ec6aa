package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"course-platform/internal/data/entity"
	"course-platform/internal/data/repository"
	"course-platform/internal/dto/request"
	"course-platform/internal/dto/response"
	"course-platform/pkg/apperr"
	"course-platform/pkg/utils"

	"github.com/casdoor/oss"
	"go.uber.org/zap"
)

// Upload is a media file received from a multipart form, decoupled from
// net/http so the service can be tested with plain readers.
type Upload struct {
	Filename string
	Reader   io.Reader
}

type LectureService interface {
	CreateLecture(ctx context.Context, courseID int64, req *request.LectureRequest, video, thumbnail *Upload) (*response.LectureResponse, error)
	GetLecturesByCourse(ctx context.Context, courseID int64) ([]response.LectureResponse, error)
	GetLecture(ctx context.Context, courseID, lectureID int64) (*response.LectureResponse, error)
	UpdateLecture(ctx context.Context, courseID, lectureID int64, req *request.LectureRequest, video, thumbnail *Upload) (*response.LectureResponse, error)
	DeleteLecture(ctx context.Context, courseID, lectureID int64) error
}

type lectureService struct {
	repo  *repository.Repository
	store oss.StorageInterface
	log   *zap.Logger
}

func NewLectureService(repo *repository.Repository, store oss.StorageInterface, log *zap.Logger) LectureService {
	return &lectureService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "lecture")),
	}
}

// storeUpload writes the file to the blob store under a generated
// filename and returns the public URL path.
func (s *lectureService) storeUpload(upload *Upload) (string, error) {
	stored := utils.GenerateStoredFilename(upload.Filename)
	if _, err := s.store.Put(stored, upload.Reader); err != nil {
		s.log.Error("Failed to store upload", zap.Error(err), zap.String("filename", stored))
		return "", fmt.Errorf("store file: %w", err)
	}
	return "/videos/" + stored, nil
}

func (s *lectureService) CreateLecture(ctx context.Context, courseID int64, req *request.LectureRequest, video, thumbnail *Upload) (*response.LectureResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create lecture validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}
	if video == nil {
		return nil, fmt.Errorf("%w: video file is required", apperr.ErrValidation)
	}

	// 2. Course must exist
	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		s.log.Error("Failed to get course for lecture", zap.Error(err), zap.Int64("course_id", courseID))
		return nil, fmt.Errorf("find course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("course: %w", apperr.ErrNotFound)
	}

	// 3. Store media before the row so a failed upload leaves no record
	videoURL, err := s.storeUpload(video)
	if err != nil {
		return nil, err
	}

	var thumbnailURL *string
	if thumbnail != nil {
		url, err := s.storeUpload(thumbnail)
		if err != nil {
			return nil, err
		}
		thumbnailURL = &url
	}

	lecture := &entity.Lecture{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		Title:        req.Title,
		Description:  req.Description,
		Position:     req.Position,
		ThumbnailURL: thumbnailURL,
		VideoURL:     &videoURL,
		IsActive:     req.IsActive,
		CourseID:     courseID,
	}

	if err := s.repo.Lecture.Create(ctx, lecture); err != nil {
		s.log.Error("Failed to create lecture", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create lecture: %w", err)
	}

	s.log.Info("Lecture created",
		zap.Int64("lecture_id", lecture.ID),
		zap.Int64("course_id", courseID),
		zap.String("title", lecture.Title))

	resp := response.LectureToResponse(lecture)
	return &resp, nil
}

func (s *lectureService) GetLecturesByCourse(ctx context.Context, courseID int64) ([]response.LectureResponse, error) {
	course, err := s.repo.Course.FindByID(ctx, courseID)
	if err != nil {
		s.log.Error("Failed to get course", zap.Error(err), zap.Int64("course_id", courseID))
		return nil, fmt.Errorf("find course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("course: %w", apperr.ErrNotFound)
	}

	lectures, err := s.repo.Lecture.FindByCourseID(ctx, courseID)
	if err != nil {
		s.log.Error("Failed to get lectures", zap.Error(err), zap.Int64("course_id", courseID))
		return nil, fmt.Errorf("get lectures: %w", err)
	}

	lectureResponses := make([]response.LectureResponse, len(lectures))
	for i, lecture := range lectures {
		lectureResponses[i] = response.LectureToResponse(lecture)
	}
	return lectureResponses, nil
}

// findLectureInCourse loads a lecture and checks it belongs to the
// course named in the URL.
func (s *lectureService) findLectureInCourse(ctx context.Context, courseID, lectureID int64) (*entity.Lecture, error) {
	lecture, err := s.repo.Lecture.FindByID(ctx, lectureID)
	if err != nil {
		s.log.Error("Failed to get lecture", zap.Error(err), zap.Int64("id", lectureID))
		return nil, fmt.Errorf("find lecture: %w", err)
	}
	if lecture == nil || lecture.CourseID != courseID {
		return nil, fmt.Errorf("lecture: %w", apperr.ErrNotFound)
	}
	return lecture, nil
}

func (s *lectureService) GetLecture(ctx context.Context, courseID, lectureID int64) (*response.LectureResponse, error) {
	lecture, err := s.findLectureInCourse(ctx, courseID, lectureID)
	if err != nil {
		return nil, err
	}

	resp := response.LectureToResponse(lecture)
	return &resp, nil
}

func (s *lectureService) UpdateLecture(ctx context.Context, courseID, lectureID int64, req *request.LectureRequest, video, thumbnail *Upload) (*response.LectureResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update lecture validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Load existing lecture
	lecture, err := s.findLectureInCourse(ctx, courseID, lectureID)
	if err != nil {
		return nil, err
	}

	// 3. Replacement media is optional on update
	if video != nil {
		videoURL, err := s.storeUpload(video)
		if err != nil {
			return nil, err
		}
		lecture.VideoURL = &videoURL
	}
	if thumbnail != nil {
		thumbnailURL, err := s.storeUpload(thumbnail)
		if err != nil {
			return nil, err
		}
		lecture.ThumbnailURL = &thumbnailURL
	}

	lecture.Title = req.Title
	lecture.Description = req.Description
	lecture.Position = req.Position
	lecture.IsActive = req.IsActive

	if err := s.repo.Lecture.Update(ctx, lecture); err != nil {
		s.log.Error("Failed to update lecture", zap.Error(err), zap.Int64("id", lectureID))
		return nil, fmt.Errorf("update lecture: %w", err)
	}

	s.log.Info("Lecture updated", zap.Int64("lecture_id", lecture.ID), zap.String("title", lecture.Title))

	resp := response.LectureToResponse(lecture)
	return &resp, nil
}

func (s *lectureService) DeleteLecture(ctx context.Context, courseID, lectureID int64) error {
	lecture, err := s.findLectureInCourse(ctx, courseID, lectureID)
	if err != nil {
		return err
	}

	if err := s.repo.Lecture.Delete(ctx, lectureID); err != nil {
		s.log.Error("Failed to delete lecture", zap.Error(err), zap.Int64("id", lectureID))
		return fmt.Errorf("delete lecture: %w", err)
	}

	s.log.Info("Lecture deleted", zap.Int64("lecture_id", lectureID), zap.String("title", lecture.Title))
	return nil
}
