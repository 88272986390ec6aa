package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"course-platform/internal/dto/request"
	"course-platform/internal/usecase"
	"course-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxUploadSize caps the in-memory part of multipart parsing; larger
// bodies spill to temp files.
const maxUploadSize = 32 << 20

type LectureHandler struct {
	lectures    usecase.LectureService
	enrollments usecase.EnrollmentService
	log         *zap.Logger
}

func NewLectureHandler(lectures usecase.LectureService, enrollments usecase.EnrollmentService, log *zap.Logger) *LectureHandler {
	return &LectureHandler{
		lectures:    lectures,
		enrollments: enrollments,
		log:         log.With(zap.String("handler", "lecture")),
	}
}

// lectureForm reads the multipart fields and files of a lecture create
// or update request. The returned closer releases the opened files.
func (h *LectureHandler) lectureForm(r *http.Request) (*request.LectureRequest, *usecase.Upload, *usecase.Upload, func(), error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, nil, nil, err
	}

	req := &request.LectureRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if position := r.FormValue("position"); position != "" {
		value, err := strconv.Atoi(position)
		if err != nil {
			return nil, nil, nil, nil, errors.New("invalid position")
		}
		req.Position = value
	}
	if isActive := r.FormValue("is_active"); isActive != "" {
		value, err := strconv.ParseBool(isActive)
		if err != nil {
			return nil, nil, nil, nil, errors.New("invalid is_active")
		}
		req.IsActive = value
	}

	var closers []func()
	closeAll := func() {
		for _, closeFile := range closers {
			closeFile()
		}
	}

	var video, thumbnail *usecase.Upload
	if file, header, err := r.FormFile("video"); err == nil {
		video = &usecase.Upload{Filename: header.Filename, Reader: file}
		closers = append(closers, func() { file.Close() })
	}
	if file, header, err := r.FormFile("thumbnail"); err == nil {
		thumbnail = &usecase.Upload{Filename: header.Filename, Reader: file}
		closers = append(closers, func() { file.Close() })
	}

	return req, video, thumbnail, closeAll, nil
}

// CreateLecture handles POST /api/v1/admin/courses/{id}/lectures
func (h *LectureHandler) CreateLecture(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	req, video, thumbnail, closeFiles, err := h.lectureForm(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form: "+err.Error(), nil)
		return
	}
	defer closeFiles()

	lecture, err := h.lectures.CreateLecture(r.Context(), courseID, req, video, thumbnail)
	if err != nil {
		handleServiceError(w, h.log, err, "create lecture")
		return
	}

	utils.ResponseCreated(w, "Lecture created successfully", lecture)
}

// GetAdminLectures handles GET /api/v1/admin/courses/{id}/lectures
func (h *LectureHandler) GetAdminLectures(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	lectures, err := h.lectures.GetLecturesByCourse(r.Context(), courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "get lectures")
		return
	}

	utils.ResponseSuccess(w, "Lectures retrieved successfully", lectures)
}

// GetLecture handles GET /api/v1/admin/courses/{id}/lectures/{lectureID}
func (h *LectureHandler) GetLecture(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}
	lectureID, err := utils.ParseID(chi.URLParam(r, "lectureID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid lecture ID", nil)
		return
	}

	lecture, err := h.lectures.GetLecture(r.Context(), courseID, lectureID)
	if err != nil {
		handleServiceError(w, h.log, err, "get lecture")
		return
	}

	utils.ResponseSuccess(w, "Lecture retrieved successfully", lecture)
}

// UpdateLecture handles PUT /api/v1/admin/courses/{id}/lectures/{lectureID}
func (h *LectureHandler) UpdateLecture(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}
	lectureID, err := utils.ParseID(chi.URLParam(r, "lectureID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid lecture ID", nil)
		return
	}

	req, video, thumbnail, closeFiles, err := h.lectureForm(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form: "+err.Error(), nil)
		return
	}
	defer closeFiles()

	lecture, err := h.lectures.UpdateLecture(r.Context(), courseID, lectureID, req, video, thumbnail)
	if err != nil {
		handleServiceError(w, h.log, err, "update lecture")
		return
	}

	utils.ResponseSuccess(w, "Lecture updated successfully", lecture)
}

// DeleteLecture handles DELETE /api/v1/admin/courses/{id}/lectures/{lectureID}
func (h *LectureHandler) DeleteLecture(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}
	lectureID, err := utils.ParseID(chi.URLParam(r, "lectureID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid lecture ID", nil)
		return
	}

	if err := h.lectures.DeleteLecture(r.Context(), courseID, lectureID); err != nil {
		handleServiceError(w, h.log, err, "delete lecture")
		return
	}

	utils.ResponseSuccess(w, "Lecture deleted successfully", nil)
}

// GetCourseLectures handles GET /api/v1/courses/{id}/lectures; enrollment
// required unless the caller is an admin.
func (h *LectureHandler) GetCourseLectures(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	if err := h.enrollments.EnsureEnrolledOrAdmin(r.Context(), userID, role, courseID); err != nil {
		handleServiceError(w, h.log, err, "get course lectures")
		return
	}

	lectures, err := h.lectures.GetLecturesByCourse(r.Context(), courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "get course lectures")
		return
	}

	utils.ResponseSuccess(w, "Lectures retrieved successfully", lectures)
}
