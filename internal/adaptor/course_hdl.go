package adaptor

import (
	"encoding/json"
	"net/http"

	"course-platform/internal/dto/request"
	"course-platform/internal/usecase"
	"course-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CourseHandler struct {
	courses     usecase.CourseService
	enrollments usecase.EnrollmentService
	log         *zap.Logger
}

func NewCourseHandler(courses usecase.CourseService, enrollments usecase.EnrollmentService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{
		courses:     courses,
		enrollments: enrollments,
		log:         log.With(zap.String("handler", "course")),
	}
}

// courseIDFromURL parses the {id} URL parameter.
func courseIDFromURL(r *http.Request) (int64, error) {
	return utils.ParseID(chi.URLParam(r, "id"))
}

// CreateCourse handles POST /api/v1/admin/courses
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req request.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	course, err := h.courses.CreateCourse(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create course")
		return
	}

	utils.ResponseCreated(w, "Course created successfully", course)
}

// GetCourses handles GET /api/v1/admin/courses
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.GetAllCourses(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get courses")
		return
	}

	utils.ResponseSuccess(w, "Courses retrieved successfully", courses)
}

// GetCourse handles GET /api/v1/admin/courses/{id}
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	course, err := h.courses.GetCourse(r.Context(), courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "get course")
		return
	}

	utils.ResponseSuccess(w, "Course retrieved successfully", course)
}

// UpdateCourse handles PUT /api/v1/admin/courses/{id}
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	var req request.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	course, err := h.courses.UpdateCourse(r.Context(), courseID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update course")
		return
	}

	utils.ResponseSuccess(w, "Course updated successfully", course)
}

// DeleteCourse handles DELETE /api/v1/admin/courses/{id}
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	if err := h.courses.DeleteCourse(r.Context(), courseID); err != nil {
		handleServiceError(w, h.log, err, "delete course")
		return
	}

	utils.ResponseSuccess(w, "Course deleted successfully", nil)
}

// GetCourseUsers handles GET /api/v1/admin/courses/{id}/users
func (h *CourseHandler) GetCourseUsers(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	users, err := h.enrollments.UsersForCourse(r.Context(), courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "get course users")
		return
	}

	utils.ResponseSuccess(w, "Enrolled users retrieved successfully", users)
}

// AssignCourse handles POST /api/v1/admin/courses/{id}/assign
func (h *CourseHandler) AssignCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	var req request.AssignCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	enrollment, err := h.enrollments.Enroll(r.Context(), req.UserID, courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "assign course")
		return
	}

	utils.ResponseCreated(w, "Course assigned successfully", enrollment)
}

// UnassignCourse handles DELETE /api/v1/admin/courses/{id}/unassign?user_id=
func (h *CourseHandler) UnassignCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	userID, err := utils.ParseID(r.URL.Query().Get("user_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	if err := h.enrollments.Unenroll(r.Context(), userID, courseID); err != nil {
		handleServiceError(w, h.log, err, "unassign course")
		return
	}

	utils.ResponseSuccess(w, "Course unassigned successfully", nil)
}

// GetAvailableCourses handles GET /api/v1/courses
func (h *CourseHandler) GetAvailableCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	courses, err := h.enrollments.AvailableCourses(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get available courses")
		return
	}

	utils.ResponseSuccess(w, "Available courses retrieved successfully", courses)
}

// GetEnrolledCourses handles GET /api/v1/courses/enrolled
func (h *CourseHandler) GetEnrolledCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	enrollments, err := h.enrollments.EnrolledCourses(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get enrolled courses")
		return
	}

	utils.ResponseSuccess(w, "Enrolled courses retrieved successfully", enrollments)
}

// GetCourseDetails handles GET /api/v1/courses/{id}; enrollment required
// unless the caller is an admin.
func (h *CourseHandler) GetCourseDetails(w http.ResponseWriter, r *http.Request) {
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
		handleServiceError(w, h.log, err, "get course details")
		return
	}

	course, err := h.courses.GetCourse(r.Context(), courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "get course details")
		return
	}

	utils.ResponseSuccess(w, "Course retrieved successfully", course)
}

// EnrollCourse handles POST /api/v1/courses/{id}/enroll
func (h *CourseHandler) EnrollCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	courseID, err := courseIDFromURL(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	enrollment, err := h.enrollments.Enroll(r.Context(), userID, courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "enroll course")
		return
	}

	utils.ResponseCreated(w, "Enrolled successfully", enrollment)
}
