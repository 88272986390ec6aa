package wire

import (
	"course-platform/internal/adaptor"
	"course-platform/pkg/middleware"
	"course-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCourse(
	r chi.Router,
	courseHandler *adaptor.CourseHandler,
	lectureHandler *adaptor.LectureHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/v1/admin/courses", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", courseHandler.CreateCourse)       // POST /api/v1/admin/courses
		r.Get("/", courseHandler.GetCourses)          // GET /api/v1/admin/courses
		r.Get("/{id}", courseHandler.GetCourse)       // GET /api/v1/admin/courses/{id}
		r.Put("/{id}", courseHandler.UpdateCourse)    // PUT /api/v1/admin/courses/{id}
		r.Delete("/{id}", courseHandler.DeleteCourse) // DELETE /api/v1/admin/courses/{id}

		// Enrollment management
		r.Get("/{id}/users", courseHandler.GetCourseUsers)       // GET /api/v1/admin/courses/{id}/users
		r.Post("/{id}/assign", courseHandler.AssignCourse)       // POST /api/v1/admin/courses/{id}/assign
		r.Delete("/{id}/unassign", courseHandler.UnassignCourse) // DELETE /api/v1/admin/courses/{id}/unassign?user_id=

		// Lecture management
		wireLecture(r, lectureHandler)
	})

	// ==================== USER ROUTES ====================
	r.Route("/api/v1/courses", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		r.Get("/", courseHandler.GetAvailableCourses)        // GET /api/v1/courses
		r.Get("/enrolled", courseHandler.GetEnrolledCourses) // GET /api/v1/courses/enrolled
		r.Get("/{id}", courseHandler.GetCourseDetails)       // GET /api/v1/courses/{id}
		r.Post("/{id}/enroll", courseHandler.EnrollCourse)   // POST /api/v1/courses/{id}/enroll

		// Enrollment-gated lecture listing
		r.Get("/{id}/lectures", lectureHandler.GetCourseLectures) // GET /api/v1/courses/{id}/lectures
	})
}
