package wire

import (
	"course-platform/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireLecture mounts the lecture management endpoints inside the admin
// course group; auth and admin middleware come from the parent router.
func wireLecture(r chi.Router, lectureHandler *adaptor.LectureHandler) {
	r.Route("/{id}/lectures", func(r chi.Router) {
		r.Post("/", lectureHandler.CreateLecture)              // POST .../{id}/lectures
		r.Get("/", lectureHandler.GetAdminLectures)            // GET .../{id}/lectures
		r.Get("/{lectureID}", lectureHandler.GetLecture)       // GET .../{id}/lectures/{lectureID}
		r.Put("/{lectureID}", lectureHandler.UpdateLecture)    // PUT .../{id}/lectures/{lectureID}
		r.Delete("/{lectureID}", lectureHandler.DeleteLecture) // DELETE .../{id}/lectures/{lectureID}
	})
}
