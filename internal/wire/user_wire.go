package wire

import (
	"course-platform/internal/adaptor"
	"course-platform/pkg/middleware"
	"course-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/v1/admin/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", userHandler.CreateUser)       // POST /api/v1/admin/users
		r.Get("/", userHandler.GetUsers)          // GET /api/v1/admin/users
		r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/v1/admin/users/{id}
	})
}
