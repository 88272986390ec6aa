package wire

import (
	"course-platform/internal/adaptor"
	"course-platform/pkg/middleware"
	"course-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		// POST /api/v1/auth/login - exchange credentials for a token
		r.Post("/login", authHandler.Login)

		// POST /api/v1/auth/change-password - authenticated users only
		r.With(middleware.Authenticate(config.JWT, log)).
			Post("/change-password", authHandler.ChangePassword)
	})
}
