package wire

import (
	"net/http"

	"course-platform/internal/adaptor"
	"course-platform/internal/data/repository"
	"course-platform/internal/usecase"
	"course-platform/pkg/mailer"
	"course-platform/pkg/middleware"
	"course-platform/pkg/utils"

	"github.com/casdoor/oss"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds the service and handler graph and mounts all routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	store oss.StorageInterface,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, mail, store, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireUser(r, handler.User, config, logger)
	wireCourse(r, handler.Course, handler.Lecture, config, logger)

	// Uploaded lecture media is served straight off the blob store folder
	fileServer := http.StripPrefix("/videos/", http.FileServer(http.Dir(config.Storage.Path)))
	r.Get("/videos/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
