package wire

import (
	"context"
	"net/http"
	"time"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Pinger is the slice of the database pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Wiring builds services and handlers on top of repo and mounts them on a router.
func Wiring(repo *repository.Repository, db Pinger, config *utils.Config, logger *zap.Logger) *chi.Mux {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	return NewRouter(handler, db, middleware.NewMetrics("movie_reviews"), config, logger)
}

func NewRouter(
	handler *adaptor.Handler,
	db Pinger,
	metrics *middleware.Metrics,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(metrics.Middleware)

	r.Get("/health", healthHandler(db, logger))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/hello", handler.Info.Hello)
	r.Get("/about", handler.Info.About)

	limiter := middleware.NewLimiter(config.RateLimit.RPS, config.RateLimit.Burst)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter, logger))
		if config.HTTP.WriteTimeout > 0 {
			r.Use(chimw.Timeout(config.HTTP.WriteTimeout))
		}

		wireUser(r, handler.User)
		wireMovie(r, handler.Movie)
		wireReview(r, handler.Review)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseMethodNotAllowed(w)
	})

	return r
}

func healthHandler(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.PlainText(w, r, "database unavailable")
			return
		}

		render.PlainText(w, r, "OK")
	}
}
