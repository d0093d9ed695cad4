package adaptor

import (
	"errors"
	"net/http"

	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type Handler struct {
	User   *UserHandler
	Movie  *MovieHandler
	Review *ReviewHandler
	Info   *InfoHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		User:   NewUserHandler(service.User, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, log),
		Info:   NewInfoHandler(config.App.Name),
	}
}

// decodeAndValidate reads a JSON body into dst. It writes the 400 or 422
// response itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// pathID parses the {id} URL parameter, answering 400 when it is not an integer
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid id", map[string]string{
			"id": "Must be an integer",
		})
	}
	return id, ok
}

// writeServiceError maps service errors onto HTTP responses
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseUnprocessable(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrUserNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found")

	case errors.Is(err, usecase.ErrMovieNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, usecase.ErrReviewNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Review not found")

	case errors.Is(err, usecase.ErrUsernameTaken):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, "Username already taken")

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
