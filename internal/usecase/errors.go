package usecase

import (
	"errors"

	"movie-reviews/pkg/utils"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMovieNotFound  = errors.New("movie not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrUsernameTaken  = errors.New("username already taken")
)

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func validate(data any) error {
	if errs := utils.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
