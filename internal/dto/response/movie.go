package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

const DateLayout = "2006-01-02"

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate string    `json:"release_date"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		ReleaseDate: movie.ReleaseDate.Format(DateLayout),
		Language:    movie.Language,
		CreatedAt:   movie.CreatedAt,
	}
}
