package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

type ReviewResponse struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	Movie     MovieResponse `json:"movie"`
	Review    string        `json:"review"`
	Score     int           `json:"score"`
	CreatedAt time.Time     `json:"created_at"`
}

// ReviewToResponse expects review.Movie to be loaded by the repository.
func ReviewToResponse(review *entity.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		Review:    review.Review,
		Score:     review.Score,
		CreatedAt: review.CreatedAt,
	}
	if review.Movie != nil {
		resp.Movie = MovieToResponse(review.Movie)
	} else {
		resp.Movie = MovieResponse{ID: review.MovieID}
	}
	return resp
}
