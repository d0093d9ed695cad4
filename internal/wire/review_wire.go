package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", reviewHandler.CreateReview)
		r.Get("/", reviewHandler.GetReviews)
		r.Get("/{id}", reviewHandler.GetReviewByID)
		r.Put("/{id}", reviewHandler.UpdateReview)
		r.Delete("/{id}", reviewHandler.DeleteReview)
	})
}
