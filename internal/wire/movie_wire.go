package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Post("/", movieHandler.CreateMovie)
		r.Get("/", movieHandler.GetMovies)
		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Put("/{id}", movieHandler.UpdateMovie)
	})
}
