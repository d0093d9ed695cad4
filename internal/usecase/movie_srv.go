package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	log       *zap.Logger
}

func NewMovieService(movieRepo repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		log:       log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	page, limit := req.CurrentPage(), req.Limit()

	movies, err := s.movieRepo.FindAll(ctx, limit, req.Offset())
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("per_page", limit),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.movieRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	return response.NewPage(movies, response.MovieToResponse, page, limit, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	movie := &entity.Movie{
		Title:       req.Title,
		ReleaseDate: releaseDate,
		Language:    req.Language,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// UpdateMovie replaces title, release date and language. Sending the same
// payload twice leaves the movie in the same state.
func (s *movieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err), zap.Int64("movie_id", id))
		return nil, err
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	movie, err := s.findMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.Title = req.Title
	movie.ReleaseDate = releaseDate
	movie.Language = req.Language

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", id),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) findMovie(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	return movie, nil
}

func parseReleaseDate(value string) (time.Time, error) {
	releaseDate, err := time.Parse(response.DateLayout, value)
	if err != nil {
		return time.Time{}, &ValidationError{Fields: map[string]string{
			"release_date": "Must be a date in format " + response.DateLayout,
		}}
	}
	return releaseDate, nil
}
