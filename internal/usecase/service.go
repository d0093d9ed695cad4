package usecase

import (
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User   UserService
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		User:   NewUserService(repo.User, config.Security, log),
		Movie:  NewMovieService(repo.Movie, log),
		Review: NewReviewService(repo, log),
	}
}
