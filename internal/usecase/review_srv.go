package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, id int64) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository // reviews plus user and movie lookups
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func scoreOutOfRange() error {
	return &ValidationError{Fields: map[string]string{
		"score": "Must be between 1 and 5",
	}}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	userID, movieID := *req.UserID, *req.MovieID

	// User is checked before movie, so a request missing both reports the user
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		UserID:  userID,
		MovieID: movieID,
		Review:  *req.Review,
		Score:   *req.Score,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKey):
			// a referenced row vanished between the lookups and the insert
			if err := s.ensureUser(ctx, userID); err != nil {
				return nil, err
			}
			return nil, ErrMovieNotFound
		case errors.Is(err, repository.ErrCheckViolation):
			return nil, scoreOutOfRange()
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", review.UserID),
		zap.Int64("movie_id", review.MovieID),
		zap.Int("score", review.Score),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	page, limit := req.CurrentPage(), req.Limit()

	reviews, err := s.repo.Review.FindAll(ctx, limit, req.Offset())
	if err != nil {
		s.log.Error("Failed to get reviews",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("per_page", limit),
		)
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	total, err := s.repo.Review.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	return response.NewPage(reviews, response.ReviewToResponse, page, limit, total), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update review validation failed", zap.Error(err), zap.Int64("review_id", id))
		return nil, err
	}

	review, err := s.findReview(ctx, id)
	if err != nil {
		return nil, err
	}

	review.Review = *req.Review
	review.Score = *req.Score

	if err := s.repo.Review.Update(ctx, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrReviewNotFound
		case errors.Is(err, repository.ErrCheckViolation):
			return nil, scoreOutOfRange()
		}
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.Int64("review_id", id),
		zap.Int("score", review.Score),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// DeleteReview removes the review and returns its state prior to deletion.
func (s *reviewService) DeleteReview(ctx context.Context, id int64) (*response.ReviewResponse, error) {
	review, err := s.repo.Review.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int64("review_id", id))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) findReview(ctx context.Context, id int64) (*entity.Review, error) {
	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		s.log.Error("Failed to get review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("get review by id: %w", err)
	}
	return review, nil
}

func (s *reviewService) ensureUser(ctx context.Context, id int64) error {
	if _, err := s.repo.User.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.log.Error("Failed to check user", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("check user: %w", err)
	}
	return nil
}

func (s *reviewService) ensureMovie(ctx context.Context, id int64) error {
	if _, err := s.repo.Movie.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		s.log.Error("Failed to check movie", zap.Error(err), zap.Int64("movie_id", id))
		return fmt.Errorf("check movie: %w", err)
	}
	return nil
}
