package repository

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) (*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

// every read returns the review joined with its movie
const reviewColumns = `
	r.id, r.user_id, r.movie_id, r.review, r.score, r.created_at,
	m.id, m.title, m.release_date, m.language, m.created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*entity.Review, error) {
	review := entity.Review{Movie: &entity.Movie{}}
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Review,
		&review.Score,
		&review.CreatedAt,
		&review.Movie.ID,
		&review.Movie.Title,
		&review.Movie.ReleaseDate,
		&review.Movie.Language,
		&review.Movie.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Create inserts review and replaces it with the stored row joined with its
// movie. Missing user or movie rows are reported as ErrForeignKey.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		WITH r AS (
			INSERT INTO user_reviews (user_id, movie_id, review, score)
			VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, movie_id, review, score, created_at
		)
		SELECT ` + reviewColumns + `
		FROM r
		JOIN movies m ON m.id = r.movie_id
	`

	created, err := scanReview(r.db.QueryRow(ctx, query,
		review.UserID,
		review.MovieID,
		review.Review,
		review.Score,
	))
	if err != nil {
		err = classify(err)
		if !isExpected(err) {
			r.log.Error("Failed to create review",
				zap.Error(err),
				zap.Int64("user_id", review.UserID),
				zap.Int64("movie_id", review.MovieID),
			)
		}
		return fmt.Errorf("create review for movie %d by user %d: %w",
			review.MovieID, review.UserID, err)
	}

	*review = *created
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM user_reviews r
		JOIN movies m ON m.id = r.movie_id
		WHERE r.id = $1
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		err = classify(err)
		if !isExpected(err) {
			r.log.Error("Failed to find review by ID",
				zap.Error(err),
				zap.Int64("review_id", id),
			)
		}
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM user_reviews r
		JOIN movies m ON m.id = r.movie_id
		ORDER BY r.created_at ASC, r.id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all reviews",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all reviews limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	reviews := make([]*entity.Review, 0, limit)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM user_reviews`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

// Update overwrites text and score, then reloads review with its movie.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		WITH r AS (
			UPDATE user_reviews
			SET review = $2, score = $3
			WHERE id = $1
			RETURNING id, user_id, movie_id, review, score, created_at
		)
		SELECT ` + reviewColumns + `
		FROM r
		JOIN movies m ON m.id = r.movie_id
	`

	updated, err := scanReview(r.db.QueryRow(ctx, query,
		review.ID,
		review.Review,
		review.Score,
	))
	if err != nil {
		err = classify(err)
		if !isExpected(err) {
			r.log.Error("Failed to update review",
				zap.Error(err),
				zap.Int64("review_id", review.ID),
			)
		}
		return fmt.Errorf("update review %d: %w", review.ID, err)
	}

	*review = *updated
	return nil
}

// Delete removes the review in a single statement and returns the row as it
// was before deletion, joined with its movie.
func (r *reviewRepository) Delete(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		WITH r AS (
			DELETE FROM user_reviews
			WHERE id = $1
			RETURNING id, user_id, movie_id, review, score, created_at
		)
		SELECT ` + reviewColumns + `
		FROM r
		JOIN movies m ON m.id = r.movie_id
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		err = classify(err)
		if !isExpected(err) {
			r.log.Error("Failed to delete review",
				zap.Error(err),
				zap.Int64("review_id", id),
			)
		}
		return nil, fmt.Errorf("delete review %d: %w", id, err)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return review, nil
}
