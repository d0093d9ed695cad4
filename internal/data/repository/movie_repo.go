package repository

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, movie *entity.Movie) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, release_date, language)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.ReleaseDate,
		movie.Language,
	).Scan(&movie.ID, &movie.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", classify(err))
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, release_date, language, created_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.ReleaseDate,
		&movie.Language,
		&movie.CreatedAt,
	)
	if err != nil {
		err = classify(err)
		if !isExpected(err) {
			r.log.Error("Failed to find movie by ID",
				zap.Error(err),
				zap.Int64("movie_id", id),
			)
		}
		return nil, fmt.Errorf("failed to find movie %d: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, release_date, language, created_at
		FROM movies
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0, limit)
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.ReleaseDate,
			&movie.Language,
			&movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	return total, nil
}

// Update overwrites the mutable fields of an existing movie.
func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, release_date = $3, language = $4
		WHERE id = $1
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.ID,
		movie.Title,
		movie.ReleaseDate,
		movie.Language,
	).Scan(&movie.CreatedAt)
	if err != nil {
		err = classify(err)
		if !isExpected(err) {
			r.log.Error("Failed to update movie",
				zap.Error(err),
				zap.Int64("movie_id", movie.ID),
			)
		}
		return fmt.Errorf("failed to update movie %d: %w", movie.ID, err)
	}

	return nil
}
