package usecase

import (
	"context"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockMovieRepo struct{ mock.Mock }

func (m *mockMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *mockMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	args := m.Called(ctx, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	args := m.Called(ctx, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id int64) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

type mocks struct {
	user   *mockUserRepo
	movie  *mockMovieRepo
	review *mockReviewRepo
}

func newMocks() (*mocks, *repository.Repository) {
	m := &mocks{
		user:   &mockUserRepo{},
		movie:  &mockMovieRepo{},
		review: &mockReviewRepo{},
	}
	return m, &repository.Repository{User: m.user, Movie: m.movie, Review: m.review}
}
