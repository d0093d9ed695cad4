package adaptor_test

import (
	"context"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*response.UserResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*response.UserResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) GetUsers(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*response.PaginatedResponse[response.UserResponse]), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMovieService struct{ mock.Mock }

func (m *mockMovieService) GetMovies(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*response.PaginatedResponse[response.MovieResponse]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*response.MovieResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*response.MovieResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*response.MovieResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReviewService struct{ mock.Mock }

func (m *mockReviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*response.ReviewResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewService) GetReviews(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*response.PaginatedResponse[response.ReviewResponse]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewService) GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*response.ReviewResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*response.ReviewResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, id int64) (*response.ReviewResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*response.ReviewResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
