package adaptor_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/internal/usecase"
	"movie-reviews/internal/wire"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type harness struct {
	user   *mockUserService
	movie  *mockMovieService
	review *mockReviewService
	router http.Handler
}

func newHarness(t *testing.T, pinger wire.Pinger) *harness {
	t.Helper()

	h := &harness{
		user:   &mockUserService{},
		movie:  &mockMovieService{},
		review: &mockReviewService{},
	}

	config := &utils.Config{App: utils.AppConfig{Name: "movie-reviews"}}
	service := &usecase.Service{User: h.user, Movie: h.movie, Review: h.review}
	handler := adaptor.NewHandler(service, config, zap.NewNop())
	h.router = wire.NewRouter(handler, pinger, middleware.NewMetrics("test"), config, zap.NewNop())

	return h
}

func (h *harness) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func sampleMovieResponse() response.MovieResponse {
	return response.MovieResponse{
		ID:          3,
		Title:       "Arrival",
		ReleaseDate: "2016-11-11",
		Language:    "English",
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateUser(t *testing.T) {
	h := newHarness(t, stubPinger{})
	h.user.On("CreateUser", mock.Anything, &request.CreateUserRequest{Username: "alice", Password: "pw"}).
		Return(&response.UserResponse{ID: 1, Username: "alice"}, nil)

	w, env := h.do(t, http.MethodPost, "/users", `{"username":"alice","password":"pw"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Status)

	var user map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "password")
}

func TestCreateUser_Validation(t *testing.T) {
	h := newHarness(t, stubPinger{})

	w, env := h.do(t, http.MethodPost, "/users", `{"username":"al","password":"pw"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, env.Status)
	assert.Equal(t, "Minimum length is 3", env.Errors["username"])
	h.user.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestCreateUser_Conflict(t *testing.T) {
	h := newHarness(t, stubPinger{})
	h.user.On("CreateUser", mock.Anything, mock.Anything).Return(nil, usecase.ErrUsernameTaken)

	w, env := h.do(t, http.MethodPost, "/users", `{"username":"alice","password":"pw"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username already taken", env.Message)
}

func TestCreateUser_MalformedBody(t *testing.T) {
	h := newHarness(t, stubPinger{})

	for _, body := range []string{`{"username":`, `["alice"]`} {
		w, env := h.do(t, http.MethodPost, "/users", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Invalid request body", env.Message)
	}
}

func TestGetUserByID(t *testing.T) {
	h := newHarness(t, stubPinger{})
	h.user.On("GetUserByID", mock.Anything, int64(4)).Return(nil, usecase.ErrUserNotFound)

	w, env := h.do(t, http.MethodGet, "/users/4", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", env.Message)
}

func TestGetMovies_PassesPagination(t *testing.T) {
	h := newHarness(t, stubPinger{})
	h.movie.On("GetMovies", mock.Anything, request.PaginatedRequest{Page: 2, PerPage: 5}).
		Return(response.NewPaginatedResponse([]response.MovieResponse{sampleMovieResponse()}, 2, 5, 6), nil)

	w, env := h.do(t, http.MethodGet, "/movies?page=2&limit=5", "")

	require.Equal(t, http.StatusOK, w.Code)

	var page response.PaginatedResponse[response.MovieResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "2016-11-11", page.Data[0].ReleaseDate)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	h.movie.AssertExpectations(t)
}

func TestMovieByID_BadPathID(t *testing.T) {
	h := newHarness(t, stubPinger{})

	for _, path := range []string{"/movies/abc", "/movies/1.5", "/movies/9x"} {
		w, env := h.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "Must be an integer", env.Errors["id"])
	}
	h.movie.AssertNotCalled(t, "GetMovieByID", mock.Anything, mock.Anything)
}

func TestNonPositivePathIDs_AreNotFound(t *testing.T) {
	h := newHarness(t, stubPinger{})
	h.movie.On("GetMovieByID", mock.Anything, int64(0)).Return(nil, usecase.ErrMovieNotFound)
	h.movie.On("UpdateMovie", mock.Anything, int64(0), mock.Anything).Return(nil, usecase.ErrMovieNotFound)
	h.review.On("GetReviewByID", mock.Anything, int64(-2)).Return(nil, usecase.ErrReviewNotFound)
	h.review.On("DeleteReview", mock.Anything, int64(-2)).Return(nil, usecase.ErrReviewNotFound)

	w, env := h.do(t, http.MethodGet, "/movies/0", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Movie not found", env.Message)

	w, _ = h.do(t, http.MethodPut, "/movies/0", `{"title":"Heat","release_date":"1995-12-15","language":"English"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = h.do(t, http.MethodGet, "/reviews/-2", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Review not found", env.Message)

	w, _ = h.do(t, http.MethodDelete, "/reviews/-2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMovie_EmptyLanguage(t *testing.T) {
	h := newHarness(t, stubPinger{})
	movie := sampleMovieResponse()
	movie.Language = ""
	payload := &request.MovieRequest{Title: "Arrival", ReleaseDate: "2016-11-11", Language: ""}
	h.movie.On("CreateMovie", mock.Anything, payload).Return(&movie, nil)
	h.movie.On("UpdateMovie", mock.Anything, int64(3), payload).Return(&movie, nil)

	body := `{"title":"Arrival","release_date":"2016-11-11","language":""}`

	w, env := h.do(t, http.MethodPost, "/movies", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Status)

	w, _ = h.do(t, http.MethodPut, "/movies/3", body)
	require.Equal(t, http.StatusOK, w.Code)
	h.movie.AssertExpectations(t)
}

func TestMovieByID_NotFound(t *testing.T) {
	h := newHarness(t, stubPinger{})
	h.movie.On("GetMovieByID", mock.Anything, int64(9)).Return(nil, usecase.ErrMovieNotFound)

	w, env := h.do(t, http.MethodGet, "/movies/9", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Movie not found", env.Message)
}

func TestUpdateMovie(t *testing.T) {
	h := newHarness(t, stubPinger{})
	movie := sampleMovieResponse()
	h.movie.On("UpdateMovie", mock.Anything, int64(3),
		&request.MovieRequest{Title: "Arrival", ReleaseDate: "2016-11-11", Language: "English"}).
		Return(&movie, nil)

	w, env := h.do(t, http.MethodPut, "/movies/3",
		`{"title":"Arrival","release_date":"2016-11-11","language":"English"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Status)

	w, env = h.do(t, http.MethodPut, "/movies/3",
		`{"title":"Arrival","release_date":"2016-11-11","language":"this language name is too long"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, env.Errors, "language")
}

func TestCreateReview_ScoreOutOfRange(t *testing.T) {
	h := newHarness(t, stubPinger{})

	for _, score := range []string{"0", "6"} {
		w, env := h.do(t, http.MethodPost, "/reviews",
			`{"user_id":1,"movie_id":3,"review":"meh","score":`+score+`}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, score)
		assert.Contains(t, env.Errors, "score")
	}
	h.review.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
}

func TestCreateReview_ZeroIDsReachLookup(t *testing.T) {
	h := newHarness(t, stubPinger{})
	h.review.On("CreateReview", mock.Anything, mock.MatchedBy(func(req *request.CreateReviewRequest) bool {
		return req.UserID != nil && *req.UserID == 0
	})).Return(nil, usecase.ErrUserNotFound)

	w, env := h.do(t, http.MethodPost, "/reviews", `{"user_id":0,"movie_id":3,"review":"ok","score":3}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", env.Message)

	w, env = h.do(t, http.MethodPost, "/reviews", `{"movie_id":3,"review":"ok","score":3}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "This field is required", env.Errors["user_id"])
}

func TestCreateReview_MissingReferences(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{usecase.ErrUserNotFound, "User not found"},
		{usecase.ErrMovieNotFound, "Movie not found"},
	}

	for _, tt := range tests {
		h := newHarness(t, stubPinger{})
		h.review.On("CreateReview", mock.Anything, mock.Anything).Return(nil, tt.err)

		w, env := h.do(t, http.MethodPost, "/reviews", `{"user_id":1,"movie_id":3,"review":"ok","score":3}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, tt.message, env.Message)
	}
}

func TestDeleteReview_ReturnsDeletedReview(t *testing.T) {
	h := newHarness(t, stubPinger{})
	deleted := &response.ReviewResponse{ID: 5, UserID: 1, Movie: sampleMovieResponse(), Review: "Great", Score: 4}
	h.review.On("DeleteReview", mock.Anything, int64(5)).Return(deleted, nil).Once()
	h.review.On("DeleteReview", mock.Anything, int64(5)).Return(nil, usecase.ErrReviewNotFound)

	w, env := h.do(t, http.MethodDelete, "/reviews/5", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got response.ReviewResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "Arrival", got.Movie.Title)

	w, env = h.do(t, http.MethodDelete, "/reviews/5", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Review not found", env.Message)
}

func TestServiceErrors(t *testing.T) {
	h := newHarness(t, stubPinger{})
	h.review.On("GetReviewByID", mock.Anything, int64(1)).
		Return(nil, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	h.review.On("UpdateReview", mock.Anything, int64(2), mock.Anything).
		Return(nil, &usecase.ValidationError{Fields: map[string]string{"score": "Must be between 1 and 5"}})

	w, env := h.do(t, http.MethodGet, "/reviews/1", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")

	w, env = h.do(t, http.MethodPut, "/reviews/2", `{"review":"x","score":3}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Must be between 1 and 5", env.Errors["score"])
}

func TestHealth(t *testing.T) {
	w, _ := newHarness(t, stubPinger{}).do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w, _ = newHarness(t, stubPinger{err: errors.New("down")}).do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestInfoAndFallbacks(t *testing.T) {
	h := newHarness(t, stubPinger{})

	w, _ := h.do(t, http.MethodGet, "/hello", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "movie-reviews")

	w, _ = h.do(t, http.MethodGet, "/about", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, env := h.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", env.Message)

	w, _ = h.do(t, http.MethodDelete, "/movies/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
