package adaptor

import (
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// GetReviews handles GET /reviews?page=&limit=
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.NewPaginatedRequest(query.Get("page"), query.Get("limit"))

	reviews, err := h.service.GetReviews(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// GetReviewByID handles GET /reviews/{id}
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	review, err := h.service.GetReviewByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "get review by ID")
		return
	}

	utils.ResponseSuccess(w, "Review retrieved successfully", review)
}

// UpdateReview handles PUT /reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.UpdateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.service.UpdateReview(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", review)
}

// DeleteReview handles DELETE /reviews/{id}; the body carries the deleted review
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	review, err := h.service.DeleteReview(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", review)
}
