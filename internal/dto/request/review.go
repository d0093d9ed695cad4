package request

// Pointers let validation tell a missing field apart from a zero value.
type CreateReviewRequest struct {
	UserID  *int64  `json:"user_id" validate:"required"`
	MovieID *int64  `json:"movie_id" validate:"required"`
	Review  *string `json:"review" validate:"required"`
	Score   *int    `json:"score" validate:"required,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Review *string `json:"review" validate:"required"`
	Score  *int    `json:"score" validate:"required,min=1,max=5"`
}
