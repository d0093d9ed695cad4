package response

import (
	"movie-reviews/pkg/utils"
)

// PaginatedResponse is one page of a list endpoint. Data is never null.
type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

func NewPaginatedResponse[T any](data []T, page, perPage int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: utils.CalculateTotalPages(total, perPage),
		},
	}
}

// NewPage maps stored rows to their response shape and wraps them in a page.
func NewPage[E, T any](rows []E, toResponse func(E) T, page, perPage int, total int64) *PaginatedResponse[T] {
	data := make([]T, len(rows))
	for i, row := range rows {
		data[i] = toResponse(row)
	}
	return NewPaginatedResponse(data, page, perPage, total)
}
