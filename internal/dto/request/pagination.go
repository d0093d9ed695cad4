package request

import (
	"movie-reviews/pkg/utils"
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"limit" validate:"min=1,max=100"`
}

// NewPaginatedRequest reads raw page and limit query values. Anything that
// is not a positive integer falls back to the default.
func NewPaginatedRequest(page, limit string) PaginatedRequest {
	return PaginatedRequest{
		Page:    utils.ParseInt(page, utils.DefaultPage),
		PerPage: utils.ParseInt(limit, utils.DefaultPerPage),
	}
}

func (p PaginatedRequest) Offset() int {
	return utils.PageOffset(p.Page, p.PerPage)
}

func (p PaginatedRequest) Limit() int {
	_, perPage := utils.NormalizePage(p.Page, p.PerPage)
	return perPage
}

func (p PaginatedRequest) CurrentPage() int {
	page, _ := utils.NormalizePage(p.Page, p.PerPage)
	return page
}
