package request

import (
	"store-rating/pkg/utils"
)

// Pagination carries the page/limit query params. Defaults are applied
// at parse time (page 1, limit 10); PerPage caps the page size.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p Pagination) Offset() int {
	return utils.CalculateOffset(p.Page, p.PerPage())
}

func (p Pagination) PerPage() int {
	if p.Limit < 1 {
		return 10
	}
	if p.Limit > 100 {
		return 100
	}
	return p.Limit
}
