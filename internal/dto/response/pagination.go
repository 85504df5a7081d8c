package response

import (
	"store-rating/pkg/utils"
)

// ListResponse is the paginated envelope: total row count plus the
// requested page of data.
type ListResponse[T any] struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Data       []T   `json:"data"`
}

func NewListResponse[T any](data []T, page, limit int, total int64) *ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &ListResponse[T]{
		Total:      total,
		TotalPages: utils.CalculateTotalPages(total, limit),
		Page:       page,
		Limit:      limit,
		Data:       data,
	}
}
