package request

import (
	"net/http"

	"store-rating/pkg/utils"
)

// ListUsersRequest mirrors the GET /admin/users query params.
type ListUsersRequest struct {
	Name    string
	Email   string
	Address string
	Role    string
	Pagination
}

func ParseListUsersRequest(r *http.Request) *ListUsersRequest {
	q := r.URL.Query()
	return &ListUsersRequest{
		Name:    q.Get("name"),
		Email:   q.Get("email"),
		Address: q.Get("address"),
		Role:    q.Get("role"),
		Pagination: Pagination{
			Page:  utils.ParseInt(q.Get("page"), 1),
			Limit: utils.ParseInt(q.Get("limit"), 10),
		},
	}
}
