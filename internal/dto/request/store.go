package request

import (
	"net/http"

	"store-rating/pkg/utils"
)

type CreateStoreRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	OwnerID string  `json:"ownerId" validate:"required,uuid"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=400"`
}

// ListStoresRequest mirrors the store listing query params, shared by
// GET /admin/stores and GET /user/stores.
type ListStoresRequest struct {
	Name    string
	Email   string
	Address string
	OwnerID string
	Pagination
}

func ParseListStoresRequest(r *http.Request) *ListStoresRequest {
	q := r.URL.Query()
	return &ListStoresRequest{
		Name:    q.Get("name"),
		Email:   q.Get("email"),
		Address: q.Get("address"),
		OwnerID: q.Get("ownerId"),
		Pagination: Pagination{
			Page:  utils.ParseInt(q.Get("page"), 1),
			Limit: utils.ParseInt(q.Get("limit"), 10),
		},
	}
}
