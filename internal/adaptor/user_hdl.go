package adaptor

import (
	"encoding/json"
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	storeService  usecase.StoreService
	ratingService usecase.RatingService
	log           *zap.Logger
}

func NewUserHandler(storeService usecase.StoreService, ratingService usecase.RatingService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		storeService:  storeService,
		ratingService: ratingService,
		log:           log,
	}
}

// BrowseStores handles GET /user/stores
func (h *UserHandler) BrowseStores(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := request.ParseListStoresRequest(r)

	resp, err := h.storeService.Browse(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "browse stores")
		return
	}

	utils.ResponseSuccess(w, "Stores retrieved", resp)
}

// SubmitRating handles POST /user/stores/{storeId}/rating
func (h *UserHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID := chi.URLParam(r, "storeId")

	var req request.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rating, err := h.ratingService.Submit(r.Context(), userID, storeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit rating")
		return
	}

	utils.ResponseSuccess(w, "Rating submitted", rating)
}

// UpdateRating handles PUT /user/stores/{storeId}/rating
func (h *UserHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID := chi.URLParam(r, "storeId")

	var req request.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rating, err := h.ratingService.Update(r.Context(), userID, storeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update rating")
		return
	}

	utils.ResponseSuccess(w, "Rating updated", rating)
}
