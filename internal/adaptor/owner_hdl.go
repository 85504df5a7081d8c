package adaptor

import (
	"net/http"

	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type OwnerHandler struct {
	service usecase.OwnerService
	log     *zap.Logger
}

func NewOwnerHandler(service usecase.OwnerService, log *zap.Logger) *OwnerHandler {
	return &OwnerHandler{
		service: service,
		log:     log,
	}
}

// StoreRatings handles GET /owner/stores/ratings
func (h *OwnerHandler) StoreRatings(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Report(r.Context(), ownerID)
	if err != nil {
		handleServiceError(w, h.log, err, "owner report")
		return
	}

	utils.ResponseSuccess(w, "Store ratings retrieved", resp)
}
