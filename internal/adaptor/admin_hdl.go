package adaptor

import (
	"encoding/json"
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	authService  usecase.AuthService
	adminService usecase.AdminService
	log          *zap.Logger
}

func NewAdminHandler(authService usecase.AuthService, adminService usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		adminService: adminService,
		log:          log,
	}
}

// CreateUser handles POST /admin/users. Same contract as signup, but
// admin-gated and typically used to provision OWNER/ADMIN accounts.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created by admin", user)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req := request.ParseListUsersRequest(r)

	resp, err := h.adminService.ListUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", resp)
}

// CreateStore handles POST /admin/stores
func (h *AdminHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	store, err := h.adminService.CreateStore(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create store")
		return
	}

	utils.ResponseCreated(w, "Store created", store)
}

// ListStores handles GET /admin/stores
func (h *AdminHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	req := request.ParseListStoresRequest(r)

	resp, err := h.adminService.ListStores(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, "Stores retrieved", resp)
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.adminService.Dashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved", resp)
}
