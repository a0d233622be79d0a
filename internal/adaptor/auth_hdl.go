package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/request"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/usecase"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/staff/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.log.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		utils.ResponseUnauthorized(w, "invalid email or password")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// Logout handles POST /api/staff/logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.log.Error("Logout failed", zap.Error(err))
		utils.ResponseInternalError(w, "failed to log out")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
