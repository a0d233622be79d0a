package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/request"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/usecase"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GuestHandler struct {
	service usecase.GuestService
	log     *zap.Logger
}

func NewGuestHandler(service usecase.GuestService, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		service: service,
		log:     log.With(zap.String("handler", "guest")),
	}
}

// CreateGuest handles POST /api/guests (protected)
func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	guest, err := h.service.CreateGuest(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, "create guest", err)
		return
	}

	utils.ResponseCreated(w, "success", guest)
}

// GetGuest handles GET /api/guests/{id} (protected)
func (h *GuestHandler) GetGuest(w http.ResponseWriter, r *http.Request) {
	guest, err := h.service.GetGuestByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, "get guest", err)
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}

// GetGuests handles GET /api/guests (protected)
func (h *GuestHandler) GetGuests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	guests, err := h.service.GetGuests(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, "list guests", err)
		return
	}

	utils.ResponseSuccess(w, "success", guests)
}
