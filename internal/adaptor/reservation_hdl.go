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

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, "create reservation", err)
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// GetReservation handles GET /api/reservations/{id}
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.service.GetReservationByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, "get reservation", err)
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ConfirmReservation handles POST /api/reservations/{id}/confirm (protected)
func (h *ReservationHandler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	staffID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bill, err := h.service.ConfirmReservation(r.Context(), chi.URLParam(r, "id"), staffID.String())
	if err != nil {
		writeServiceError(w, h.log, "confirm reservation", err)
		return
	}

	utils.ResponseSuccess(w, "success", bill)
}

// CancelReservation handles PUT /api/reservations/{id}/cancel (protected)
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelReservation(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, "cancel reservation", err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CheckIn handles POST /api/reservations/{id}/check-in (protected)
func (h *ReservationHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CheckIn(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, "check in", err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CheckOut handles POST /api/reservations/{id}/check-out (protected)
func (h *ReservationHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CheckOut(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, "check out", err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
