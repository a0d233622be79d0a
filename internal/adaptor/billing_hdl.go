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

type BillingHandler struct {
	service usecase.BillingService
	log     *zap.Logger
}

func NewBillingHandler(service usecase.BillingService, log *zap.Logger) *BillingHandler {
	return &BillingHandler{
		service: service,
		log:     log.With(zap.String("handler", "billing")),
	}
}

// GetBill handles GET /api/bills/{id} (protected)
func (h *BillingHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	bill, err := h.service.GetBillByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, "get bill", err)
		return
	}

	utils.ResponseSuccess(w, "success", bill)
}

// AddExtraCharge handles POST /api/bills/{id}/charges (protected)
func (h *BillingHandler) AddExtraCharge(w http.ResponseWriter, r *http.Request) {
	var req request.AddExtraChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bill, err := h.service.AddExtraCharge(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, "add extra charge", err)
		return
	}

	utils.ResponseCreated(w, "success", bill)
}

// RecordPayment handles POST /api/bills/{id}/payments (protected)
func (h *BillingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, "record payment", err)
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// RefundPayment handles PUT /api/payments/{id}/refund (protected)
func (h *BillingHandler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RefundPayment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, "refund payment", err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
