package wire

import (
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/adaptor"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBilling(
	r chi.Router,
	billingHandler *adaptor.BillingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Billing is staff-only.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/bills/{id} - Bill with charges and payments
		r.Get("/api/bills/{id}", billingHandler.GetBill)

		// POST /api/bills/{id}/charges - Add an extra charge
		r.Post("/api/bills/{id}/charges", billingHandler.AddExtraCharge)

		// POST /api/bills/{id}/payments - Record a payment
		r.Post("/api/bills/{id}/payments", billingHandler.RecordPayment)

		// PUT /api/payments/{id}/refund - Refund a recorded payment
		r.Put("/api/payments/{id}/refund", billingHandler.RefundPayment)
	})
}
