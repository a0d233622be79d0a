package wire

import (
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/adaptor"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/reservations - Book a room (guest-facing)
	r.Post("/api/reservations", reservationHandler.CreateReservation)

	// GET /api/reservations/{id} - Reservation details with bill and
	// notification history
	r.Get("/api/reservations/{id}", reservationHandler.GetReservation)

	// ==================== PROTECTED ROUTES ====================
	// Lifecycle transitions are staff actions.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/reservations/{id}/confirm - Confirm and generate bill
		r.Post("/api/reservations/{id}/confirm", reservationHandler.ConfirmReservation)

		// PUT /api/reservations/{id}/cancel - Cancel a pending/confirmed reservation
		r.Put("/api/reservations/{id}/cancel", reservationHandler.CancelReservation)

		// POST /api/reservations/{id}/check-in - Guest arrival
		r.Post("/api/reservations/{id}/check-in", reservationHandler.CheckIn)

		// POST /api/reservations/{id}/check-out - Guest departure
		r.Post("/api/reservations/{id}/check-out", reservationHandler.CheckOut)
	})
}
