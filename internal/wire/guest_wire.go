package wire

import (
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/adaptor"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGuest(
	r chi.Router,
	guestHandler *adaptor.GuestHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Guest records are managed at the front desk, so the whole surface
	// sits behind staff auth.
	r.Route("/api/guests", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/guests - Register a guest
		r.Post("/", guestHandler.CreateGuest)

		// GET /api/guests - List guests (paginated)
		r.Get("/", guestHandler.GetGuests)

		// GET /api/guests/{id} - Guest details
		r.Get("/{id}", guestHandler.GetGuest)
	})
}
