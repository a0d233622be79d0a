package wire

import (
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/adaptor"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms - Browse rooms (paginated)
	r.Get("/api/rooms", roomHandler.GetRooms)

	// GET /api/rooms/{id} - Room details
	r.Get("/api/rooms/{id}", roomHandler.GetRoom)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/rooms - Add a room to inventory
		r.Post("/api/rooms", roomHandler.CreateRoom)

		// GET /api/rooms/{id}/reservations - All reservations for a room
		r.Get("/api/rooms/{id}/reservations", roomHandler.GetRoomReservations)
	})
}
