package adaptor

import (
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Guest       *GuestHandler
	Room        *RoomHandler
	Reservation *ReservationHandler
	Billing     *BillingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Guest:       NewGuestHandler(service.Guest, log),
		Room:        NewRoomHandler(service.Room, service.Reservation, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Billing:     NewBillingHandler(service.Billing, log),
	}
}
