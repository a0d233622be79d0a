package usecase

import (
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/database"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Guest       GuestService
	Room        RoomService
	Reservation ReservationService
	Billing     BillingService
}

func NewService(db database.PgxIface, repo *repository.Repository, mailer Mailer, config *utils.Config, log *zap.Logger) *Service {
	billing := NewBillingService(db, repo, log)
	dispatcher := NewNotificationDispatcher(mailer, repo.Notification, log)

	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Guest:       NewGuestService(repo.Guest, log),
		Room:        NewRoomService(repo.Room, log),
		Reservation: NewReservationService(db, repo, billing, dispatcher, log),
		Billing:     billing,
	}
}
