package repository

import (
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Guest        GuestRepository
	Room         RoomRepository
	User         UserRepository
	Session      SessionRepository
	Reservation  ReservationRepository
	Bill         BillRepository
	ExtraCharge  ExtraChargeRepository
	Payment      PaymentRepository
	Notification NotificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Guest:        NewGuestRepository(db, log),
		Room:         NewRoomRepository(db, log),
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Reservation:  NewReservationRepository(db, log),
		Bill:         NewBillRepository(db, log),
		ExtraCharge:  NewExtraChargeRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}
