package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/request"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/response"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/apperr"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/database"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	// Guest-facing
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationDetailResponse, error)
	GetRoomReservations(ctx context.Context, roomID string) ([]response.ReservationResponse, error)

	// Staff lifecycle operations
	ConfirmReservation(ctx context.Context, reservationID, staffUserID string) (*response.BillResponse, error)
	CancelReservation(ctx context.Context, reservationID string) error
	CheckIn(ctx context.Context, reservationID string) error
	CheckOut(ctx context.Context, reservationID string) error
}

type reservationService struct {
	db         database.PgxIface
	repo       *repository.Repository
	billing    BillingService
	dispatcher NotificationDispatcher
	log        *zap.Logger
}

func NewReservationService(
	db database.PgxIface,
	repo *repository.Repository,
	billing BillingService,
	dispatcher NotificationDispatcher,
	log *zap.Logger,
) ReservationService {
	return &reservationService{
		db:         db,
		repo:       repo,
		billing:    billing,
		dispatcher: dispatcher,
		log:        log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		return nil, apperr.Validationf("invalid guest ID format %s", req.GuestID)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperr.Validationf("invalid room ID format %s", req.RoomID)
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, apperr.Validationf("invalid check-in date %s", req.CheckIn)
	}

	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, apperr.Validationf("invalid check-out date %s", req.CheckOut)
	}

	if !checkOut.After(checkIn) {
		return nil, apperr.Validationf("check-out %s must be after check-in %s", req.CheckOut, req.CheckIn)
	}

	guest, err := s.repo.Guest.FindByID(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("look up guest: %w", err)
	}
	if guest == nil {
		return nil, apperr.Validationf("guest %s does not exist", req.GuestID)
	}

	// Availability check and insert run as one atomic unit with the
	// room row locked; two concurrent creates for the same room cannot
	// both observe it as available.
	var reservation *entity.Reservation
	err = runInTx(ctx, s.db, s.log, func(tx database.Tx) error {
		room, err := s.repo.Room.WithTx(tx).FindByIDForUpdate(ctx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return apperr.Validationf("room %s does not exist", req.RoomID)
		}

		checker := NewAvailabilityChecker(s.repo.Reservation.WithTx(tx))
		available, err := checker.IsAvailable(ctx, roomID, checkIn, checkOut, nil)
		if err != nil {
			return err
		}
		if !available {
			return &apperr.ConflictError{RoomID: roomID, CheckIn: checkIn, CheckOut: checkOut}
		}

		now := time.Now()
		reservation = &entity.Reservation{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Code:     utils.GenerateReservationCode(),
			GuestID:  guestID,
			RoomID:   roomID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Status:   entity.ReservationStatusPending,
		}

		return s.repo.Reservation.WithTx(tx).Create(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
		zap.String("room_id", req.RoomID),
		zap.String("guest_id", req.GuestID),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
	)

	resp := response.ReservationToResponse(reservation)
	resp.GuestName = guest.Name
	return &resp, nil
}

func (s *reservationService) ConfirmReservation(ctx context.Context, reservationID, staffUserID string) (*response.BillResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperr.Validationf("invalid reservation ID format %s", reservationID)
	}

	staffID, err := uuid.Parse(staffUserID)
	if err != nil {
		return nil, apperr.Validationf("invalid staff user ID format %s", staffUserID)
	}

	staff, err := s.repo.User.FindByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("look up staff user: %w", err)
	}
	if staff == nil {
		return nil, apperr.Validationf("staff user %s does not exist", staffUserID)
	}

	// Status update and bill creation are one atomic unit. The
	// reservation row lock serializes concurrent confirm attempts:
	// the second sees the updated status and fails.
	var reservation *entity.Reservation
	var bill *entity.Bill
	err = runInTx(ctx, s.db, s.log, func(tx database.Tx) error {
		reservation, err = s.repo.Reservation.WithTx(tx).FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if reservation == nil {
			return &apperr.NotFoundError{Resource: "reservation", ID: reservationID}
		}

		if reservation.Status != entity.ReservationStatusPending {
			return &apperr.InvalidStateError{Op: "confirm reservation", Status: string(reservation.Status)}
		}

		// Room price is read here, not at booking time: price changes
		// between booking and confirmation are honored.
		room, err := s.repo.Room.WithTx(tx).FindByID(ctx, reservation.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return &apperr.NotFoundError{Resource: "room", ID: reservation.RoomID.String()}
		}

		if err := s.repo.Reservation.WithTx(tx).Confirm(ctx, id, staffID); err != nil {
			return err
		}

		bill, err = s.billing.GenerateBillTx(ctx, tx, reservation, room)
		if err != nil {
			return err
		}

		reservation.Status = entity.ReservationStatusConfirmed
		reservation.UserID = &staffID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Reservation confirmed",
		zap.String("reservation_id", reservationID),
		zap.String("staff_user_id", staffUserID),
		zap.String("bill_id", bill.ID.String()),
		zap.Float64("total_amount", bill.TotalAmount),
	)

	// Notification is outside the transaction boundary; its failure
	// never rolls back the confirmation.
	go s.dispatchConfirmation(*reservation, *bill)

	resp := response.BillToResponse(bill)
	return &resp, nil
}

// dispatchConfirmation runs after the confirm transaction commits. If
// the guest's email cannot be resolved the attempt is still recorded,
// as failed.
func (s *reservationService) dispatchConfirmation(reservation entity.Reservation, bill entity.Bill) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var recipient string
	guest, err := s.repo.Guest.FindByID(ctx, reservation.GuestID)
	if err != nil {
		s.log.Warn("Failed to look up guest email for notification",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
	} else if guest != nil {
		recipient = guest.Email
	}

	if _, err := s.dispatcher.NotifyConfirmation(ctx, &reservation, &bill, recipient); err != nil {
		s.log.Error("Failed to record confirmation notification",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
	}
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return apperr.Validationf("invalid reservation ID format %s", reservationID)
	}

	err = runInTx(ctx, s.db, s.log, func(tx database.Tx) error {
		reservation, err := s.repo.Reservation.WithTx(tx).FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if reservation == nil {
			return &apperr.NotFoundError{Resource: "reservation", ID: reservationID}
		}

		if !reservation.Status.CanTransitionTo(entity.ReservationStatusCancelled) {
			return &apperr.InvalidStateError{Op: "cancel reservation", Status: string(reservation.Status)}
		}

		return s.repo.Reservation.WithTx(tx).UpdateStatus(ctx, id, entity.ReservationStatusCancelled)
	})
	if err != nil {
		return err
	}

	s.log.Info("Reservation cancelled", zap.String("reservation_id", reservationID))
	return nil
}

func (s *reservationService) CheckIn(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return apperr.Validationf("invalid reservation ID format %s", reservationID)
	}

	err = runInTx(ctx, s.db, s.log, func(tx database.Tx) error {
		reservation, err := s.repo.Reservation.WithTx(tx).FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if reservation == nil {
			return &apperr.NotFoundError{Resource: "reservation", ID: reservationID}
		}

		if !reservation.Status.CanTransitionTo(entity.ReservationStatusCheckedIn) {
			return &apperr.InvalidStateError{Op: "check in", Status: string(reservation.Status)}
		}

		// The cached room occupancy moves under the same room lock that
		// guards reservation transitions.
		if _, err := s.repo.Room.WithTx(tx).FindByIDForUpdate(ctx, reservation.RoomID); err != nil {
			return err
		}

		if err := s.repo.Reservation.WithTx(tx).UpdateStatus(ctx, id, entity.ReservationStatusCheckedIn); err != nil {
			return err
		}

		return s.repo.Room.WithTx(tx).UpdateStatus(ctx, reservation.RoomID, entity.RoomStatusOccupied)
	})
	if err != nil {
		return err
	}

	s.log.Info("Guest checked in", zap.String("reservation_id", reservationID))
	return nil
}

func (s *reservationService) CheckOut(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return apperr.Validationf("invalid reservation ID format %s", reservationID)
	}

	err = runInTx(ctx, s.db, s.log, func(tx database.Tx) error {
		reservation, err := s.repo.Reservation.WithTx(tx).FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if reservation == nil {
			return &apperr.NotFoundError{Resource: "reservation", ID: reservationID}
		}

		if !reservation.Status.CanTransitionTo(entity.ReservationStatusCheckedOut) {
			return &apperr.InvalidStateError{Op: "check out", Status: string(reservation.Status)}
		}

		if _, err := s.repo.Room.WithTx(tx).FindByIDForUpdate(ctx, reservation.RoomID); err != nil {
			return err
		}

		if err := s.repo.Reservation.WithTx(tx).UpdateStatus(ctx, id, entity.ReservationStatusCheckedOut); err != nil {
			return err
		}

		return s.repo.Room.WithTx(tx).UpdateStatus(ctx, reservation.RoomID, entity.RoomStatusAvailable)
	})
	if err != nil {
		return err
	}

	s.log.Info("Guest checked out", zap.String("reservation_id", reservationID))
	return nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationDetailResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperr.Validationf("invalid reservation ID format %s", reservationID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, &apperr.NotFoundError{Resource: "reservation", ID: reservationID}
	}

	resp := response.ReservationToResponse(reservation)

	guest, _ := s.repo.Guest.FindByID(ctx, reservation.GuestID)
	if guest != nil {
		resp.GuestName = guest.Name
	}

	room, _ := s.repo.Room.FindByID(ctx, reservation.RoomID)
	if room != nil {
		resp.RoomNumber = room.RoomNumber
	}

	detail := &response.ReservationDetailResponse{ReservationResponse: resp}

	bill, _ := s.repo.Bill.FindByReservationID(ctx, reservation.ID)
	if bill != nil {
		billResp := response.BillToResponse(bill)
		detail.Bill = &billResp
	}

	notifications, _ := s.repo.Notification.FindByReservationID(ctx, reservation.ID)
	for _, notification := range notifications {
		detail.Notifications = append(detail.Notifications, response.NotificationToResponse(notification))
	}

	return detail, nil
}

func (s *reservationService) GetRoomReservations(ctx context.Context, roomID string) ([]response.ReservationResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperr.Validationf("invalid room ID format %s", roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, &apperr.NotFoundError{Resource: "room", ID: roomID}
	}

	reservations, err := s.repo.Reservation.FindByRoomID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		responses[i] = response.ReservationToResponse(reservation)
		responses[i].RoomNumber = room.RoomNumber
	}

	return responses, nil
}
