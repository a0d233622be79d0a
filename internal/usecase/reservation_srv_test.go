package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/request"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type reservationFixture struct {
	guests        *mockGuestRepo
	rooms         *mockRoomRepo
	users         *mockUserRepo
	reservations  *mockReservationRepo
	bills         *mockBillRepo
	notifications *mockNotificationRepo
	dispatcher    *mockDispatcher
	service       ReservationService
}

func newReservationFixture() *reservationFixture {
	f := &reservationFixture{
		guests:        new(mockGuestRepo),
		rooms:         new(mockRoomRepo),
		users:         new(mockUserRepo),
		reservations:  new(mockReservationRepo),
		bills:         new(mockBillRepo),
		notifications: new(mockNotificationRepo),
		dispatcher:    new(mockDispatcher),
	}

	repo := &repository.Repository{
		Guest:        f.guests,
		Room:         f.rooms,
		User:         f.users,
		Reservation:  f.reservations,
		Bill:         f.bills,
		Notification: f.notifications,
	}

	log := zap.NewNop()
	billing := NewBillingService(fakeDB{}, repo, log)
	f.service = NewReservationService(fakeDB{}, repo, billing, f.dispatcher, log)
	return f
}

func TestCreateReservationSuccess(t *testing.T) {
	f := newReservationFixture()
	guestID := uuid.New()
	roomID := uuid.New()

	f.guests.On("FindByID", mock.Anything, guestID).
		Return(&entity.Guest{Base: entity.Base{ID: guestID}, Name: "Alice Perera", Email: "alice@example.com"}, nil)
	f.rooms.On("FindByIDForUpdate", mock.Anything, roomID).
		Return(&entity.Room{Base: entity.Base{ID: roomID}, RoomNumber: "101", PricePerNight: 100}, nil)
	f.reservations.On("FindActiveByRoomID", mock.Anything, roomID, (*uuid.UUID)(nil)).
		Return([]*entity.Reservation{}, nil)
	f.reservations.On("Create", mock.Anything, mock.AnythingOfType("*entity.Reservation")).
		Return(nil)

	resp, err := f.service.CreateReservation(context.Background(), &request.CreateReservationRequest{
		GuestID:  guestID.String(),
		RoomID:   roomID.String(),
		CheckIn:  "2024-07-01",
		CheckOut: "2024-07-04",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pending", string(resp.Status))
	assert.Equal(t, "Alice Perera", resp.GuestName)
	assert.NotEmpty(t, resp.Code)
	f.reservations.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*entity.Reservation"))
}

func TestCreateReservationConflict(t *testing.T) {
	f := newReservationFixture()
	guestID := uuid.New()
	roomID := uuid.New()

	f.guests.On("FindByID", mock.Anything, guestID).
		Return(&entity.Guest{Base: entity.Base{ID: guestID}}, nil)
	f.rooms.On("FindByIDForUpdate", mock.Anything, roomID).
		Return(&entity.Room{Base: entity.Base{ID: roomID}}, nil)
	f.reservations.On("FindActiveByRoomID", mock.Anything, roomID, (*uuid.UUID)(nil)).
		Return([]*entity.Reservation{{
			CheckIn:  day("2024-07-01"),
			CheckOut: day("2024-07-05"),
			Status:   entity.ReservationStatusConfirmed,
		}}, nil)

	_, err := f.service.CreateReservation(context.Background(), &request.CreateReservationRequest{
		GuestID:  guestID.String(),
		RoomID:   roomID.String(),
		CheckIn:  "2024-07-04",
		CheckOut: "2024-07-06",
	})

	var conflictErr *apperr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, roomID, conflictErr.RoomID)
	f.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReservationInvalidDates(t *testing.T) {
	f := newReservationFixture()

	_, err := f.service.CreateReservation(context.Background(), &request.CreateReservationRequest{
		GuestID:  uuid.New().String(),
		RoomID:   uuid.New().String(),
		CheckIn:  "2024-07-05",
		CheckOut: "2024-07-05",
	})

	var validationErr *apperr.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateReservationUnknownGuest(t *testing.T) {
	f := newReservationFixture()
	guestID := uuid.New()

	f.guests.On("FindByID", mock.Anything, guestID).Return(nil, nil)

	_, err := f.service.CreateReservation(context.Background(), &request.CreateReservationRequest{
		GuestID:  guestID.String(),
		RoomID:   uuid.New().String(),
		CheckIn:  "2024-07-01",
		CheckOut: "2024-07-04",
	})

	var validationErr *apperr.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestConfirmReservationGeneratesBill(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()
	staffID := uuid.New()
	guestID := uuid.New()
	roomID := uuid.New()

	reservation := &entity.Reservation{
		Base:     entity.Base{ID: reservationID},
		Code:     "RSV-20240615-090000-1234",
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  day("2024-07-01"),
		CheckOut: day("2024-07-04"),
		Status:   entity.ReservationStatusPending,
	}

	notified := make(chan struct{})

	f.users.On("FindByID", mock.Anything, staffID).
		Return(&entity.User{Base: entity.Base{ID: staffID}, Role: entity.RoleStaff}, nil)
	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(reservation, nil)
	f.rooms.On("FindByID", mock.Anything, roomID).
		Return(&entity.Room{Base: entity.Base{ID: roomID}, PricePerNight: 100}, nil)
	f.reservations.On("Confirm", mock.Anything, reservationID, staffID).
		Return(nil)
	f.bills.On("Create", mock.Anything, mock.AnythingOfType("*entity.Bill")).
		Return(nil)
	f.guests.On("FindByID", mock.Anything, guestID).
		Return(&entity.Guest{Base: entity.Base{ID: guestID}, Email: "alice@example.com"}, nil)
	f.dispatcher.On("NotifyConfirmation", mock.Anything, mock.AnythingOfType("*entity.Reservation"), mock.AnythingOfType("*entity.Bill"), "alice@example.com").
		Run(func(args mock.Arguments) { close(notified) }).
		Return(&entity.Notification{Status: entity.NotificationStatusSent}, nil)

	bill, err := f.service.ConfirmReservation(context.Background(), reservationID.String(), staffID.String())

	assert.NoError(t, err)
	assert.Equal(t, 3, bill.NumberOfNights)
	assert.Equal(t, 300.0, bill.RoomCharge)
	assert.Equal(t, 0.0, bill.ExtraChargesTotal)
	assert.Equal(t, 300.0, bill.TotalAmount)

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation notification was never dispatched")
	}
}

func TestConfirmReservationAlreadyConfirmed(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()
	staffID := uuid.New()

	f.users.On("FindByID", mock.Anything, staffID).
		Return(&entity.User{Base: entity.Base{ID: staffID}}, nil)
	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(&entity.Reservation{
			Base:   entity.Base{ID: reservationID},
			Status: entity.ReservationStatusConfirmed,
		}, nil)

	_, err := f.service.ConfirmReservation(context.Background(), reservationID.String(), staffID.String())

	var invalidStateErr *apperr.InvalidStateError
	assert.ErrorAs(t, err, &invalidStateErr)
	assert.Equal(t, "confirmed", invalidStateErr.Status)
	f.bills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.dispatcher.AssertNotCalled(t, "NotifyConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmReservationNotFound(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()
	staffID := uuid.New()

	f.users.On("FindByID", mock.Anything, staffID).
		Return(&entity.User{Base: entity.Base{ID: staffID}}, nil)
	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(nil, nil)

	_, err := f.service.ConfirmReservation(context.Background(), reservationID.String(), staffID.String())

	var notFoundErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCancelReservation(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()

	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(&entity.Reservation{
			Base:   entity.Base{ID: reservationID},
			Status: entity.ReservationStatusPending,
		}, nil)
	f.reservations.On("UpdateStatus", mock.Anything, reservationID, entity.ReservationStatusCancelled).
		Return(nil)

	err := f.service.CancelReservation(context.Background(), reservationID.String())
	assert.NoError(t, err)
}

func TestCancelCheckedInReservation(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()

	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(&entity.Reservation{
			Base:   entity.Base{ID: reservationID},
			Status: entity.ReservationStatusCheckedIn,
		}, nil)

	err := f.service.CancelReservation(context.Background(), reservationID.String())

	var invalidStateErr *apperr.InvalidStateError
	assert.ErrorAs(t, err, &invalidStateErr)
	f.reservations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInConfirmedReservation(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()
	roomID := uuid.New()

	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(&entity.Reservation{
			Base:   entity.Base{ID: reservationID},
			RoomID: roomID,
			Status: entity.ReservationStatusConfirmed,
		}, nil)
	f.rooms.On("FindByIDForUpdate", mock.Anything, roomID).
		Return(&entity.Room{Base: entity.Base{ID: roomID}}, nil)
	f.reservations.On("UpdateStatus", mock.Anything, reservationID, entity.ReservationStatusCheckedIn).
		Return(nil)
	f.rooms.On("UpdateStatus", mock.Anything, roomID, entity.RoomStatusOccupied).
		Return(nil)

	err := f.service.CheckIn(context.Background(), reservationID.String())

	assert.NoError(t, err)
	f.rooms.AssertCalled(t, "UpdateStatus", mock.Anything, roomID, entity.RoomStatusOccupied)
}

func TestCheckInCancelledReservation(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()

	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(&entity.Reservation{
			Base:   entity.Base{ID: reservationID},
			Status: entity.ReservationStatusCancelled,
		}, nil)

	err := f.service.CheckIn(context.Background(), reservationID.String())

	var invalidStateErr *apperr.InvalidStateError
	assert.ErrorAs(t, err, &invalidStateErr)
	assert.Equal(t, "cancelled", invalidStateErr.Status)
}

func TestCheckInPendingReservation(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()

	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(&entity.Reservation{
			Base:   entity.Base{ID: reservationID},
			Status: entity.ReservationStatusPending,
		}, nil)

	err := f.service.CheckIn(context.Background(), reservationID.String())

	var invalidStateErr *apperr.InvalidStateError
	assert.ErrorAs(t, err, &invalidStateErr)
}

func TestCheckOutReleasesRoom(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()
	roomID := uuid.New()

	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(&entity.Reservation{
			Base:   entity.Base{ID: reservationID},
			RoomID: roomID,
			Status: entity.ReservationStatusCheckedIn,
		}, nil)
	f.rooms.On("FindByIDForUpdate", mock.Anything, roomID).
		Return(&entity.Room{Base: entity.Base{ID: roomID}}, nil)
	f.reservations.On("UpdateStatus", mock.Anything, reservationID, entity.ReservationStatusCheckedOut).
		Return(nil)
	f.rooms.On("UpdateStatus", mock.Anything, roomID, entity.RoomStatusAvailable).
		Return(nil)

	err := f.service.CheckOut(context.Background(), reservationID.String())

	assert.NoError(t, err)
	f.rooms.AssertCalled(t, "UpdateStatus", mock.Anything, roomID, entity.RoomStatusAvailable)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	f := newReservationFixture()
	reservationID := uuid.New()

	f.reservations.On("FindByIDForUpdate", mock.Anything, reservationID).
		Return(&entity.Reservation{
			Base:   entity.Base{ID: reservationID},
			Status: entity.ReservationStatusConfirmed,
		}, nil)

	err := f.service.CheckOut(context.Background(), reservationID.String())

	var invalidStateErr *apperr.InvalidStateError
	assert.ErrorAs(t, err, &invalidStateErr)
}
