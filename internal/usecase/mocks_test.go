package usecase

import (
	"context"
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// fakeTx satisfies database.Tx without a live connection. Repositories
// are mocked in these tests, so the Querier methods are never reached.
type fakeTx struct{}

func (fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (fakeDB) Begin(ctx context.Context) (database.Tx, error) { return fakeTx{}, nil }
func (fakeDB) Ping(ctx context.Context) error                 { return nil }
func (fakeDB) Close()                                         {}

type mockGuestRepo struct {
	mock.Mock
}

func (m *mockGuestRepo) Create(ctx context.Context, guest *entity.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}

func (m *mockGuestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Guest), args.Error(1)
}

func (m *mockGuestRepo) FindByEmail(ctx context.Context, email string) (*entity.Guest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Guest), args.Error(1)
}

func (m *mockGuestRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Guest, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Guest), args.Error(1)
}

func (m *mockGuestRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *mockRoomRepo) FindByRoomNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	args := m.Called(ctx, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *mockRoomRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Room, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Room), args.Error(1)
}

func (m *mockRoomRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRoomRepo) UpdateStatus(ctx context.Context, roomID uuid.UUID, status entity.RoomStatus) error {
	args := m.Called(ctx, roomID, status)
	return args.Error(0)
}

func (m *mockRoomRepo) WithTx(tx database.Querier) repository.RoomRepository {
	return m
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *mockReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepo) FindByCode(ctx context.Context, code string) (*entity.Reservation, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepo) FindByGuestID(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	args := m.Called(ctx, guestID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepo) CountByGuestID(ctx context.Context, guestID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReservationRepo) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Reservation, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepo) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID, excludeID *uuid.UUID) ([]*entity.Reservation, error) {
	args := m.Called(ctx, roomID, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockReservationRepo) Confirm(ctx context.Context, id, staffUserID uuid.UUID) error {
	args := m.Called(ctx, id, staffUserID)
	return args.Error(0)
}

func (m *mockReservationRepo) WithTx(tx database.Querier) repository.ReservationRepository {
	return m
}

type mockBillRepo struct {
	mock.Mock
}

func (m *mockBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *mockBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *mockBillRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *mockBillRepo) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entity.Bill, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *mockBillRepo) SumExtraCharges(ctx context.Context, billID uuid.UUID) (float64, error) {
	args := m.Called(ctx, billID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockBillRepo) UpdateTotals(ctx context.Context, billID uuid.UUID, extraChargesTotal, totalAmount float64) error {
	args := m.Called(ctx, billID, extraChargesTotal, totalAmount)
	return args.Error(0)
}

func (m *mockBillRepo) WithTx(tx database.Querier) repository.BillRepository {
	return m
}

type mockExtraChargeRepo struct {
	mock.Mock
}

func (m *mockExtraChargeRepo) Create(ctx context.Context, charge *entity.ExtraCharge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *mockExtraChargeRepo) FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.ExtraCharge, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ExtraCharge), args.Error(1)
}

func (m *mockExtraChargeRepo) WithTx(tx database.Querier) repository.ExtraChargeRepository {
	return m
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepo) FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.Payment, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepo) SumNonRefundedByBillID(ctx context.Context, billID uuid.UUID) (float64, error) {
	args := m.Called(ctx, billID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus) error {
	args := m.Called(ctx, paymentID, status)
	return args.Error(0)
}

func (m *mockPaymentRepo) WithTx(tx database.Querier) repository.PaymentRepository {
	return m
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *mockNotificationRepo) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Notification, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Notification), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendReservationConfirmed(ctx context.Context, to, code string, checkIn, checkOut time.Time, totalAmount float64) error {
	args := m.Called(ctx, to, code, checkIn, checkOut, totalAmount)
	return args.Error(0)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) NotifyConfirmation(ctx context.Context, reservation *entity.Reservation, bill *entity.Bill, recipient string) (*entity.Notification, error) {
	args := m.Called(ctx, reservation, bill, recipient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}
