package usecase

import (
	"context"
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

type BillingService interface {
	// GenerateBillTx creates the bill inside the caller's confirm
	// transaction. The unique constraint on bills.reservation_id turns a
	// second attempt into a DuplicateError.
	GenerateBillTx(ctx context.Context, tx database.Querier, reservation *entity.Reservation, room *entity.Room) (*entity.Bill, error)

	GetBillByID(ctx context.Context, billID string) (*response.BillDetailResponse, error)
	AddExtraCharge(ctx context.Context, billID string, req *request.AddExtraChargeRequest) (*response.BillResponse, error)
	RecordPayment(ctx context.Context, billID string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)
	RefundPayment(ctx context.Context, paymentID string) error
}

type billingService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewBillingService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) BillingService {
	return &billingService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "billing")),
	}
}

func (s *billingService) GenerateBillTx(ctx context.Context, tx database.Querier, reservation *entity.Reservation, room *entity.Room) (*entity.Bill, error) {
	nights := reservation.Nights()
	roomCharge := utils.RoundMoney(float64(nights) * room.PricePerNight)

	bill := &entity.Bill{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReservationID:     reservation.ID,
		NumberOfNights:    nights,
		RoomCharge:        roomCharge,
		ExtraChargesTotal: 0,
		TotalAmount:       roomCharge,
	}

	if err := s.repo.Bill.WithTx(tx).Create(ctx, bill); err != nil {
		if isUniqueViolation(err) {
			return nil, &apperr.DuplicateError{Resource: "bill", ID: reservation.ID.String()}
		}
		return nil, err
	}

	s.log.Info("Bill generated",
		zap.String("bill_id", bill.ID.String()),
		zap.String("reservation_id", reservation.ID.String()),
		zap.Int("nights", nights),
		zap.Float64("room_charge", roomCharge),
	)

	return bill, nil
}

func (s *billingService) AddExtraCharge(ctx context.Context, billID string, req *request.AddExtraChargeRequest) (*response.BillResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add extra charge validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(billID)
	if err != nil {
		return nil, apperr.Validationf("invalid bill ID format %s", billID)
	}

	if req.Quantity <= 0 {
		return nil, apperr.Validationf("quantity must be positive, got %d", req.Quantity)
	}
	if req.UnitPrice < 0 {
		return nil, apperr.Validationf("unit price must not be negative, got %.2f", req.UnitPrice)
	}

	// Insert and aggregate recompute are one atomic unit under the bill
	// row lock, so the stored totals always match the charge rows.
	var bill *entity.Bill
	err = runInTx(ctx, s.db, s.log, func(tx database.Tx) error {
		bill, err = s.repo.Bill.WithTx(tx).FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if bill == nil {
			return &apperr.NotFoundError{Resource: "bill", ID: billID}
		}

		reservation, err := s.repo.Reservation.WithTx(tx).FindByID(ctx, bill.ReservationID)
		if err != nil {
			return err
		}
		if reservation == nil {
			return &apperr.NotFoundError{Resource: "reservation", ID: bill.ReservationID.String()}
		}

		if reservation.Status != entity.ReservationStatusConfirmed && reservation.Status != entity.ReservationStatusCheckedIn {
			return &apperr.InvalidStateError{Op: "add extra charge", Status: string(reservation.Status)}
		}

		charge := &entity.ExtraCharge{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			BillID:    id,
			ItemName:  req.ItemName,
			UnitPrice: req.UnitPrice,
			Quantity:  req.Quantity,
			Subtotal:  utils.RoundMoney(req.UnitPrice * float64(req.Quantity)),
		}

		if err := s.repo.ExtraCharge.WithTx(tx).Create(ctx, charge); err != nil {
			return err
		}

		extraTotal, err := s.repo.Bill.WithTx(tx).SumExtraCharges(ctx, id)
		if err != nil {
			return err
		}

		bill.ExtraChargesTotal = utils.RoundMoney(extraTotal)
		bill.TotalAmount = utils.RoundMoney(bill.RoomCharge + extraTotal)

		return s.repo.Bill.WithTx(tx).UpdateTotals(ctx, id, bill.ExtraChargesTotal, bill.TotalAmount)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Extra charge added",
		zap.String("bill_id", billID),
		zap.String("item", req.ItemName),
		zap.Int("quantity", req.Quantity),
		zap.Float64("total_amount", bill.TotalAmount),
	)

	resp := response.BillToResponse(bill)
	return &resp, nil
}

func (s *billingService) RecordPayment(ctx context.Context, billID string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(billID)
	if err != nil {
		return nil, apperr.Validationf("invalid bill ID format %s", billID)
	}

	var payment *entity.Payment
	err = runInTx(ctx, s.db, s.log, func(tx database.Tx) error {
		bill, err := s.repo.Bill.WithTx(tx).FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if bill == nil {
			return &apperr.NotFoundError{Resource: "bill", ID: billID}
		}

		paidSoFar, err := s.repo.Payment.WithTx(tx).SumNonRefundedByBillID(ctx, id)
		if err != nil {
			return err
		}

		status := entity.PaymentStatusPartial
		if utils.RoundMoney(paidSoFar+req.Amount) >= bill.TotalAmount {
			status = entity.PaymentStatusPaid
		}

		now := time.Now()
		payment = &entity.Payment{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			BillID: id,
			Method: req.Method,
			Amount: utils.RoundMoney(req.Amount),
			Status: status,
		}

		return s.repo.Payment.WithTx(tx).Create(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("bill_id", billID),
		zap.String("method", payment.Method),
		zap.Float64("amount", payment.Amount),
		zap.String("status", string(payment.Status)),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *billingService) RefundPayment(ctx context.Context, paymentID string) error {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return apperr.Validationf("invalid payment ID format %s", paymentID)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return &apperr.NotFoundError{Resource: "payment", ID: paymentID}
	}

	if payment.Status == entity.PaymentStatusRefunded {
		return &apperr.InvalidStateError{Op: "refund payment", Status: string(payment.Status)}
	}

	if err := s.repo.Payment.UpdateStatus(ctx, id, entity.PaymentStatusRefunded); err != nil {
		return err
	}

	s.log.Info("Payment refunded",
		zap.String("payment_id", paymentID),
		zap.Float64("amount", payment.Amount),
	)

	return nil
}

func (s *billingService) GetBillByID(ctx context.Context, billID string) (*response.BillDetailResponse, error) {
	id, err := uuid.Parse(billID)
	if err != nil {
		return nil, apperr.Validationf("invalid bill ID format %s", billID)
	}

	bill, err := s.repo.Bill.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, &apperr.NotFoundError{Resource: "bill", ID: billID}
	}

	detail := &response.BillDetailResponse{BillResponse: response.BillToResponse(bill)}

	charges, err := s.repo.ExtraCharge.FindByBillID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, charge := range charges {
		detail.ExtraCharges = append(detail.ExtraCharges, response.ExtraChargeToResponse(charge))
	}

	payments, err := s.repo.Payment.FindByBillID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, payment := range payments {
		detail.Payments = append(detail.Payments, response.PaymentToResponse(payment))
	}

	return detail, nil
}
