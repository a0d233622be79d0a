package repository

import (
	"context"
	"fmt"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.Payment, error)
	// SumNonRefundedByBillID is the amount paid so far against a bill.
	SumNonRefundedByBillID(ctx context.Context, billID uuid.UUID) (float64, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus) error

	WithTx(tx database.Querier) PaymentRepository
}

type paymentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPaymentRepository(db database.Querier, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) WithTx(tx database.Querier) PaymentRepository {
	return &paymentRepository{db: tx, log: r.log}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, bill_id, method, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BillID,
		payment.Method,
		payment.Amount,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("bill_id", payment.BillID.String()),
		)
		return fmt.Errorf("create payment for bill %s: %w", payment.BillID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, bill_id, method, amount, status, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.BillID,
		&payment.Method,
		&payment.Amount,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, bill_id, method, amount, status, created_at, updated_at
		FROM payments
		WHERE bill_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, billID)
	if err != nil {
		r.log.Error("Failed to find payments by bill ID",
			zap.Error(err),
			zap.String("bill_id", billID.String()),
		)
		return nil, fmt.Errorf("find payments by bill ID %s: %w", billID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.BillID,
			&payment.Method,
			&payment.Amount,
			&payment.Status,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}

func (r *paymentRepository) SumNonRefundedByBillID(ctx context.Context, billID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE bill_id = $1 AND status <> 'refunded'
	`

	var total float64
	err := r.db.QueryRow(ctx, query, billID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum payments",
			zap.Error(err),
			zap.String("bill_id", billID.String()),
		)
		return 0, fmt.Errorf("sum payments for bill %s: %w", billID.String(), err)
	}

	return total, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, paymentID, status)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment %s status to %s: %w", paymentID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", paymentID.String())
	}

	return nil
}
