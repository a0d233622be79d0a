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

type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// FindByIDForUpdate locks the bill row while its aggregates are
	// recomputed.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entity.Bill, error)
	// SumExtraCharges recomputes the extra-charge aggregate from the
	// stored charge rows. The column on bills is a cache of this sum.
	SumExtraCharges(ctx context.Context, billID uuid.UUID) (float64, error)
	UpdateTotals(ctx context.Context, billID uuid.UUID, extraChargesTotal, totalAmount float64) error

	WithTx(tx database.Querier) BillRepository
}

type billRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBillRepository(db database.Querier, log *zap.Logger) BillRepository {
	return &billRepository{
		db:  db,
		log: log.With(zap.String("repository", "bill")),
	}
}

func (r *billRepository) WithTx(tx database.Querier) BillRepository {
	return &billRepository{db: tx, log: r.log}
}

const billColumns = `id, reservation_id, number_of_nights, room_charge, extra_charges_total, total_amount, created_at`

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var bill entity.Bill
	err := row.Scan(
		&bill.ID,
		&bill.ReservationID,
		&bill.NumberOfNights,
		&bill.RoomCharge,
		&bill.ExtraChargesTotal,
		&bill.TotalAmount,
		&bill.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	query := `
		INSERT INTO bills (id, reservation_id, number_of_nights, room_charge, extra_charges_total, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		bill.ID,
		bill.ReservationID,
		bill.NumberOfNights,
		bill.RoomCharge,
		bill.ExtraChargesTotal,
		bill.TotalAmount,
		bill.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create bill",
			zap.Error(err),
			zap.String("reservation_id", bill.ReservationID.String()),
		)
		return fmt.Errorf("create bill for reservation %s: %w", bill.ReservationID.String(), err)
	}

	return nil
}

func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`

	bill, err := scanBill(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bill by ID",
			zap.Error(err),
			zap.String("bill_id", id.String()),
		)
		return nil, fmt.Errorf("find bill by ID %s: %w", id.String(), err)
	}

	return bill, nil
}

func (r *billRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1 FOR UPDATE`

	bill, err := scanBill(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock bill row",
			zap.Error(err),
			zap.String("bill_id", id.String()),
		)
		return nil, fmt.Errorf("lock bill %s: %w", id.String(), err)
	}

	return bill, nil
}

func (r *billRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE reservation_id = $1`

	bill, err := scanBill(r.db.QueryRow(ctx, query, reservationID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bill by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find bill by reservation ID %s: %w", reservationID.String(), err)
	}

	return bill, nil
}

func (r *billRepository) SumExtraCharges(ctx context.Context, billID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(SUM(subtotal), 0) FROM extra_charges WHERE bill_id = $1`

	var total float64
	err := r.db.QueryRow(ctx, query, billID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum extra charges",
			zap.Error(err),
			zap.String("bill_id", billID.String()),
		)
		return 0, fmt.Errorf("sum extra charges for bill %s: %w", billID.String(), err)
	}

	return total, nil
}

func (r *billRepository) UpdateTotals(ctx context.Context, billID uuid.UUID, extraChargesTotal, totalAmount float64) error {
	query := `
		UPDATE bills
		SET extra_charges_total = $2, total_amount = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, billID, extraChargesTotal, totalAmount)
	if err != nil {
		r.log.Error("Failed to update bill totals",
			zap.Error(err),
			zap.String("bill_id", billID.String()),
		)
		return fmt.Errorf("update bill %s totals: %w", billID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("bill %s not found", billID.String())
	}

	return nil
}
