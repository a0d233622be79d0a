package repository

import (
	"context"
	"fmt"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExtraChargeRepository interface {
	Create(ctx context.Context, charge *entity.ExtraCharge) error
	FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.ExtraCharge, error)

	WithTx(tx database.Querier) ExtraChargeRepository
}

type extraChargeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewExtraChargeRepository(db database.Querier, log *zap.Logger) ExtraChargeRepository {
	return &extraChargeRepository{
		db:  db,
		log: log.With(zap.String("repository", "extra_charge")),
	}
}

func (r *extraChargeRepository) WithTx(tx database.Querier) ExtraChargeRepository {
	return &extraChargeRepository{db: tx, log: r.log}
}

func (r *extraChargeRepository) Create(ctx context.Context, charge *entity.ExtraCharge) error {
	query := `
		INSERT INTO extra_charges (id, bill_id, item_name, unit_price, quantity, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		charge.ID,
		charge.BillID,
		charge.ItemName,
		charge.UnitPrice,
		charge.Quantity,
		charge.Subtotal,
		charge.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create extra charge",
			zap.Error(err),
			zap.String("bill_id", charge.BillID.String()),
			zap.String("item_name", charge.ItemName),
		)
		return fmt.Errorf("create extra charge %s: %w", charge.ItemName, err)
	}

	return nil
}

func (r *extraChargeRepository) FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.ExtraCharge, error) {
	query := `
		SELECT id, bill_id, item_name, unit_price, quantity, subtotal, created_at
		FROM extra_charges
		WHERE bill_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, billID)
	if err != nil {
		r.log.Error("Failed to find extra charges by bill ID",
			zap.Error(err),
			zap.String("bill_id", billID.String()),
		)
		return nil, fmt.Errorf("find extra charges by bill ID %s: %w", billID.String(), err)
	}
	defer rows.Close()

	var charges []*entity.ExtraCharge
	for rows.Next() {
		var charge entity.ExtraCharge
		err := rows.Scan(
			&charge.ID,
			&charge.BillID,
			&charge.ItemName,
			&charge.UnitPrice,
			&charge.Quantity,
			&charge.Subtotal,
			&charge.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan extra charge row", zap.Error(err))
			return nil, fmt.Errorf("scan extra charge row: %w", err)
		}
		charges = append(charges, &charge)
	}

	return charges, nil
}
