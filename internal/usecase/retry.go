package usecase

import (
	"context"
	"errors"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/apperr"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const maxTxAttempts = 3

// isTransientTxError reports whether the store failed in a way that is
// safe to retry: serialization failure or deadlock. Nothing was
// committed, so the whole unit can simply run again.
func isTransientTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// runInTx executes fn inside a transaction, retrying transient store
// failures a bounded number of times. Domain errors abort immediately.
func runInTx(ctx context.Context, db database.PgxIface, log *zap.Logger, fn func(tx database.Tx) error) error {
	var lastErr error

	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		tx, err := db.Begin(ctx)
		if err != nil {
			if !isTransientTxError(err) {
				return err
			}
			lastErr = err
			continue
		}

		err = fn(tx)
		if err == nil {
			if err = tx.Commit(ctx); err == nil {
				return nil
			}
		}

		tx.Rollback(ctx)

		if !isTransientTxError(err) {
			return err
		}

		lastErr = err
		log.Warn("Transient store failure, retrying transaction",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}

	return &apperr.StoreUnavailableError{Attempts: maxTxAttempts, Err: lastErr}
}
