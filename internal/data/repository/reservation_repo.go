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

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	// FindByIDForUpdate locks the reservation row; concurrent confirm
	// attempts on the same reservation serialize on this lock.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByCode(ctx context.Context, code string) (*entity.Reservation, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*entity.Reservation, error)
	CountByGuestID(ctx context.Context, guestID uuid.UUID) (int64, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Reservation, error)
	// FindActiveByRoomID returns pending and confirmed reservations for
	// the room, optionally excluding one reservation ID. This is the
	// input set for the availability check.
	FindActiveByRoomID(ctx context.Context, roomID uuid.UUID, excludeID *uuid.UUID) ([]*entity.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error
	// Confirm updates status and records the acting staff member in one
	// statement.
	Confirm(ctx context.Context, reservationID, staffUserID uuid.UUID) error

	WithTx(tx database.Querier) ReservationRepository
}

type reservationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReservationRepository(db database.Querier, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) WithTx(tx database.Querier) ReservationRepository {
	return &reservationRepository{db: tx, log: r.log}
}

const reservationColumns = `id, code, guest_id, room_id, user_id, check_in, check_out, status, created_at, updated_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.Code,
		&reservation.GuestID,
		&reservation.RoomID,
		&reservation.UserID,
		&reservation.CheckIn,
		&reservation.CheckOut,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, code, guest_id, room_id, user_id, check_in, check_out, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.Code,
		reservation.GuestID,
		reservation.RoomID,
		reservation.UserID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.Status,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("code", reservation.Code),
			zap.String("room_id", reservation.RoomID.String()),
		)
		return fmt.Errorf("create reservation %s: %w", reservation.Code, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock reservation row",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("lock reservation %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByCode(ctx context.Context, code string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE code = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find reservation by code %s: %w", code, err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByGuestID(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE guest_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, guestID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reservations by guest ID",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return nil, fmt.Errorf("find reservations by guest ID %s: %w", guestID.String(), err)
	}
	defer rows.Close()

	return collectReservations(rows, r.log)
}

func (r *reservationRepository) CountByGuestID(ctx context.Context, guestID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE guest_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, guestID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations by guest ID",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return 0, fmt.Errorf("count reservations by guest ID %s: %w", guestID.String(), err)
	}

	return count, nil
}

func (r *reservationRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE room_id = $1
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find reservations by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find reservations by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	return collectReservations(rows, r.log)
}

func (r *reservationRepository) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID, excludeID *uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE room_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND ($2::uuid IS NULL OR id <> $2)
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query, roomID, excludeID)
	if err != nil {
		r.log.Error("Failed to find active reservations by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find active reservations by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	return collectReservations(rows, r.log)
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, reservationID, status)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", reservationID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservationID.String())
	}

	return nil
}

func (r *reservationRepository) Confirm(ctx context.Context, reservationID, staffUserID uuid.UUID) error {
	query := `
		UPDATE reservations
		SET status = 'confirmed', user_id = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, reservationID, staffUserID)
	if err != nil {
		r.log.Error("Failed to confirm reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.String("staff_user_id", staffUserID.String()),
		)
		return fmt.Errorf("confirm reservation %s: %w", reservationID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservationID.String())
	}

	return nil
}

func collectReservations(rows pgx.Rows, log *zap.Logger) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.Code,
			&reservation.GuestID,
			&reservation.RoomID,
			&reservation.UserID,
			&reservation.CheckIn,
			&reservation.CheckOut,
			&reservation.Status,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, nil
}
