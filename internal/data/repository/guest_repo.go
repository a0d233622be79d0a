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

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	FindByEmail(ctx context.Context, email string) (*entity.Guest, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Guest, error)
	Count(ctx context.Context) (int64, error)
}

type guestRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewGuestRepository(db database.Querier, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.Phone,
		guest.Email,
		guest.CreatedAt,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("email", guest.Email),
		)
		return fmt.Errorf("create guest %s: %w", guest.Email, err)
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM guests
		WHERE id = $1
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&guest.ID,
		&guest.Name,
		&guest.Phone,
		&guest.Email,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by ID",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return nil, fmt.Errorf("find guest by ID %s: %w", id.String(), err)
	}

	return &guest, nil
}

func (r *guestRepository) FindByEmail(ctx context.Context, email string) (*entity.Guest, error) {
	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM guests
		WHERE email = $1
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, email).Scan(
		&guest.ID,
		&guest.Name,
		&guest.Phone,
		&guest.Email,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find guest by email %s: %w", email, err)
	}

	return &guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Guest, error) {
	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM guests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list guests", zap.Error(err))
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		var guest entity.Guest
		err := rows.Scan(
			&guest.ID,
			&guest.Name,
			&guest.Phone,
			&guest.Email,
			&guest.CreatedAt,
			&guest.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, &guest)
	}

	return guests, nil
}

func (r *guestRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM guests`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count guests", zap.Error(err))
		return 0, fmt.Errorf("count guests: %w", err)
	}

	return count, nil
}
