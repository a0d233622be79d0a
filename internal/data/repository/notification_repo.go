package repository

import (
	"context"
	"fmt"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Notification, error)
}

type notificationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewNotificationRepository(db database.Querier, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "notification")),
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, reservation_id, recipient, status, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		notification.ID,
		notification.ReservationID,
		notification.Recipient,
		notification.Status,
		notification.SentAt,
		notification.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to record notification",
			zap.Error(err),
			zap.String("reservation_id", notification.ReservationID.String()),
		)
		return fmt.Errorf("record notification for reservation %s: %w", notification.ReservationID.String(), err)
	}

	return nil
}

func (r *notificationRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Notification, error) {
	query := `
		SELECT id, reservation_id, recipient, status, sent_at, created_at
		FROM notifications
		WHERE reservation_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find notifications by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find notifications by reservation ID %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		var notification entity.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.ReservationID,
			&notification.Recipient,
			&notification.Status,
			&notification.SentAt,
			&notification.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan notification row", zap.Error(err))
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}
