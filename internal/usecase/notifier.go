package usecase

import (
	"context"
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mailer is the external delivery channel for guest email.
type Mailer interface {
	SendReservationConfirmed(ctx context.Context, to, code string, checkIn, checkOut time.Time, totalAmount float64) error
}

// NotificationDispatcher records every confirmation delivery attempt in
// the append-only notification log. Delivery is best-effort: a failed
// send is recorded as failed and never escalated to the caller.
type NotificationDispatcher interface {
	NotifyConfirmation(ctx context.Context, reservation *entity.Reservation, bill *entity.Bill, recipient string) (*entity.Notification, error)
}

type notificationDispatcher struct {
	mailer Mailer
	repo   repository.NotificationRepository
	log    *zap.Logger
}

func NewNotificationDispatcher(mailer Mailer, repo repository.NotificationRepository, log *zap.Logger) NotificationDispatcher {
	return &notificationDispatcher{
		mailer: mailer,
		repo:   repo,
		log:    log.With(zap.String("service", "notification")),
	}
}

func (d *notificationDispatcher) NotifyConfirmation(ctx context.Context, reservation *entity.Reservation, bill *entity.Bill, recipient string) (*entity.Notification, error) {
	status := entity.NotificationStatusSent

	if recipient == "" {
		d.log.Warn("No recipient email for confirmation notification",
			zap.String("reservation_id", reservation.ID.String()),
		)
		status = entity.NotificationStatusFailed
	} else if err := d.mailer.SendReservationConfirmed(ctx, recipient, reservation.Code, reservation.CheckIn, reservation.CheckOut, bill.TotalAmount); err != nil {
		d.log.Warn("Confirmation email delivery failed",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
			zap.String("recipient", recipient),
		)
		status = entity.NotificationStatusFailed
	}

	now := time.Now()
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		ReservationID: reservation.ID,
		Recipient:     recipient,
		Status:        status,
	}
	if status == entity.NotificationStatusSent {
		notification.SentAt = &now
	}

	if err := d.repo.Create(ctx, notification); err != nil {
		return nil, err
	}

	d.log.Info("Confirmation notification recorded",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("status", string(status)),
	)

	return notification, nil
}
