package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationStatusSent   NotificationStatus = "sent"
	NotificationStatusFailed NotificationStatus = "failed"
)

// Notification is an append-only log of delivery attempts. SentAt is
// nil for failed attempts; nothing was delivered.
type Notification struct {
	BaseSimple
	ReservationID uuid.UUID          `db:"reservation_id"`
	Recipient     string             `db:"recipient"`
	Status        NotificationStatus `db:"status"`
	SentAt        *time.Time         `db:"sent_at"`
}
