package usecase

import (
	"context"
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/apperr"

	"github.com/google/uuid"
)

// AvailabilityChecker decides whether a room can take a new reservation
// for a date range. Only pending and confirmed reservations block;
// intervals are half-open, so back-to-back stays on the same room do
// not conflict.
//
// The check is only meaningful against the same transaction that will
// insert the reservation (with the room row locked), so callers bind it
// to tx-scoped repositories.
type AvailabilityChecker struct {
	reservations repository.ReservationRepository
}

func NewAvailabilityChecker(reservations repository.ReservationRepository) *AvailabilityChecker {
	return &AvailabilityChecker{reservations: reservations}
}

// IsAvailable reports whether the room is free for [checkIn, checkOut).
// excludeID, when set, leaves one reservation out of the check; used
// when re-validating an existing reservation's own dates.
func (c *AvailabilityChecker) IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, apperr.Validationf("check-out %s must be after check-in %s",
			checkOut.Format("2006-01-02"), checkIn.Format("2006-01-02"))
	}

	active, err := c.reservations.FindActiveByRoomID(ctx, roomID, excludeID)
	if err != nil {
		return false, err
	}

	for _, reservation := range active {
		if reservation.Overlaps(checkIn, checkOut) {
			return false, nil
		}
	}

	return true, nil
}
