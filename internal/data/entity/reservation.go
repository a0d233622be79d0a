package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
)

// Active reports whether the reservation occupies its room for
// availability purposes.
func (s ReservationStatus) Active() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}

// Terminal reports whether no further transition is permitted.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusCheckedOut
}

// transitions is the lifecycle table. Reservations are never deleted;
// terminal states have no outgoing edges.
var transitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCancelled, ReservationStatusCheckedIn},
	ReservationStatusCheckedIn: {ReservationStatusCheckedOut},
}

// CanTransitionTo reports whether the lifecycle permits moving to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Reservation struct {
	Base
	Code     string            `db:"code"`
	GuestID  uuid.UUID         `db:"guest_id"`
	RoomID   uuid.UUID         `db:"room_id"`
	UserID   *uuid.UUID        `db:"user_id"` // staff member, set on confirmation
	CheckIn  time.Time         `db:"check_in"`
	CheckOut time.Time         `db:"check_out"`
	Status   ReservationStatus `db:"status"`
}

// Nights is the whole-day length of the stay. Always >= 1 because
// check-out is strictly after check-in.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether [checkIn, checkOut) intersects this
// reservation's stay. Both ranges are half-open: a check-out on day X
// does not conflict with a check-in on day X.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckIn.Before(checkOut) && checkIn.Before(r.CheckOut)
}
