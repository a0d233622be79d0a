package entity

import (
	"github.com/google/uuid"
)

// Bill is created exactly once, at confirmation. RoomCharge and
// NumberOfNights are immutable after creation; ExtraChargesTotal and
// TotalAmount are recomputed whenever an extra charge is added.
type Bill struct {
	BaseSimple
	ReservationID     uuid.UUID `db:"reservation_id"`
	NumberOfNights    int       `db:"number_of_nights"`
	RoomCharge        float64   `db:"room_charge"`
	ExtraChargesTotal float64   `db:"extra_charges_total"`
	TotalAmount       float64   `db:"total_amount"`
}
