package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Payment struct {
	Base
	BillID uuid.UUID     `db:"bill_id"`
	Method string        `db:"method"`
	Amount float64       `db:"amount"`
	Status PaymentStatus `db:"status"`
}
