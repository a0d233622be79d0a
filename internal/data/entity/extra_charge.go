package entity

import (
	"github.com/google/uuid"
)

type ExtraCharge struct {
	BaseSimple
	BillID    uuid.UUID `db:"bill_id"`
	ItemName  string    `db:"item_name"`
	UnitPrice float64   `db:"unit_price"`
	Quantity  int       `db:"quantity"`
	Subtotal  float64   `db:"subtotal"`
}
