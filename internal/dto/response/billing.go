package response

import (
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
)

type BillResponse struct {
	ID                string    `json:"id"`
	ReservationID     string    `json:"reservation_id"`
	NumberOfNights    int       `json:"number_of_nights"`
	RoomCharge        float64   `json:"room_charge"`
	ExtraChargesTotal float64   `json:"extra_charges_total"`
	TotalAmount       float64   `json:"total_amount"`
	CreatedAt         time.Time `json:"created_at"`
}

type BillDetailResponse struct {
	BillResponse
	ExtraCharges []ExtraChargeResponse `json:"extra_charges"`
	Payments     []PaymentResponse     `json:"payments"`
}

type ExtraChargeResponse struct {
	ID        string    `json:"id"`
	BillID    string    `json:"bill_id"`
	ItemName  string    `json:"item_name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentResponse struct {
	ID        string               `json:"id"`
	BillID    string               `json:"bill_id"`
	Method    string               `json:"method"`
	Amount    float64              `json:"amount"`
	Status    entity.PaymentStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

func BillToResponse(bill *entity.Bill) BillResponse {
	return BillResponse{
		ID:                bill.ID.String(),
		ReservationID:     bill.ReservationID.String(),
		NumberOfNights:    bill.NumberOfNights,
		RoomCharge:        bill.RoomCharge,
		ExtraChargesTotal: bill.ExtraChargesTotal,
		TotalAmount:       bill.TotalAmount,
		CreatedAt:         bill.CreatedAt,
	}
}

func ExtraChargeToResponse(charge *entity.ExtraCharge) ExtraChargeResponse {
	return ExtraChargeResponse{
		ID:        charge.ID.String(),
		BillID:    charge.BillID.String(),
		ItemName:  charge.ItemName,
		UnitPrice: charge.UnitPrice,
		Quantity:  charge.Quantity,
		Subtotal:  charge.Subtotal,
		CreatedAt: charge.CreatedAt,
	}
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID.String(),
		BillID:    payment.BillID.String(),
		Method:    payment.Method,
		Amount:    payment.Amount,
		Status:    payment.Status,
		CreatedAt: payment.CreatedAt,
	}
}
