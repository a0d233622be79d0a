package request

type AddExtraChargeRequest struct {
	ItemName  string  `json:"item_name" validate:"required,min=1,max=100"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
}

type RecordPaymentRequest struct {
	Method string  `json:"method" validate:"required,oneof=cash card online"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
