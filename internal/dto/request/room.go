package request

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number" validate:"required,min=1,max=10"`
	RoomType      string  `json:"room_type" validate:"required,oneof=single double suite deluxe"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
}
