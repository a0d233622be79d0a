package request

type CreateReservationRequest struct {
	GuestID  string `json:"guest_id" validate:"required,uuid4"`
	RoomID   string `json:"room_id" validate:"required,uuid4"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}
