package entity

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
)

// Room.Status is a cached view of current-date occupancy. It is only
// mutated by check-in/check-out under the same room row lock that guards
// reservation transitions.
type Room struct {
	Base
	RoomNumber    string     `db:"room_number"`
	RoomType      string     `db:"room_type"`
	PricePerNight float64    `db:"price_per_night"`
	Status        RoomStatus `db:"status"`
}
