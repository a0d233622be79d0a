package response

import (
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
)

type RoomResponse struct {
	ID            string            `json:"id"`
	RoomNumber    string            `json:"room_number"`
	RoomType      string            `json:"room_type"`
	PricePerNight float64           `json:"price_per_night"`
	Status        entity.RoomStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID.String(),
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		Status:        room.Status,
		CreatedAt:     room.CreatedAt,
	}
}
