package response

import (
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
)

type GuestResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func GuestToResponse(guest *entity.Guest) GuestResponse {
	return GuestResponse{
		ID:        guest.ID.String(),
		Name:      guest.Name,
		Phone:     guest.Phone,
		Email:     guest.Email,
		CreatedAt: guest.CreatedAt,
	}
}
