package response

import (
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
)

type ReservationResponse struct {
	ID         string                   `json:"id"`
	Code       string                   `json:"code"`
	GuestID    string                   `json:"guest_id"`
	GuestName  string                   `json:"guest_name,omitempty"`
	RoomID     string                   `json:"room_id"`
	RoomNumber string                   `json:"room_number,omitempty"`
	StaffID    *string                  `json:"staff_id,omitempty"`
	CheckIn    string                   `json:"check_in"`
	CheckOut   string                   `json:"check_out"`
	Nights     int                      `json:"nights"`
	Status     entity.ReservationStatus `json:"status"`
	CreatedAt  time.Time                `json:"created_at"`
}

type ReservationDetailResponse struct {
	ReservationResponse
	Bill          *BillResponse          `json:"bill,omitempty"`
	Notifications []NotificationResponse `json:"notifications,omitempty"`
}

type NotificationResponse struct {
	ID        string                    `json:"id"`
	Recipient string                    `json:"recipient"`
	Status    entity.NotificationStatus `json:"status"`
	SentAt    *time.Time                `json:"sent_at,omitempty"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:        reservation.ID.String(),
		Code:      reservation.Code,
		GuestID:   reservation.GuestID.String(),
		RoomID:    reservation.RoomID.String(),
		CheckIn:   reservation.CheckIn.Format("2006-01-02"),
		CheckOut:  reservation.CheckOut.Format("2006-01-02"),
		Nights:    reservation.Nights(),
		Status:    reservation.Status,
		CreatedAt: reservation.CreatedAt,
	}

	if reservation.UserID != nil {
		staffID := reservation.UserID.String()
		resp.StaffID = &staffID
	}

	return resp
}

func NotificationToResponse(notification *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID.String(),
		Recipient: notification.Recipient,
		Status:    notification.Status,
		SentAt:    notification.SentAt,
	}
}
