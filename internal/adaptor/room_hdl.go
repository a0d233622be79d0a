package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/request"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/usecase"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service      usecase.RoomService
	reservations usecase.ReservationService
	log          *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, reservations usecase.ReservationService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service:      service,
		reservations: reservations,
		log:          log.With(zap.String("handler", "room")),
	}
}

// CreateRoom handles POST /api/rooms (protected)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, "create room", err)
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// GetRoom handles GET /api/rooms/{id}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.GetRoomByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, "get room", err)
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// GetRooms handles GET /api/rooms
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	rooms, err := h.service.GetRooms(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, "list rooms", err)
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoomReservations handles GET /api/rooms/{id}/reservations (protected)
func (h *RoomHandler) GetRoomReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservations.GetRoomReservations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, "get room reservations", err)
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}
