package usecase

import (
	"context"
	"time"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/request"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/response"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/apperr"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GuestService interface {
	CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error)
	GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error)
	GetGuests(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GuestResponse], error)
}

type guestService struct {
	repo repository.GuestRepository
	log  *zap.Logger
}

func NewGuestService(repo repository.GuestRepository, log *zap.Logger) GuestService {
	return &guestService{
		repo: repo,
		log:  log.With(zap.String("service", "guest")),
	}
}

func (s *guestService) CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create guest validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &apperr.DuplicateError{Resource: "guest", ID: req.Email}
	}

	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := s.repo.Create(ctx, guest); err != nil {
		return nil, err
	}

	s.log.Info("Guest created",
		zap.String("guest_id", guest.ID.String()),
		zap.String("email", guest.Email),
	)

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error) {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return nil, apperr.Validationf("invalid guest ID format %s", guestID)
	}

	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, &apperr.NotFoundError{Resource: "guest", ID: guestID}
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuests(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GuestResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}

	guests, err := s.repo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]response.GuestResponse, len(guests))
	for i, guest := range guests {
		items[i] = response.GuestToResponse(guest)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}
