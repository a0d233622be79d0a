package usecase

import (
	"context"
	"testing"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/request"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCreateGuestDuplicateEmail(t *testing.T) {
	repo := new(mockGuestRepo)
	repo.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(&entity.Guest{Base: entity.Base{ID: uuid.New()}, Email: "alice@example.com"}, nil)

	service := NewGuestService(repo, zap.NewNop())
	_, err := service.CreateGuest(context.Background(), &request.CreateGuestRequest{
		Name:  "Alice Perera",
		Email: "alice@example.com",
	})

	var duplicateErr *apperr.DuplicateError
	assert.ErrorAs(t, err, &duplicateErr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetGuestsPagination(t *testing.T) {
	repo := new(mockGuestRepo)
	guests := []*entity.Guest{
		{Base: entity.Base{ID: uuid.New()}, Name: "Alice Perera", Email: "alice@example.com"},
		{Base: entity.Base{ID: uuid.New()}, Name: "Bimal Silva", Email: "bimal@example.com"},
	}
	repo.On("FindAll", mock.Anything, 10, 10).Return(guests, nil)
	repo.On("Count", mock.Anything).Return(int64(12), nil)

	service := NewGuestService(repo, zap.NewNop())
	resp, err := service.GetGuests(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 10})

	assert.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, int64(12), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	repo.AssertCalled(t, "FindAll", mock.Anything, 10, 10)
}

func TestGetGuestsClampsPage(t *testing.T) {
	repo := new(mockGuestRepo)
	repo.On("FindAll", mock.Anything, 20, 0).Return([]*entity.Guest{}, nil)
	repo.On("Count", mock.Anything).Return(int64(0), nil)

	service := NewGuestService(repo, zap.NewNop())
	resp, err := service.GetGuests(context.Background(), &request.PaginatedRequest{Page: 0, PerPage: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 20, resp.Pagination.PerPage)
	repo.AssertCalled(t, "FindAll", mock.Anything, 20, 0)
}
