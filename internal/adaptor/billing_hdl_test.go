package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/entity"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/request"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/dto/response"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/apperr"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/database"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockBillingService struct {
	mock.Mock
}

func (m *mockBillingService) GenerateBillTx(ctx context.Context, tx database.Querier, reservation *entity.Reservation, room *entity.Room) (*entity.Bill, error) {
	args := m.Called(ctx, tx, reservation, room)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *mockBillingService) GetBillByID(ctx context.Context, billID string) (*response.BillDetailResponse, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BillDetailResponse), args.Error(1)
}

func (m *mockBillingService) AddExtraCharge(ctx context.Context, billID string, req *request.AddExtraChargeRequest) (*response.BillResponse, error) {
	args := m.Called(ctx, billID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BillResponse), args.Error(1)
}

func (m *mockBillingService) RecordPayment(ctx context.Context, billID string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	args := m.Called(ctx, billID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaymentResponse), args.Error(1)
}

func (m *mockBillingService) RefundPayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func newBillingRouter(service *mockBillingService) *chi.Mux {
	handler := NewBillingHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/bills/{id}", handler.GetBill)
	r.Post("/api/bills/{id}/charges", handler.AddExtraCharge)
	r.Post("/api/bills/{id}/payments", handler.RecordPayment)
	r.Put("/api/payments/{id}/refund", handler.RefundPayment)
	return r
}

func TestAddExtraChargeHandlerCreated(t *testing.T) {
	service := new(mockBillingService)
	billID := uuid.New().String()
	service.On("AddExtraCharge", mock.Anything, billID, mock.AnythingOfType("*request.AddExtraChargeRequest")).
		Return(&response.BillResponse{ID: billID, ExtraChargesTotal: 30, TotalAmount: 330}, nil)

	body, _ := json.Marshal(map[string]any{"item_name": "Minibar", "unit_price": 15, "quantity": 2})
	req := httptest.NewRequest(http.MethodPost, "/api/bills/"+billID+"/charges", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newBillingRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddExtraChargeHandlerDuplicateBill(t *testing.T) {
	service := new(mockBillingService)
	billID := uuid.New().String()
	service.On("AddExtraCharge", mock.Anything, billID, mock.Anything).
		Return(nil, &apperr.DuplicateError{Resource: "bill", ID: billID})

	body, _ := json.Marshal(map[string]any{"item_name": "Minibar", "unit_price": 15, "quantity": 2})
	req := httptest.NewRequest(http.MethodPost, "/api/bills/"+billID+"/charges", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newBillingRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBillHandlerNotFound(t *testing.T) {
	service := new(mockBillingService)
	billID := uuid.New().String()
	service.On("GetBillByID", mock.Anything, billID).
		Return(nil, &apperr.NotFoundError{Resource: "bill", ID: billID})

	req := httptest.NewRequest(http.MethodGet, "/api/bills/"+billID, nil)
	rec := httptest.NewRecorder()
	newBillingRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordPaymentHandlerValidation(t *testing.T) {
	service := new(mockBillingService)
	billID := uuid.New().String()
	service.On("RecordPayment", mock.Anything, billID, mock.Anything).
		Return(nil, apperr.Validationf("amount must be positive"))

	body, _ := json.Marshal(map[string]any{"method": "card", "amount": -5})
	req := httptest.NewRequest(http.MethodPost, "/api/bills/"+billID+"/payments", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newBillingRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefundPaymentHandlerAlreadyRefunded(t *testing.T) {
	service := new(mockBillingService)
	paymentID := uuid.New().String()
	service.On("RefundPayment", mock.Anything, paymentID).
		Return(&apperr.InvalidStateError{Op: "refund payment", Status: "refunded"})

	req := httptest.NewRequest(http.MethodPut, "/api/payments/"+paymentID+"/refund", nil)
	rec := httptest.NewRecorder()
	newBillingRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
