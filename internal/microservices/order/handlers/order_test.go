package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"noodle-pos/internal/common/logger"
	"noodle-pos/internal/microservices/order/domain/dao"
	"noodle-pos/internal/microservices/order/domain/dto"
	"noodle-pos/internal/microservices/order/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderService returns canned answers per test.
type stubOrderService struct {
	placeOrderID   int
	placeOrderErr  error
	confirmStatus  string
	confirmErr     error
	paymentView    dto.PaymentView
	paymentViewErr error
	summaries      []dao.OrderSummary
	menu           []dao.MenuItem

	gotMethod string
}

func (s *stubOrderService) PlaceOrder(context.Context, dto.CreateOrderRequest) (int, error) {
	return s.placeOrderID, s.placeOrderErr
}

func (s *stubOrderService) ConfirmPayment(_ context.Context, _ int, method string) (string, error) {
	s.gotMethod = method
	return s.confirmStatus, s.confirmErr
}

func (s *stubOrderService) GetPaymentView(context.Context, int) (dto.PaymentView, error) {
	return s.paymentView, s.paymentViewErr
}

func (s *stubOrderService) ListOrders(context.Context) ([]dao.OrderSummary, error) {
	return s.summaries, nil
}

func (s *stubOrderService) ListMenu(context.Context) ([]dao.MenuItem, error) {
	return s.menu, nil
}

func newTestMux(svc *stubOrderService) *http.ServeMux {
	oh := NewOrderHandler(svc, logger.New("test"))
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", oh.CreateOrder)
	mux.HandleFunc("GET /orders", oh.ListOrders)
	mux.HandleFunc("GET /orders/{order_id}/payment", oh.GetPaymentView)
	mux.HandleFunc("POST /orders/{order_id}/payment", oh.ConfirmPayment)
	mux.HandleFunc("GET /menu", oh.ListMenu)
	return mux
}

func TestCreateOrder(t *testing.T) {
	mux := newTestMux(&stubOrderService{placeOrderID: 42})

	body := `{"table_number":"5","items":[{"name":"Noodle","quantity":2,"price":45}]}`
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.CreateOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.OrderID)
}

func TestCreateOrder_BadJSON(t *testing.T) {
	mux := newTestMux(&stubOrderService{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_ValidationError(t *testing.T) {
	svc := &stubOrderService{
		placeOrderErr: dto.ValidationError{Field: "table_number", Message: "table number is required"},
	}
	mux := newTestMux(svc)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[]}`)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var problem map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "validation_error", problem["type"])
	assert.Contains(t, problem["detail"], "table_number")
}

func TestGetPaymentView_NotFound(t *testing.T) {
	mux := newTestMux(&stubOrderService{paymentViewErr: repository.ErrOrderNotFound})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/99/payment", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var problem map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "not_found", problem["type"])
}

func TestGetPaymentView_BadID(t *testing.T) {
	mux := newTestMux(&stubOrderService{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/abc/payment", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmPayment_DefaultsToEmptyMethod(t *testing.T) {
	svc := &stubOrderService{confirmStatus: "paid_cash"}
	mux := newTestMux(svc)

	// No body at all: the workflow applies the cash default.
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/7/payment", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", svc.gotMethod)

	var resp dto.ConfirmPaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.OrderID)
	assert.Equal(t, "paid_cash", resp.PaymentStatus)
}

func TestConfirmPayment_WithMethod(t *testing.T) {
	svc := &stubOrderService{confirmStatus: "paid_transfer"}
	mux := newTestMux(svc)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/7/payment", strings.NewReader(`{"method":"transfer"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "transfer", svc.gotMethod)
}

func TestConfirmPayment_NotFound(t *testing.T) {
	mux := newTestMux(&stubOrderService{confirmErr: repository.ErrOrderNotFound})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/99/payment", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrders(t *testing.T) {
	svc := &stubOrderService{summaries: []dao.OrderSummary{
		{ID: 2, TableNumber: "3", PaymentStatus: "unpaid", Total: 0},
		{ID: 1, TableNumber: "5", PaymentStatus: "paid_cash", Total: 90},
	}}
	mux := newTestMux(svc)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Orders []dao.OrderSummary `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, 2, resp.Orders[0].ID)
}

func TestListMenu(t *testing.T) {
	svc := &stubOrderService{menu: []dao.MenuItem{{ID: 1, Name: "Extra noodles", Price: 10}}}
	mux := newTestMux(svc)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		MenuItems []dao.MenuItem `json:"menu_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.MenuItems, 1)
	assert.Equal(t, "Extra noodles", resp.MenuItems[0].Name)
}
