package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"noodle-pos/internal/common/logger"
	"noodle-pos/internal/microservices/order/domain/dto"
	"noodle-pos/internal/microservices/order/repository"
	"noodle-pos/internal/microservices/order/service"
)

type OrderHandler struct {
	service service.OrderServiceInterface
	lg      *logger.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{service: s, lg: lg}
}

// CreateOrder handles POST /orders.
func (oh *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}

	orderID, err := oh.service.PlaceOrder(r.Context(), req)
	if err != nil {
		oh.fail(w, "order_creation_failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{OrderID: orderID})
}

// GetPaymentView handles GET /orders/{order_id}/payment.
func (oh *OrderHandler) GetPaymentView(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	view, err := oh.service.GetPaymentView(r.Context(), orderID)
	if err != nil {
		oh.fail(w, "payment_view_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// ConfirmPayment handles POST /orders/{order_id}/payment. The body is
// optional; an absent method defaults to cash.
func (oh *OrderHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	var req dto.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeProblem(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}

	status, err := oh.service.ConfirmPayment(r.Context(), orderID, req.Method)
	if err != nil {
		oh.fail(w, "payment_confirmation_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ConfirmPaymentResponse{
		OrderID:       orderID,
		PaymentStatus: status,
	})
}

// ListOrders handles GET /orders (admin view).
func (oh *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	summaries, err := oh.service.ListOrders(r.Context())
	if err != nil {
		oh.fail(w, "order_listing_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": summaries})
}

// ListMenu handles GET /menu.
func (oh *OrderHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := oh.service.ListMenu(r.Context())
	if err != nil {
		oh.fail(w, "menu_listing_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"menu_items": items})
}

// Health handles GET /health.
func (oh *OrderHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   "pos-service",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// fail maps workflow errors onto HTTP status codes.
func (oh *OrderHandler) fail(w http.ResponseWriter, action string, err error) {
	var ve dto.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusBadRequest, "validation_error", ve.Error())
	case errors.Is(err, repository.ErrOrderNotFound):
		writeProblem(w, http.StatusNotFound, "not_found", "order not found")
	default:
		oh.lg.Error(action, err, nil)
		writeProblem(w, http.StatusInternalServerError, "db_error", "internal error")
	}
}

func orderIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("order_id"))
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "validation_error", "order_id must be a positive integer")
		return 0, false
	}
	return id, true
}
