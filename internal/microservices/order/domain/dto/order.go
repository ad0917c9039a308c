package dto

import (
	"fmt"

	"noodle-pos/internal/microservices/order/domain/dao"
)

type CreateOrderRequest struct {
	TableNumber string           `json:"table_number"`
	Items       []OrderItemInput `json:"items"`
}

type OrderItemInput struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type CreateOrderResponse struct {
	OrderID int `json:"order_id"`
}

type ConfirmPaymentRequest struct {
	Method string `json:"method"`
}

type ConfirmPaymentResponse struct {
	OrderID       int    `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
}

// PaymentView is the order detail shown on the payment page.
type PaymentView struct {
	Order dao.Order       `json:"order"`
	Items []dao.OrderItem `json:"items"`
	Total float64         `json:"total"`
}

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
