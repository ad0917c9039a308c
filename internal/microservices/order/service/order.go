package service

import (
	"context"
	"time"

	"noodle-pos/internal/common/logger"
	"noodle-pos/internal/common/metrics"
	"noodle-pos/internal/microservices/order/domain/dao"
	"noodle-pos/internal/microservices/order/domain/dto"
	"noodle-pos/internal/microservices/order/repository"
	"noodle-pos/internal/ticket"
)

const createdAtLayout = "2006-01-02 15:04:05"

const defaultPaymentMethod = "cash"

// TicketEmitter hands a kitchen ticket off to its sink. Emission is
// one-way: the workflow never rolls an order back because a ticket
// failed to go out.
type TicketEmitter interface {
	Emit(ctx context.Context, rec ticket.Record) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req dto.CreateOrderRequest) (int, error)
	ConfirmPayment(ctx context.Context, orderID int, method string) (string, error)
	GetPaymentView(ctx context.Context, orderID int) (dto.PaymentView, error)
	ListOrders(ctx context.Context) ([]dao.OrderSummary, error)
	ListMenu(ctx context.Context) ([]dao.MenuItem, error)
}

type OrderService struct {
	orders  repository.OrderRepositoryInterface
	menu    repository.MenuRepositoryInterface
	emitter TicketEmitter
	lg      *logger.Logger

	now func() time.Time
}

func NewOrderService(orders repository.OrderRepositoryInterface, menu repository.MenuRepositoryInterface, emitter TicketEmitter, lg *logger.Logger) *OrderService {
	return &OrderService{
		orders:  orders,
		menu:    menu,
		emitter: emitter,
		lg:      lg,
		now:     time.Now,
	}
}

// PlaceOrder validates the request, persists the order with its
// surviving items, and fires the kitchen ticket.
func (or *OrderService) PlaceOrder(ctx context.Context, req dto.CreateOrderRequest) (int, error) {
	if req.TableNumber == "" {
		return 0, dto.ValidationError{Field: "table_number", Message: "table number is required"}
	}
	if len(req.Items) == 0 {
		return 0, dto.ValidationError{Field: "items", Message: "at least one item is required"}
	}

	// Lines with non-positive quantity are dropped, not rejected.
	items := make([]dao.OrderItem, 0, len(req.Items))
	for _, in := range req.Items {
		if in.Quantity <= 0 {
			continue
		}
		items = append(items, dao.OrderItem{
			ItemName: in.Name,
			Quantity: in.Quantity,
			Price:    in.Price,
		})
	}

	createdAt := or.now().Format(createdAtLayout)
	orderID, err := or.orders.CreateOrder(ctx, req.TableNumber, createdAt, items)
	if err != nil {
		return 0, err
	}
	metrics.OrdersCreated.Inc()

	or.lg.Info("order_created", map[string]any{
		"order_id":     orderID,
		"table_number": req.TableNumber,
		"items":        len(items),
	})

	or.emitTicket(ctx, dao.Order{
		ID:            orderID,
		TableNumber:   req.TableNumber,
		CreatedAt:     createdAt,
		PaymentStatus: dao.StatusUnpaid,
	}, items)

	return orderID, nil
}

// emitTicket is best-effort: failures are logged and counted, never
// surfaced to the caller.
func (or *OrderService) emitTicket(ctx context.Context, order dao.Order, items []dao.OrderItem) {
	rec := ticket.Format(order, items)
	if err := or.emitter.Emit(ctx, rec); err != nil {
		metrics.TicketEmitFailures.Inc()
		or.lg.Warn("ticket_emit_failed", err, map[string]any{"order_id": order.ID})
		return
	}
	metrics.TicketsPublished.Inc()
}

// ConfirmPayment transitions the order to paid_<method>. An already
// paid order is overwritten, not rejected.
func (or *OrderService) ConfirmPayment(ctx context.Context, orderID int, method string) (string, error) {
	if method == "" {
		method = defaultPaymentMethod
	}
	status := dao.StatusPaidPrefix + method
	if err := or.orders.SetPaymentStatus(ctx, orderID, status); err != nil {
		return "", err
	}
	metrics.PaymentsConfirmed.WithLabelValues(method).Inc()

	or.lg.Info("payment_confirmed", map[string]any{
		"order_id": orderID,
		"method":   method,
	})
	return status, nil
}

func (or *OrderService) GetPaymentView(ctx context.Context, orderID int) (dto.PaymentView, error) {
	order, err := or.orders.GetOrder(ctx, orderID)
	if err != nil {
		return dto.PaymentView{}, err
	}
	items, err := or.orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return dto.PaymentView{}, err
	}

	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	return dto.PaymentView{Order: order, Items: items, Total: total}, nil
}

func (or *OrderService) ListOrders(ctx context.Context) ([]dao.OrderSummary, error) {
	return or.orders.ListOrdersWithTotals(ctx)
}

func (or *OrderService) ListMenu(ctx context.Context) ([]dao.MenuItem, error) {
	return or.menu.ListMenuItems(ctx)
}
