package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"noodle-pos/internal/microservices/order/domain/dao"
)

// ErrOrderNotFound is returned when the referenced order id does not
// exist. The original system silently updated zero rows on payment
// confirmation; here a missing order is always reported.
var ErrOrderNotFound = errors.New("order not found")

type OrderRepositoryInterface interface {
	CreateOrder(ctx context.Context, tableNumber, createdAt string, items []dao.OrderItem) (int, error)
	GetOrder(ctx context.Context, id int) (dao.Order, error)
	GetOrderItems(ctx context.Context, orderID int) ([]dao.OrderItem, error)
	ListOrdersWithTotals(ctx context.Context) ([]dao.OrderSummary, error)
	SetPaymentStatus(ctx context.Context, id int, status string) error
}

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

// CreateOrder inserts the order and its items in a single transaction.
// Either everything lands or nothing does.
func (or *OrderRepository) CreateOrder(ctx context.Context, tableNumber, createdAt string, items []dao.OrderItem) (int, error) {
	tx, err := or.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var orderID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (table_number, created_at, payment_status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, tableNumber, createdAt, dao.StatusUnpaid).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, item_name, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, orderID, item.ItemName, item.Quantity, item.Price)
		if err != nil {
			return 0, fmt.Errorf("failed to insert order item %s: %w", item.ItemName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return orderID, nil
}

func (or *OrderRepository) GetOrder(ctx context.Context, id int) (dao.Order, error) {
	var o dao.Order
	err := or.db.QueryRowContext(ctx, `
		SELECT id, table_number, created_at, payment_status
		FROM orders WHERE id = $1
	`, id).Scan(&o.ID, &o.TableNumber, &o.CreatedAt, &o.PaymentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return dao.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return dao.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

func (or *OrderRepository) GetOrderItems(ctx context.Context, orderID int) ([]dao.OrderItem, error) {
	rows, err := or.db.QueryContext(ctx, `
		SELECT id, order_id, item_name, quantity, price
		FROM order_items WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	items := make([]dao.OrderItem, 0)
	for rows.Next() {
		var it dao.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ItemName, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListOrdersWithTotals returns every order, newest first, with the sum
// of quantity*price over its items. Orders without items show total 0.
func (or *OrderRepository) ListOrdersWithTotals(ctx context.Context) ([]dao.OrderSummary, error) {
	rows, err := or.db.QueryContext(ctx, `
		SELECT o.id, o.table_number, o.created_at, o.payment_status,
		       COALESCE(SUM(oi.quantity * oi.price), 0) AS total
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id
		GROUP BY o.id, o.table_number, o.created_at, o.payment_status
		ORDER BY o.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	summaries := make([]dao.OrderSummary, 0)
	for rows.Next() {
		var s dao.OrderSummary
		if err := rows.Scan(&s.ID, &s.TableNumber, &s.CreatedAt, &s.PaymentStatus, &s.Total); err != nil {
			return nil, fmt.Errorf("failed to scan order summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (or *OrderRepository) SetPaymentStatus(ctx context.Context, id int, status string) error {
	res, err := or.db.ExecContext(ctx, `
		UPDATE orders SET payment_status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
