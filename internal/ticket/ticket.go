// Package ticket shapes an order into a kitchen ticket. Formatting is
// pure; delivery to the kitchen is someone else's job.
package ticket

import (
	"fmt"
	"strings"

	"noodle-pos/internal/microservices/order/domain/dao"
)

type Line struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type Record struct {
	OrderID     int     `json:"order_id"`
	TableNumber string  `json:"table_number"`
	CreatedAt   string  `json:"created_at"`
	Lines       []Line  `json:"lines"`
	Total       float64 `json:"total"`
}

// Format builds a ticket Record from an order and its items. Subtotals
// are summed before any rounding; two-decimal rounding happens only at
// render time.
func Format(order dao.Order, items []dao.OrderItem) Record {
	rec := Record{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		CreatedAt:   order.CreatedAt,
		Lines:       make([]Line, 0, len(items)),
	}
	for _, it := range items {
		subtotal := it.Price * float64(it.Quantity)
		rec.Lines = append(rec.Lines, Line{
			Name:     it.ItemName,
			Quantity: it.Quantity,
			Subtotal: subtotal,
		})
		rec.Total += subtotal
	}
	return rec
}

// Render produces the printable text block for the kitchen.
func (r Record) Render() string {
	var b strings.Builder
	b.WriteString("====== KITCHEN ORDER ======\n")
	fmt.Fprintf(&b, "Table: %s\n", r.TableNumber)
	fmt.Fprintf(&b, "Time: %s\n", r.CreatedAt)
	b.WriteString("---------------------------\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%s x %d = %.2f\n", line.Name, line.Quantity, line.Subtotal)
	}
	b.WriteString("---------------------------\n")
	fmt.Fprintf(&b, "Total: %.2f\n", r.Total)
	b.WriteString("====== END ======\n")
	return b.String()
}
