package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exposed on GET /metrics of the pos-service.
var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_orders_created_total",
		Help: "Number of orders successfully placed.",
	})

	PaymentsConfirmed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_payments_confirmed_total",
		Help: "Number of payment confirmations by method.",
	}, []string{"method"})

	TicketsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_kitchen_tickets_published_total",
		Help: "Number of kitchen tickets handed off to the queue.",
	})

	TicketEmitFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_kitchen_ticket_emit_failures_total",
		Help: "Number of kitchen ticket publishes that failed.",
	})
)
