package service

import (
	"context"
	"encoding/json"
	"io"

	"noodle-pos/internal/common/logger"
	"noodle-pos/internal/connections/rabbitmq"
	"noodle-pos/internal/ticket"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PrinterService consumes kitchen tickets from the queue and writes
// them to out. Swap out for an ESC/POS writer to drive real hardware.
type PrinterService struct {
	rmq      *rabbitmq.Client
	lg       *logger.Logger
	out      io.Writer
	prefetch int
}

func NewPrinterService(rmq *rabbitmq.Client, lg *logger.Logger, out io.Writer, prefetch int) *PrinterService {
	if prefetch <= 0 {
		prefetch = 1
	}
	return &PrinterService{rmq: rmq, lg: lg, out: out, prefetch: prefetch}
}

// Run consumes until ctx is canceled, then drains in-flight deliveries.
func (ps *PrinterService) Run(ctx context.Context) error {
	ch := ps.rmq.Channel()

	if err := ps.rmq.DeclareQueue(ticket.Queue); err != nil {
		return err
	}
	if err := ch.Qos(ps.prefetch, 0, false); err != nil {
		return err
	}

	const consumerTag = "kitchen-printer"
	msgs, err := ch.Consume(ticket.Queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return err
	}

	ps.lg.Info("printer_consuming", map[string]any{"queue": ticket.Queue, "prefetch": ps.prefetch})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for d := range msgs {
			ps.handle(d)
		}
	}()

	<-ctx.Done()
	ps.lg.Info("graceful_shutdown", nil)

	_ = ch.Cancel(consumerTag, false)
	<-done
	return nil
}

func (ps *PrinterService) handle(d amqp.Delivery) {
	var rec ticket.Record
	if err := json.Unmarshal(d.Body, &rec); err != nil {
		// unparseable ticket, drop it
		ps.lg.Error("ticket_unmarshal_failed", err, nil)
		_ = d.Nack(false, false)
		return
	}

	if _, err := io.WriteString(ps.out, rec.Render()+"\n"); err != nil {
		ps.lg.Error("ticket_print_failed", err, map[string]any{"order_id": rec.OrderID})
		_ = d.Nack(false, true)
		return
	}

	ps.lg.Debug("ticket_printed", map[string]any{"order_id": rec.OrderID, "table_number": rec.TableNumber})
	_ = d.Ack(false)
}
