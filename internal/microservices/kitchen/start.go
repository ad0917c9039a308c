package kitchen

import (
	"context"
	"fmt"
	"os"

	"noodle-pos/internal/common/logger"
	"noodle-pos/internal/config"
	"noodle-pos/internal/connections/rabbitmq"
	"noodle-pos/internal/microservices/kitchen/service"
)

// Run starts the kitchen-printer: a console sink for kitchen tickets.
func Run(ctx context.Context, cfg *config.Config, prefetch int) error {
	lg := logger.New("kitchen-printer")

	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq connect: %w", err)
	}
	defer rmq.Close()
	lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host})

	printer := service.NewPrinterService(rmq, lg, os.Stdout, prefetch)
	return printer.Run(ctx)
}
