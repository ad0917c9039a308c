package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"noodle-pos/internal/common/logger"
	"noodle-pos/internal/config"
	"noodle-pos/internal/connections/database"
	"noodle-pos/internal/connections/rabbitmq"
	"noodle-pos/internal/microservices/order/handlers"
	"noodle-pos/internal/microservices/order/repository"
	"noodle-pos/internal/microservices/order/service"
	"noodle-pos/internal/ticket"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run starts the pos-service: connects storage and messaging, applies
// migrations, seeds the menu, and serves HTTP until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, port int) error {
	lg := logger.New("pos-service")

	db, err := database.ConnectDB(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()
	lg.Info("db_connected", map[string]any{"host": cfg.Database.Host, "database": cfg.Database.Database})

	if err := database.RunMigrations(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	repo := repository.New(db)
	if err := repo.Menu.EnsureDefaultMenu(ctx); err != nil {
		return fmt.Errorf("menu seed: %w", err)
	}

	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq connect: %w", err)
	}
	defer rmq.Close()
	lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host})

	emitter, err := ticket.NewQueueEmitter(rmq)
	if err != nil {
		return fmt.Errorf("ticket emitter: %w", err)
	}

	svc := service.New(repo, emitter, lg)
	h := handlers.New(svc, lg)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", h.Orders.CreateOrder)
	mux.HandleFunc("GET /orders", h.Orders.ListOrders)
	mux.HandleFunc("GET /orders/{order_id}/payment", h.Orders.GetPaymentView)
	mux.HandleFunc("POST /orders/{order_id}/payment", h.Orders.ConfirmPayment)
	mux.HandleFunc("GET /menu", h.Orders.ListMenu)
	mux.HandleFunc("GET /health", h.Orders.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("http_listening", map[string]any{"port": port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
