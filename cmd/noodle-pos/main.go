package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"noodle-pos/internal/common/logger"
	"noodle-pos/internal/config"
	"noodle-pos/internal/microservices/kitchen"
	"noodle-pos/internal/microservices/order"
)

func main() {
	mode := flag.String("mode", "", "pos-service | kitchen-printer")
	cfgPath := flag.String("config", "config.yaml", "path to YAML config")
	port := flag.Int("port", 0, "pos-service: HTTP port (overrides config)")
	prefetch := flag.Int("prefetch", 1, "kitchen-printer: RabbitMQ prefetch")
	flag.Parse()

	lg := logger.New("bootstrap")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": *cfgPath})
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *mode {
	case "pos-service":
		if *port == 0 {
			*port = cfg.HTTP.Port
		}
		lg.Info("service_started", map[string]any{"service": "pos-service", "port": *port})
		if err := order.Run(ctx, cfg, *port); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "kitchen-printer":
		lg.Info("service_started", map[string]any{"service": "kitchen-printer"})
		if err := kitchen.Run(ctx, cfg, *prefetch); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: pos-service | kitchen-printer")
		os.Exit(2)
	}
}
