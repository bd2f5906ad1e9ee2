// Command netkitd is the consuming orchestrator spec.md §5 anticipates:
// a small daemon wiring NetKit's pure core (IE decoder, RF link model,
// survey/heatmap/dead-zone/planning pipeline) to HTTP, persistence, and
// telemetry. The core itself stays a synchronous library; this binary is
// the only place that touches a socket, a database, or a metrics
// registry.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lamco-admin/netkit/internal/api"
	"github.com/lamco-admin/netkit/internal/config"
	"github.com/lamco-admin/netkit/internal/storage"
	"github.com/lamco-admin/netkit/internal/telemetry"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("netkitd starting")

	cfg := config.Load()

	telemetry.Register()
	shutdownTracer, err := telemetry.InitTracer()
	if err != nil {
		log.Fatalf("failed to init tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Error("tracer.shutdown_failed", "error", err.Error())
		}
	}()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open storage at %s: %v", cfg.DBPath, err)
	}
	defer store.Close()

	srv := api.NewServer(cfg.Addr, store, cfg)

	slog.Info("netkitd listening", "addr", cfg.Addr, "db", cfg.DBPath, "reg_domain", cfg.RegulatoryDomain)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}

	slog.Info("netkitd stopped")
}
