package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/vidq/config"
	HTTPAdapter "github.com/bnema/vidq/internal/adapter/http"
	"github.com/bnema/vidq/internal/adapter/process"
	"github.com/bnema/vidq/internal/infrastructure/logger"
	"github.com/bnema/vidq/internal/metrics"
	"github.com/bnema/vidq/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the primary: job queue, worker pool and API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger.SetRole("primary")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The catalog is opened (and migrated) before any worker exists.
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	queueCatalog, closeQueueCatalog, err := a.openQueueCatalog()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeQueueCatalog(); err != nil {
			logger.Warn.Printf("close queue catalog: %v", err)
		}
	}()

	metrics.InitializeMetrics()
	eventBus := service.NewEventBus()
	queue, err := service.NewJobQueue(queueCatalog, a.converter, a.layout, eventBus)
	if err != nil {
		return fmt.Errorf("failed to create job queue: %w", err)
	}

	listener, err := net.ListenTCP("tcp", &net.TCPAddr{Port: cfg.Port})
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", cfg.Port, err)
	}

	var spawner *process.ExecSpawner
	if cfg.Workers > 0 {
		spawner, err = process.NewExecSpawner(listener, "worker")
		// Only the workers accept on the port; the spawner holds its own copy.
		_ = listener.Close()
		if err != nil {
			return fmt.Errorf("failed to create spawner: %w", err)
		}
		defer func() { _ = spawner.Close() }()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info.Printf("starting vidq on port %d, workers=%d, catalog=%s", cfg.Port, cfg.Workers, cfg.CatalogBackend)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return queue.Run(gctx) })

	var pool HTTPAdapter.PoolStatus
	if spawner != nil {
		coordinator := service.NewCoordinator(spawner, queue, cfg.Workers, restartPolicy(cfg))
		pool = coordinator
		g.Go(func() error { return coordinator.Run(gctx) })
	} else {
		srv := a.apiServer(service.NewQueueSubmitter(queue))
		g.Go(func() error { return serveUntilDone(gctx, srv, listener) })
	}

	if cfg.MetricsAddr != "" {
		admin := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           HTTPAdapter.NewAdminRouter(queue, pool, eventBus),
			ReadHeaderTimeout: 10 * time.Second,
			// Event streams end with the process.
			BaseContext: func(net.Listener) context.Context { return gctx },
		}
		logger.Info.Printf("metrics listening on %s", cfg.MetricsAddr)
		g.Go(func() error { return serveUntilDone(gctx, admin, nil) })
	}

	err = g.Wait()
	logger.Info.Printf("shutdown complete")
	return err
}
