package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/vidq/config"
	"github.com/bnema/vidq/internal/adapter/converter/ffmpeg"
	HTTPAdapter "github.com/bnema/vidq/internal/adapter/http"
	"github.com/bnema/vidq/internal/adapter/storage/jsonfile"
	sqlitestore "github.com/bnema/vidq/internal/adapter/storage/sqlite"
	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/infrastructure/logger"
	"github.com/bnema/vidq/internal/port"
	"github.com/bnema/vidq/internal/service"
)

const shutdownTimeout = 30 * time.Second

// app holds what the primary and the workers share: the catalog, the
// transcoder and the storage layout.
type app struct {
	cfg       *config.Config
	catalog   port.Catalog
	converter *ffmpeg.Converter
	layout    domain.Layout
	uploadDir string
	closeFn   func() error
}

func newApp(cfg *config.Config) (*app, error) {
	layout := domain.NewLayout(filepath.Join(cfg.DataDir, "storage"))
	uploadDir := filepath.Join(cfg.DataDir, "tmp")
	for _, dir := range []string{cfg.DataDir, layout.Root, uploadDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	catalog, closeFn, err := openCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s catalog: %w", cfg.CatalogBackend, err)
	}

	return &app{
		cfg:       cfg,
		catalog:   catalog,
		converter: newConverter(cfg),
		layout:    layout,
		uploadDir: uploadDir,
		closeFn:   closeFn,
	}, nil
}

func (a *app) close() {
	if err := a.closeFn(); err != nil {
		logger.Warn.Printf("close catalog: %v", err)
	}
}

func openCatalog(cfg *config.Config) (port.Catalog, func() error, error) {
	switch cfg.CatalogBackend {
	case config.CatalogSQLite:
		store, err := sqlitestore.NewStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		store, err := jsonfile.NewStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() error { return nil }, nil
	}
}

// openQueueCatalog opens a second handle on the catalog for the job queue.
// Its refreshes then never discard records the API has put but not saved.
func (a *app) openQueueCatalog() (port.Catalog, func() error, error) {
	catalog, closeFn, err := openCatalog(a.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open queue catalog: %w", err)
	}
	return catalog, closeFn, nil
}

func newConverter(cfg *config.Config) *ffmpeg.Converter {
	return ffmpeg.NewConverter(ffmpeg.Options{
		FFmpegPath:  cfg.FFmpegPath,
		FFprobePath: cfg.FFprobePath,
		Timeout:     cfg.ToolTimeout,
	})
}

// apiServer builds the public API around submitter, which decides where
// resize jobs go.
func (a *app) apiServer(submitter port.Submitter) *http.Server {
	videoSvc := service.NewVideoService(a.catalog, a.converter, submitter, a.layout)
	return &http.Server{
		Handler:           HTTPAdapter.NewServer(videoSvc, a.uploadDir, a.cfg.MaxUploadSizeMB),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}
}

func restartPolicy(cfg *config.Config) service.RestartPolicy {
	policy := service.DefaultRestartPolicy()
	policy.StableAfter = cfg.RestartStableAfter
	if cfg.RestartBackoffMin > 0 {
		policy.Backoff = service.NewBackoff(cfg.RestartBackoffMin, cfg.RestartBackoffMax, 2.0)
	}
	return policy
}

// serveUntilDone serves on l, or on srv.Addr when l is nil, and shuts the
// server down gracefully once ctx is cancelled.
func serveUntilDone(ctx context.Context, srv *http.Server, l net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		var err error
		if l != nil {
			err = srv.Serve(l)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errc <- err
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("http shutdown error: %v", err)
	}
	return <-errc
}
