package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/vidq/config"
	"github.com/bnema/vidq/internal/adapter/storage/jsonfile"
	"github.com/bnema/vidq/internal/domain"
	sqlitestore "github.com/bnema/vidq/internal/adapter/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_CreatesDirectories(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	a, err := newApp(&config.Config{DataDir: dataDir, CatalogBackend: config.CatalogJSON})
	require.NoError(t, err)
	defer a.close()

	for _, dir := range []string{dataDir, filepath.Join(dataDir, "storage"), filepath.Join(dataDir, "tmp")} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
	assert.Equal(t, filepath.Join(dataDir, "storage"), a.layout.Root)
}

func TestOpenCatalog(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		catalog, closeFn, err := openCatalog(&config.Config{DataDir: t.TempDir(), CatalogBackend: config.CatalogJSON})
		require.NoError(t, err)
		assert.IsType(t, &jsonfile.Store{}, catalog)
		assert.NoError(t, closeFn())
	})

	t.Run("sqlite", func(t *testing.T) {
		dir := t.TempDir()
		catalog, closeFn, err := openCatalog(&config.Config{DataDir: dir, CatalogBackend: config.CatalogSQLite})
		require.NoError(t, err)
		assert.IsType(t, &sqlitestore.Store{}, catalog)
		assert.NoError(t, closeFn())
		assert.FileExists(t, filepath.Join(dir, "vidq.db"))
	})
}

func TestQueueCatalog_RefreshKeepsUnsavedImport(t *testing.T) {
	for _, backend := range []string{config.CatalogJSON, config.CatalogSQLite} {
		t.Run(backend, func(t *testing.T) {
			a, err := newApp(&config.Config{DataDir: t.TempDir(), CatalogBackend: backend})
			require.NoError(t, err)
			defer a.close()

			queueCatalog, closeFn, err := a.openQueueCatalog()
			require.NoError(t, err)
			defer func() { _ = closeFn() }()

			// An import puts its record, the queue refreshes, then the import saves.
			v := domain.NewVideo(0, "holiday", "mp4", domain.Dimensions{Width: 640, Height: 480})
			require.NoError(t, a.catalog.Refresh())
			a.catalog.Put(v)
			require.NoError(t, queueCatalog.Refresh())
			require.NoError(t, a.catalog.Save())

			require.NoError(t, queueCatalog.Refresh())
			got, err := queueCatalog.FindByVideoID(v.VideoID)
			require.NoError(t, err)
			assert.Equal(t, "holiday", got.Name)
		})
	}
}

func TestRestartPolicy(t *testing.T) {
	policy := restartPolicy(&config.Config{RestartStableAfter: 2 * time.Minute})
	assert.Nil(t, policy.Backoff, "zero minimum restarts immediately")
	assert.Equal(t, 2*time.Minute, policy.StableAfter)

	policy = restartPolicy(&config.Config{
		RestartBackoffMin:  time.Second,
		RestartBackoffMax:  30 * time.Second,
		RestartStableAfter: time.Minute,
	})
	require.NotNil(t, policy.Backoff)
	assert.Equal(t, time.Second, policy.Backoff.Min)
	assert.Equal(t, 30*time.Second, policy.Backoff.Max)
}

func TestServeUntilDone_ShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveUntilDone(ctx, srv, l) }()

	resp, err := http.Get("http://" + l.Addr().String())
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeUntilDone_ReturnsListenError(t *testing.T) {
	srv := &http.Server{Addr: "256.0.0.1:bad"}
	err := serveUntilDone(context.Background(), srv, nil)
	assert.Error(t, err)
}
