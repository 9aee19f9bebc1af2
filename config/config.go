package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"
)

const (
	CatalogJSON   = "json"
	CatalogSQLite = "sqlite"
)

type Config struct {
	Port            int
	DataDir         string
	Workers         int
	CatalogBackend  string
	MaxUploadSizeMB int

	FFmpegPath  string
	FFprobePath string
	ToolTimeout time.Duration

	RestartBackoffMin  time.Duration
	RestartBackoffMax  time.Duration
	RestartStableAfter time.Duration

	MetricsAddr string
}

func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8060"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	workers, err := strconv.Atoi(getEnv("WORKERS", strconv.Itoa(runtime.GOMAXPROCS(0))))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKERS: %w", err)
	}
	if workers < 0 {
		return nil, fmt.Errorf("invalid WORKERS: must not be negative")
	}

	maxUploadSizeMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_SIZE_MB", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}

	backend := getEnv("CATALOG_BACKEND", CatalogJSON)
	if backend != CatalogJSON && backend != CatalogSQLite {
		return nil, fmt.Errorf("invalid CATALOG_BACKEND %q: want %s or %s", backend, CatalogJSON, CatalogSQLite)
	}

	toolTimeout, err := time.ParseDuration(getEnv("TOOL_TIMEOUT", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOOL_TIMEOUT: %w", err)
	}

	backoffMin, err := time.ParseDuration(getEnv("RESTART_BACKOFF_MIN", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESTART_BACKOFF_MIN: %w", err)
	}

	backoffMax, err := time.ParseDuration(getEnv("RESTART_BACKOFF_MAX", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESTART_BACKOFF_MAX: %w", err)
	}

	stableAfter, err := time.ParseDuration(getEnv("RESTART_STABLE_AFTER", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESTART_STABLE_AFTER: %w", err)
	}

	return &Config{
		Port:               port,
		DataDir:            getEnv("DATA_DIR", "./data"),
		Workers:            workers,
		CatalogBackend:     backend,
		MaxUploadSizeMB:    maxUploadSizeMB,
		FFmpegPath:         getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath:        getEnv("FFPROBE_PATH", "ffprobe"),
		ToolTimeout:        toolTimeout,
		RestartBackoffMin:  backoffMin,
		RestartBackoffMax:  backoffMax,
		RestartStableAfter: stableAfter,
		MetricsAddr:        getEnvAllowEmpty("METRICS_ADDR", ":9060"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty treats a variable set to "" as a deliberate value.
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
