package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"promptlab/internal/config"
	"promptlab/internal/http"
	"promptlab/internal/store"
)

// version is the application version reported by the health endpoint.
const version = "1.0.0"

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize the in-memory store. State is volatile by design: a restart
	// starts from an empty store.
	st := store.New()
	slog.Info("In-memory store initialized")

	// Create router with dependencies
	deps := &http.Deps{
		Store:   st,
		Version: version,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr, "version", version)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
