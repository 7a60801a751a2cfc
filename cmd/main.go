package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/w-h-a/textproc"
	"github.com/w-h-a/textproc/provider"
	anthropicprovider "github.com/w-h-a/textproc/provider/anthropic"
	googleprovider "github.com/w-h-a/textproc/provider/google"
	openaiprovider "github.com/w-h-a/textproc/provider/openai"
	"github.com/w-h-a/textproc/server"
	httpserver "github.com/w-h-a/textproc/server/http"
	"github.com/w-h-a/textproc/store"
	memorystore "github.com/w-h-a/textproc/store/memory"
)

var (
	cfg struct {
		// Server config
		Address string `help:"Address for the HTTP server to bind" default:":8000" env:"ADDRESS"`

		// Provider config
		Provider string `help:"LLM provider: openai, anthropic, or google" default:"openai" env:"LLM_PROVIDER"`
		APIKey   string `help:"API Key for the provider" default:"" env:"LLM_API_KEY"`
		Model    string `help:"Model identifier" default:"gpt-3.5-turbo" env:"LLM_MODEL"`

		// Store config
		Capacity int `help:"Optional cap on stored records (0 means unbounded)" default:"0" env:"STORE_CAPACITY"`
	}
)

func main() {
	// Parse inputs
	_ = godotenv.Load()
	_ = kong.Parse(&cfg)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Create provider
	var p provider.Provider
	switch cfg.Provider {
	case "openai":
		p = openaiprovider.NewProvider(
			provider.WithApiKey(cfg.APIKey),
			provider.WithModel(cfg.Model),
		)
	case "anthropic":
		p = anthropicprovider.NewProvider(
			provider.WithApiKey(cfg.APIKey),
			provider.WithModel(cfg.Model),
		)
	case "google":
		p = googleprovider.NewProvider(
			provider.WithApiKey(cfg.APIKey),
			provider.WithModel(cfg.Model),
		)
	default:
		logger.Error("unsupported LLM provider", "provider", cfg.Provider)
		os.Exit(1)
	}

	// Create store
	st := memorystore.NewStore(
		store.WithCapacity(cfg.Capacity),
	)

	// Create app
	app := textproc.New(p, st)

	// Serve
	srv := httpserver.NewServer(
		app,
		server.WithAddress(cfg.Address),
		httpserver.WithMiddleware(httpserver.LoggingMiddleware(logger)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	logger.Info("listening", "address", cfg.Address, "provider", p.Name())

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}
