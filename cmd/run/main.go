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

	"github.com/pollwise/poll-service/internal/app"
	"github.com/pollwise/poll-service/internal/config"
	"github.com/pollwise/poll-service/utils"
)

func main() {
	cfg := config.Load("config/local.yaml")

	log := utils.New(cfg.Env)

	application := app.NewApp(log, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := application.HTTPServer.Run(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("HTTP server closed gracefully")
			} else {
				log.Error("failed to run HTTP server", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
	}()

	log.Info("poll service started", slog.String("env", cfg.Env), slog.Int("port", cfg.HTTP.Port))

	<-ctx.Done()

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Error("failed to stop application", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
