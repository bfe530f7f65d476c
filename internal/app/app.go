package app

import (
	"context"
	"log/slog"

	httpapp "github.com/pollwise/poll-service/internal/app/http"
	"github.com/pollwise/poll-service/internal/config"
	"github.com/pollwise/poll-service/internal/handlers"
	"github.com/pollwise/poll-service/internal/middleware"
	"github.com/pollwise/poll-service/internal/repo/postgres"
	"github.com/pollwise/poll-service/internal/services"
)

type App struct {
	HTTPServer *httpapp.App
	Polling    *services.Polling
	storage    *postgres.Storage
}

func NewApp(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgres.New(cfg.StoragePath)
	if err != nil {
		panic(err)
	}

	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.AppSecret)

	pollingService := services.NewPolling(log, storage, storage, storage, storage)
	votingHandler := handlers.NewVotingHandler(log, pollingService)

	httpApp := httpapp.NewApp(
		log,
		cfg.HTTP.Port,
		cfg.HTTP.AllowedOrigins,
		votingHandler,
		authMiddleware.RequireAuth(),
		authMiddleware.OptionalAuth(),
	)

	return &App{
		HTTPServer: httpApp,
		Polling:    pollingService,
		storage:    storage,
	}
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.HTTPServer.Stop(ctx); err != nil {
		return err
	}
	return a.storage.Close()
}
