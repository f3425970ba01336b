// Package main wires the HTTP server for the activity signup service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"mergington-activities/config"
	"mergington-activities/internal/observability"
	"mergington-activities/internal/repository"
	"mergington-activities/internal/usecase"
	"mergington-activities/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Repository.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, repo, timeout)

	if activities, err := uc.Activities(ctx); err == nil {
		for _, a := range activities {
			observability.SetParticipants(a.Name, len(a.Participants))
		}
	}

	serv := newServer(cfg, log, uc)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := serv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warnw("server shutdown", "error", err, "timeout", cfg.Server.ShutdownTimeout)
	}
}
