package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/YusovID/review-assigner/internal/assignment"
	"github.com/YusovID/review-assigner/internal/config"
	"github.com/YusovID/review-assigner/internal/repository/postgres"
	"github.com/YusovID/review-assigner/internal/service"
	myhttp "github.com/YusovID/review-assigner/internal/transport/http"
	"github.com/YusovID/review-assigner/pkg/logger/sl"
	"github.com/YusovID/review-assigner/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting review-assigner",
		slog.String("env", cfg.Env),
		slog.String("db_driver", cfg.Postgres.Driver),
	)

	db, err := postgres.NewDB(ctx, cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("failed to init db: %w", err)
	}

	defer func() {
		if err := db.Close(); err != nil {
			log.Error("db close failed", sl.Err(err))
		}
	}()

	teamRepo := postgres.NewTeamRepository(db.DB(), log)
	userRepo := postgres.NewUserRepository(db.DB(), log)
	prRepo := postgres.NewPullRequestRepository(db.DB(), log)
	statsRepo := postgres.NewStatsRepository(db.DB(), log)

	picker := assignment.NewRandomPicker()

	srv := myhttp.NewServer(
		log,
		service.NewTeamService(db.DB(), log, teamRepo, userRepo, prRepo, prRepo, picker),
		service.NewUserService(userRepo, log),
		service.NewPullRequestService(db.DB(), log, prRepo, prRepo, userRepo, picker),
		service.NewStatsService(statsRepo),
		db,
	)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)

	go startServer(log, httpServer, errChan)

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	log.Info("server stopped")

	return nil
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan<- error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- fmt.Errorf("error listening and serving: %w", err)
	}
}
