package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"visuddha-service/internal/access"
	"visuddha-service/internal/auth"
	"visuddha-service/internal/config"
	"visuddha-service/internal/db"
	httphandler "visuddha-service/internal/http"
	"visuddha-service/internal/http/middleware"
	"visuddha-service/internal/logger"
	"visuddha-service/internal/repository"
	"visuddha-service/internal/service"
	"visuddha-service/internal/simulation"
	"visuddha-service/internal/socket"
	"visuddha-service/internal/views"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewClientSessionRepository(database)
	navLogRepo := repository.NewNavigationLogRepository(database)

	hub := socket.NewHub(log)
	simulator := simulation.New(cfg.Simulation.Interval, cfg.Simulation.Seed, hub, log)
	go simulator.Run(ctx)

	sessionService := service.NewSessionService(userRepo, sessionRepo)
	appService := service.NewAppService(
		sessionRepo,
		navLogRepo,
		sessionService,
		access.Policy{AnonymousAccess: cfg.Access.AnonymousDemo},
		views.NewCatalog(simulator),
		log,
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.TokenTTL)

	handler := httphandler.NewHandler(appService, tokenIssuer, hub, log)
	health := func(ctx context.Context) error { return db.HealthCheck(ctx, database) }
	router := httphandler.NewRouter(handler, middleware.Client(tokenParser), health, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("addr", addr).
		Bool("anonymous_demo", cfg.Access.AnonymousDemo).
		Msg("starting visuddha service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
	closeDB(database)
	log.Info().Msg("server stopped")
}

func closeDB(database *gorm.DB) {
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
