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

	"github.com/GoSim-25-26J-441/aqualab-backend/config"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/api/http/routes"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/analysis"
	exphttp "github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/http"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/repository"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/service"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/logger"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/reasoning"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/storage/postgres"
	redisstore "github.com/GoSim-25-26J-441/aqualab-backend/internal/storage/redis"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/users"
)

const serviceName = "aqualab-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres
	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	defer db.Close()

	// Redis is optional: without it updates are not broadcast and the
	// event stream route is not served.
	var events *repository.EventPublisher
	rdb, err := redisstore.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, experiment events disabled", "error", err, "addr", cfg.Redis.Addr)
	} else {
		defer rdb.Close()
		events = repository.NewEventPublisher(rdb)
	}

	// Repos
	experimentRepo := repository.NewExperimentRepository(db)
	bankRepo := repository.NewBankRepository(db)
	userRepo := users.NewRepo(db)

	// Reasoning
	completer := reasoning.NewOpenAIClient(cfg.Reasoning)
	assessor := analysis.NewAssessmentGenerator(reasoning.Instrument(completer, "assessment"))
	matcher := analysis.NewSimilarityMatcher(reasoning.Instrument(completer, "similarity"), bankRepo, cfg.Similarity.MaxSamples, cfg.Similarity.BankTimeout)

	// Services
	experimentService := service.NewExperimentService(experimentRepo)
	var (
		publisher service.EventPublisher
		source    exphttp.EventSource
	)
	if events != nil {
		publisher, source = events, events
	}
	updateService := service.NewUpdateService(experimentRepo, assessor, matcher, publisher, log)
	expHandler := exphttp.New(updateService, experimentService, source, log)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		DB:             db,
		Redis:          rdb,
		Log:            log,
		Routes: routes.Deps{
			Experiments: expHandler,
			Users:       users.NewHandler(userRepo, log),
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Shutdown waits for in-flight requests but not for open event streams.
	srv.RegisterOnShutdown(expHandler.Close)

	go func() {
		log.Info("listening", "addr", srv.Addr, "env", cfg.App.Environment, "model", cfg.Reasoning.Model)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
