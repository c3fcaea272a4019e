package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpapi "github.com/executor-balancer/executor-balancer/internal/api/http"
	appBalancer "github.com/executor-balancer/executor-balancer/internal/application/balancer"
	appExecutor "github.com/executor-balancer/executor-balancer/internal/application/executor"
	appRequest "github.com/executor-balancer/executor-balancer/internal/application/request"
	appRule "github.com/executor-balancer/executor-balancer/internal/application/rule"
	appStats "github.com/executor-balancer/executor-balancer/internal/application/stats"
	"github.com/executor-balancer/executor-balancer/internal/config"
	"github.com/executor-balancer/executor-balancer/internal/domain/matching"
	"github.com/executor-balancer/executor-balancer/internal/infrastructure/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// repositories
	execRepo := postgres.NewExecutorRepository(pool)
	requestRepo := postgres.NewRequestRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	ruleRepo := postgres.NewRuleRepository(pool)

	// services
	executorSvc := appExecutor.NewService(execRepo, logger)
	requestSvc := appRequest.NewService(requestRepo, logger)
	ruleSvc := appRule.NewService(ruleRepo, logger)
	balancerSvc := appBalancer.NewService(execRepo, requestRepo, assignmentRepo, assignmentRepo, ruleRepo, matching.DefaultWeights(), logger)
	statsSvc := appStats.NewService(execRepo, cfg.StatsCacheTTL, logger)

	// API server
	apiServer := httpapi.NewServer(executorSvc, requestSvc, ruleSvc, balancerSvc, statsSvc)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      apiServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("http server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
}
