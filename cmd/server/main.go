package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/infilects/client-admin/internal/api"
	"github.com/infilects/client-admin/internal/api/handler"
	"github.com/infilects/client-admin/internal/core/service"
	mongodb "github.com/infilects/client-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/infilects/client-admin/internal/infrastructure/db/redis"
	"github.com/infilects/client-admin/internal/infrastructure/queue"
	"github.com/infilects/client-admin/internal/pkg/config"
	"github.com/infilects/client-admin/pkg/logger"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := clientRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create client indexes")
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	assignmentSvc := service.NewAssignmentService(clientRepo, userRepo, log)
	clientSvc := service.NewClientService(clientRepo, assignmentSvc, log)
	userSvc := service.NewUserService(userRepo, log)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)

	reconciler := queue.NewReconciler(
		cfg.ReconcileWorkers,
		assignmentSvc,
		redisdb.NewReconcileDedup(redisClient),
		log,
	)
	reconciler.Start(ctx)

	e := api.NewRouter(api.Deps{
		JWTSecret: cfg.JWTSecret,
		Log:       log,
		Auth:      handler.NewAuthHandler(authSvc, log),
		Clients:   handler.NewClientHandler(clientSvc, assignmentSvc, userSvc, reconciler, log),
		Users:     handler.NewUserHandler(userSvc, log),
		Pages:     handler.NewPageHandler(userSvc, clientSvc, cfg.AdminEmail, log),
		Health:    handler.NewHealthHandler(mongoClient, redisClient),
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	cancel() // stop reconcile workers

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
