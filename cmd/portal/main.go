package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moitfe/portal-api/internal/api"
	"github.com/moitfe/portal-api/internal/core/ports"
	"github.com/moitfe/portal-api/internal/core/service"
	"github.com/moitfe/portal-api/internal/infrastructure/config"
	memorydb "github.com/moitfe/portal-api/internal/infrastructure/db/memory"
	mongodb "github.com/moitfe/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/moitfe/portal-api/internal/infrastructure/db/redis"
	"github.com/moitfe/portal-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		recordRepo   ports.RecordRepository
		sessionStore ports.SessionStore
		mongoDB      *mongo.Database
		redisClient  *redis.Client
	)

	if cfg.Standalone {
		log.Info().Msg("running in standalone mode with in-process store")
		recordRepo = memorydb.NewRecordRepository(memorydb.Options{
			ReadDelay:  cfg.Store.ReadDelay,
			WriteDelay: cfg.Store.WriteDelay,
		})
		sessionStore = memorydb.NewSessionStore()
	} else {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongodb connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		mongoDB = db

		repo := mongodb.NewRecordRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("index creation failed")
		}
		recordRepo = repo

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		redisClient = rdb
		sessionStore = redisdb.NewSessionStore(rdb)
	}

	users := memorydb.NewUserRepository()
	records := service.NewRecordService(recordRepo, log)
	sessions := service.NewSessionService(users, sessionStore, cfg.JWTSecret, cfg.SessionTTL, log)
	stats := service.NewStatsService(records)

	// Hydrate the collections before serving any record-dependent view.
	if err := records.LoadAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("record hydration failed")
	}

	e := api.NewRouter(api.Dependencies{
		Records:  records,
		Sessions: sessions,
		Users:    users,
		Stats:    stats,
		Mongo:    mongoDB,
		Redis:    redisClient,
		Logger:   log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("portal api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
