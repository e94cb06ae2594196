package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fly2any/alt-airports-api/airports"
	"github.com/fly2any/alt-airports-api/api"
	"github.com/fly2any/alt-airports-api/config"
	"github.com/fly2any/alt-airports-api/db"
	"github.com/fly2any/alt-airports-api/engine"
	"github.com/fly2any/alt-airports-api/pkg/cache"
	"github.com/fly2any/alt-airports-api/pkg/logger"
	"github.com/fly2any/alt-airports-api/worker"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Config{Level: "info", Format: "text"})
		logger.Fatal(err, "Failed to load configuration")
	}

	logger.Init(logger.Config{
		Level:  cfg.LoggingConfig.Level,
		Format: cfg.LoggingConfig.Format,
	})
	logger.Info("Starting alternative airport recommendation API", "environment", cfg.Environment)

	repo := airports.Default()

	fareStore := openFareStore(cfg)
	if fareStore != nil {
		defer fareStore.Close()
	}

	cacheManager := openCache(cfg)
	liveFares := engine.NewHTTPLiveFareSource(cfg.LiveFareConfig)

	fares := engine.NewFareEstimator(fareStore, cfg.EngineConfig)
	var live engine.LiveFareSource
	if liveFares != nil {
		live = liveFares
	}
	eng := engine.New(repo, fares, cacheManager, live, cfg.EngineConfig)

	warmer := worker.NewWarmer(eng, cfg.WarmerConfig)
	if err := warmer.Start(); err != nil {
		logger.Fatal(err, "Failed to start cache warmer")
	}
	defer warmer.Stop()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.RegisterRoutes(router, eng, repo, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(err, "Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal(err, "Server forced to shutdown")
	}

	logger.Info("Server exited properly")
}

// openFareStore connects the historical fare backend. Postgres wins when
// both are configured; with neither, the engine runs heuristic-only.
func openFareStore(cfg *config.Config) db.FareHistoryStore {
	if cfg.PostgresConfig.Host != "" {
		store, err := db.NewPostgresFareStore(cfg.PostgresConfig)
		if err != nil {
			logger.Fatal(err, "Failed to connect to PostgreSQL")
		}
		logger.Info("Fare history store connected", "backend", "postgres")
		return store
	}
	if cfg.Neo4jConfig.URI != "" {
		store, err := db.NewNeo4jFareStore(cfg.Neo4jConfig)
		if err != nil {
			logger.Fatal(err, "Failed to connect to Neo4j")
		}
		logger.Info("Fare history store connected", "backend", "neo4j")
		return store
	}
	logger.Warn("No fare history store configured, estimates are heuristic-only")
	return nil
}

// openCache connects Redis for the recommendation cache. Returns nil when
// unconfigured, which the engine treats as an always-miss cache.
func openCache(cfg *config.Config) *cache.Manager {
	if cfg.RedisConfig.Host == "" {
		logger.Warn("Redis not configured, recommendation caching disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConfig.Host + ":" + cfg.RedisConfig.Port,
		Password: cfg.RedisConfig.Password,
		DB:       cfg.RedisConfig.DB,
	})
	logger.Info("Recommendation cache connected", "addr", client.Options().Addr)
	return cache.NewManager(cache.NewRedisCache(client, "altair"))
}
