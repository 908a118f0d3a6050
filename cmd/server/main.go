package main

import (
	"fmt"
	"log"
	"net/http"

	"carhub/internal/config"
	handlers "carhub/internal/handlers/shared"
	"carhub/internal/middleware"
	"carhub/internal/repositories/mongodb"
	"carhub/internal/seeds"
	"carhub/internal/services"
	"carhub/routes"
	"carhub/pkg/cache"
	"carhub/pkg/database"
	"carhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := db.EnsureIndexes("cars"); err != nil {
		// Text search degrades without the index, but the API still serves
		appLogger.WithError(err).Warn("Failed to ensure catalog indexes")
	}

	// The catalog runs fine without redis; the repository just skips caching
	var carCache mongodb.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, running without cache")
		} else {
			carCache = redisCache
			defer redisCache.Close()
		}
	}

	carRepo := mongodb.NewCarRepository(db.Database, carCache)

	coordinator := services.NewSeedCoordinator(carRepo, db, appLogger, services.SeedConfig{
		Enabled:       cfg.Catalog.SeedOnStart,
		ReadyAttempts: cfg.Catalog.SeedReadyAttempts,
		ReadyInterval: cfg.Catalog.SeedReadyInterval,
		InsertTimeout: cfg.Catalog.SeedInsertTimeout,
	}, seeds.Cars)

	catalogService := services.NewCatalogService(carRepo, cfg.Catalog.FeaturedIDs)
	compareService := services.NewCompareService(carRepo)

	carHandler := handlers.NewCarHandler(catalogService, compareService, cfg.App.Debug)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	v1 := router.Group("/api/v1")
	{
		routes.SetupCarRoutes(v1, carHandler, coordinator)
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		store := "up"
		if err := db.Ping(); err != nil {
			status = "degraded"
			store = "down"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"store":   store,
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting %s on %s", cfg.App.Name, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}
