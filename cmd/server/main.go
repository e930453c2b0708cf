package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/eldercare/backend/internal/delivery/http"
	"github.com/eldercare/backend/internal/domain"
	"github.com/eldercare/backend/internal/repository/memory"
	"github.com/eldercare/backend/internal/repository/mongo"
	"github.com/eldercare/backend/internal/repository/postgres"
	"github.com/eldercare/backend/internal/service"
	"github.com/eldercare/backend/pkg/logger"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := loadConfig()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "eldercare-backend")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if envErr != nil {
		zl.Info("No .env file found, using system environment")
	}

	jwtSecret, err := resolveJWTSecret(cfg)
	if err != nil {
		zl.Fatal("Invalid configuration", zap.Error(err))
	}
	if cfg.JWTSecret == "" {
		zl.Warn("JWT_SECRET not set, using development secret")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Dependency Injection: Repositories
	repo, closeRepo, err := openRepository(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("Could not open repository", zap.Error(err))
	}
	defer closeRepo()

	cache, closeCache := openCache(ctx, cfg, zl)
	defer closeCache()

	// Dependency Injection: Services
	healthSvc := service.NewHealthService(repo, cache, zl)
	vitalsSvc := service.NewVitalsService(nil)
	dashboardSvc := service.NewDashboardService(healthSvc, vitalsSvc, zl)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "ElderCare API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler(zl),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(http.RequestLogger(zl))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, http.NewHandler(healthSvc, vitalsSvc, dashboardSvc), http.RouteConfig{
		JWTSecret:   []byte(jwtSecret),
		RateLimiter: http.NewUserRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	// Graceful shutdown
	go func() {
		zl.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
	}
	zl.Info("Server exited gracefully")
}

func resolveJWTSecret(cfg *Config) (string, error) {
	if cfg.JWTSecret != "" {
		return cfg.JWTSecret, nil
	}
	if cfg.IsDevelopment() {
		return devJWTSecret, nil
	}
	return "", errors.New("JWT_SECRET is required outside development")
}

// openRepository selects the store by the DATABASE_URL scheme
func openRepository(ctx context.Context, cfg *Config, zl *zap.Logger) (domain.HealthLogRepository, func(), error) {
	switch {
	case strings.HasPrefix(cfg.DatabaseURL, "postgres://"), strings.HasPrefix(cfg.DatabaseURL, "postgresql://"):
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		repo := postgres.NewPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		zl.Info("Connected to PostgreSQL")
		return repo, pool.Close, nil

	case strings.HasPrefix(cfg.DatabaseURL, "mongodb://"), strings.HasPrefix(cfg.DatabaseURL, "mongodb+srv://"):
		client, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		closeClient := func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(shutdownCtx); err != nil {
				zl.Warn("Mongo disconnect failed", zap.Error(err))
			}
		}
		repo := mongo.NewMongoRepository(client.Database(cfg.MongoDatabase))
		if err := repo.EnsureIndexes(ctx); err != nil {
			closeClient()
			return nil, nil, err
		}
		zl.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))
		return repo, closeClient, nil

	case cfg.DatabaseURL == "":
		zl.Warn("DATABASE_URL not set, running with in-memory store")
		return memory.NewMemoryRepository(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unsupported DATABASE_URL scheme")
}

// openCache returns nil when REDIS_URL is unset or Redis is unreachable
func openCache(ctx context.Context, cfg *Config, zl *zap.Logger) (*service.ResponseCache, func()) {
	if cfg.RedisURL == "" {
		return nil, func() {}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zl.Warn("Invalid REDIS_URL, caching disabled", zap.Error(err))
		return nil, func() {}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		zl.Warn("Redis unreachable, caching disabled", zap.Error(err))
		_ = client.Close()
		return nil, func() {}
	}

	zl.Info("Connected to Redis", zap.Duration("ttl", cfg.CacheTTL))
	return service.NewResponseCache(service.NewRedisKVStore(client), cfg.CacheTTL, zl), func() { _ = client.Close() }
}
