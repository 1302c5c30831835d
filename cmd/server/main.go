package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace.backend/internal/config"
	"marketplace.backend/internal/infrastructure/datasources/postgres"
	"marketplace.backend/internal/infrastructure/jobs"
	"marketplace.backend/internal/infrastructure/repositories"
	"marketplace.backend/internal/interfaces/http/handlers"
	"marketplace.backend/internal/interfaces/http/middleware"
	"marketplace.backend/internal/usecases"
	"marketplace.backend/pkg/crypto"
	"marketplace.backend/pkg/jwt"
	"marketplace.backend/pkg/logger"
	"marketplace.backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig, env string) (*gorm.DB, error) {
		sqlDB, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.NewGorm(sqlDB, env)
	}
	migrateDB = postgres.Migrate
	runServer = serveHTTP
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database, cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Connected to database", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.DBName))

	if cfg.Database.AutoMigrate {
		if err := migrateDB(db); err != nil {
			return err
		}
		logger.Info(ctx, "Schema migrated")
	}

	crypto.SetCost(cfg.Security.BcryptCost)
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderEventRepo := repositories.NewOrderEventRepository(db)
	uow := repositories.NewUnitOfWork(db)
	revokedTokens := redis.NewRevokedTokenStore()

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, merchantRepo, categoryRepo, jwtService, revokedTokens)
	serviceUsecase := usecases.NewServiceUsecase(serviceRepo, uow)
	catalogUsecase := usecases.NewCatalogUsecase(categoryRepo, merchantRepo, serviceRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, orderEventRepo, serviceRepo, uow)
	adminUsecase := usecases.NewAdminUsecase(userRepo, merchantRepo, categoryRepo)

	// Cancelled on SIGINT/SIGTERM; stops the jobs and drains the server.
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	staleJob := jobs.NewStaleOrderJob(orderUsecase, cfg.Jobs.StaleOrderTTL, cfg.Jobs.StaleSweepInterval)
	go staleJob.Start(runCtx)
	defer staleJob.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.Server.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:            handlers.NewAuthHandler(authUsecase),
		catalogHandler:         handlers.NewCatalogHandler(catalogUsecase),
		merchantServiceHandler: handlers.NewMerchantServiceHandler(serviceUsecase),
		orderHandler:           handlers.NewOrderHandler(orderUsecase),
		adminHandler:           handlers.NewAdminHandler(adminUsecase),
		authMiddleware:         middleware.AuthMiddleware(authUsecase),
		idempotencyMiddleware:  middleware.IdempotencyMiddleware(cfg.Security.IdempotencyTTL),
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	logger.Info(ctx, "Marketplace backend starting", zap.String("port", cfg.Server.Port))
	if err := runServer(runCtx, r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info(ctx, "Server stopped")
	return nil
}

// serveHTTP serves until ctx is cancelled, then shuts down gracefully.
func serveHTTP(ctx context.Context, r *gin.Engine, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
