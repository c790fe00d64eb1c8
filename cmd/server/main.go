package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	httpapi "rechtent-backend/internal/api/http"
	"rechtent-backend/internal/cache"
	"rechtent-backend/internal/config"
	"rechtent-backend/internal/jobs"
	"rechtent-backend/internal/logger"
	"rechtent-backend/internal/repository/postgres"
	"rechtent-backend/internal/scheduler"
	"rechtent-backend/internal/security"
	"rechtent-backend/internal/service"
	"rechtent-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present; environment overrides come next from config.Load
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RechTent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize catalog cache (optional; nil client degrades to direct reads)
	var rdb *redis.Client
	if cfg.Cache.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unreachable, catalog cache disabled", "addr", cfg.Redis.Addr, "error", err)
			rdb = nil
		} else {
			logger.Info("Redis connection established", "addr", cfg.Redis.Addr)
		}
	}
	catalogCache := cache.NewCatalogCache(rdb, cache.Options{
		TTL:            cfg.CacheTTL(),
		DedupeInterval: time.Duration(cfg.Cache.DedupeMs) * time.Millisecond,
		RetryCount:     cfg.Cache.RetryCount,
		RetryDelay:     time.Duration(cfg.Cache.RetryDelayMs) * time.Millisecond,
	})

	// Initialize Storage Service
	var storageService storage.StorageInterface
	switch cfg.Storage.Type {
	case "", "mock":
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err := storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
	case "s3":
		logger.Info("Using S3 storage", "bucket", cfg.Storage.S3.Bucket, "region", cfg.Storage.S3.Region)
		s3Storage, err := storage.NewS3StorageService(
			cfg.Storage.S3.Region,
			cfg.Storage.S3.Bucket,
			cfg.Storage.S3.Endpoint,
			cfg.Storage.S3.AccessKey,
			cfg.Storage.S3.SecretKey,
		)
		if err != nil {
			logger.Error("Failed to initialize S3 storage", "error", err)
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		storageService = s3Storage
	default:
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not supported", cfg.Storage.Type)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	catalogSvc := service.NewCatalogService(store.ProductRepository, catalogCache)
	cartSvc := service.NewCartService(store.CartRepository, store.ProductRepository, store.PromoRepository, cfg.Pricing.DepositRate)
	orderSvc := service.NewOrderService(store.OrderRepository, store.CartRepository, store.UserRepository, emailSvc, cfg.Pricing.DepositRate)
	returnSvc := service.NewReturnService(store.ReturnRequestRepository, store.OrderRepository, store.UserRepository, storageService, emailSvc)
	adminSvc := service.NewAdminService(store.UserRepository, store.PromoRepository)

	// Assemble the HTTP router
	handler := httpapi.NewRouter(httpapi.RouterDeps{
		Config:     cfg,
		Tokens:     tokenManager,
		Storage:    storageService,
		AuthSvc:    authSvc,
		UserSvc:    userSvc,
		CatalogSvc: catalogSvc,
		CartSvc:    cartSvc,
		OrderSvc:   orderSvc,
		ReturnSvc:  returnSvc,
		AdminSvc:   adminSvc,
	})

	// Start the in-process scheduler
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{
		Email:  emailSvc,
		Return: returnSvc,
	}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	cronScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("Redis close error", "error", err)
		}
	}
	logger.Info("Server stopped. Goodbye!")
}
