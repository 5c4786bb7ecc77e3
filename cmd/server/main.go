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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"e-commerce.backend/internal/config"
	"e-commerce.backend/internal/infrastructure/datasources/postgres"
	"e-commerce.backend/internal/infrastructure/models"
	"e-commerce.backend/internal/infrastructure/queue"
	"e-commerce.backend/internal/infrastructure/repositories"
	"e-commerce.backend/internal/interfaces/http/handlers"
	"e-commerce.backend/internal/interfaces/http/middleware"
	"e-commerce.backend/internal/usecases"
	"e-commerce.backend/pkg/jwt"
	"e-commerce.backend/pkg/logger"
	"e-commerce.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	openDB          = postgres.NewConnection
	newSessionStore = redis.NewSessionStore
	runServer       = serveUntilDone
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

// serveUntilDone blocks until the server fails or ctx is cancelled, then drains it
func serveUntilDone(ctx context.Context, srv *http.Server) error {
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

func runMainProcess() error {
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
	defer redis.Close()
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Connected to database", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	if err := handlers.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	goodRepo := repositories.NewGoodRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	uow := repositories.NewUnitOfWork(db)

	if cfg.Database.AutoMigrate {
		if err := models.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		if err := categoryRepo.EnsureDefaults(ctx); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		logger.Info(ctx, "Schema migrated")
	}

	sessionStore, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	emailQueue := queue.NewRedisQueue(cfg.Notifications.Queue, cfg.Notifications.MaxAttempts).
		WithRetryBackoff(cfg.Notifications.RetryBackoff, cfg.Notifications.MaxRetryBackoff)
	notifier := usecases.NewNotificationUsecase(emailQueue, cfg.Mail.From)

	authUsecase := usecases.NewAuthUsecase(userRepo, sessionStore, jwtService, notifier, usecases.AuthConfig{
		PublicURL:    cfg.App.PublicURL,
		TokenSecret:  cfg.JWT.Secret,
		VerifyExpiry: cfg.JWT.VerifyExpiry,
		ResetExpiry:  cfg.JWT.ResetExpiry,
	})
	adminUsecase := usecases.NewAdminUsecase(userRepo, notifier)
	catalogUsecase := usecases.NewCatalogUsecase(goodRepo, categoryRepo, uow)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, goodRepo, uow, notifier)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics, err := middleware.NewHTTPMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register http metrics: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(httpMetrics.Middleware())

	applyCORSMiddleware(r, cfg.App.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r, registry)
	registerRoutes(r, routeDeps{
		authHandler: handlers.NewAuthHandler(authUsecase, handlers.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			MaxAge: int(cfg.JWT.SessionExpiry.Seconds()),
		}),
		adminHandler:     handlers.NewAdminHandler(adminUsecase),
		goodsHandler:     handlers.NewGoodsHandler(catalogUsecase),
		ordersHandler:    handlers.NewOrdersHandler(orderUsecase),
		sessionAuth:      middleware.SessionAuthMiddleware(authUsecase, cfg.Session.CookieName),
		authRateLimit:    middleware.RateLimitMiddleware(middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)),
		allowSelfPromote: cfg.App.AllowSelfPromote,
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(ctx, "E-commerce backend starting", zap.String("port", cfg.Server.Port))
	if err := runServer(runCtx, srv); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info(ctx, "Server stopped")
	return nil
}
