package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"e-commerce.backend/internal/config"
	"e-commerce.backend/internal/infrastructure/jobs"
	"e-commerce.backend/internal/infrastructure/mailer"
	"e-commerce.backend/internal/infrastructure/queue"
	"e-commerce.backend/pkg/logger"
	"e-commerce.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	newSender  = mailer.New
	runMetrics = serveMetrics
)

func main() {
	if err := runWorker(); err != nil {
		log.Fatal(err)
	}
}

// serveMetrics exposes /metrics until ctx is cancelled
func serveMetrics(ctx context.Context, srv *http.Server) error {
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
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func runWorker() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()

	emailQueue := queue.NewRedisQueue(cfg.Notifications.Queue, cfg.Notifications.MaxAttempts).
		WithRetryBackoff(cfg.Notifications.RetryBackoff, cfg.Notifications.MaxRetryBackoff)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	stats, err := jobs.NewQueueStatsJob(emailQueue, cfg.Notifications.WorkerID, cfg.Notifications.StatsSchedule, registry)
	if err != nil {
		return fmt.Errorf("failed to register queue metrics: %w", err)
	}
	if err := stats.Start(); err != nil {
		return fmt.Errorf("invalid queue stats schedule %q: %w", cfg.Notifications.StatsSchedule, err)
	}
	defer stats.Stop()

	delivery := jobs.NewEmailDeliveryJob(emailQueue, newSender(cfg.Mail), cfg.Notifications.WorkerID, cfg.Notifications.PollTimeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		// not tied to the signal context so an in-flight email is acked before exit
		delivery.Start(ctx)
	}()

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              ":" + cfg.Notifications.WorkerMetricsPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(ctx, "Email worker started",
		zap.String("worker_id", cfg.Notifications.WorkerID),
		zap.String("queue", cfg.Notifications.Queue),
		zap.String("metrics_port", cfg.Notifications.WorkerMetricsPort),
	)
	serveErr := runMetrics(runCtx, srv)

	delivery.Stop()
	<-done
	logger.Info(ctx, "Email worker stopped")

	if serveErr != nil {
		return fmt.Errorf("metrics server failed: %w", serveErr)
	}
	return nil
}
