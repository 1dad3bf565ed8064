package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	account_service "blog-service/internal/application/service/account"
	auth_service "blog-service/internal/application/service/auth"
	post_service "blog-service/internal/application/service/post"
	account_port "blog-service/internal/domain/ports/input/account"
	post_port "blog-service/internal/domain/ports/input/post"
	session_store "blog-service/internal/domain/ports/output/session"
	"blog-service/internal/infrastructure/config"
	http_server "blog-service/internal/infrastructure/inbound/http"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
	metrics_server "blog-service/internal/infrastructure/inbound/metrics"
	"blog-service/internal/infrastructure/logger"
	redis_cache "blog-service/internal/infrastructure/outbound/cache/redis"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository"
	bcrypt_hasher "blog-service/internal/infrastructure/outbound/security/bcrypt"
	session_memory "blog-service/internal/infrastructure/outbound/session/memory"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	store, err := repository.Open(ctx, cfg, log, metrics)
	if err != nil {
		log.Error("Failed to open storage", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	var redisClient *redis_cache.Client
	if cfg.RedisEnabled() {
		log.Info("Connecting to Redis",
			slog.String("address", cfg.Redis.Address),
			slog.Int("port", cfg.Redis.Port),
			slog.Int("db", cfg.Redis.DB))
		redisClient, err = redis_cache.NewClient(cfg.Redis, log, metrics)
		if err != nil {
			log.Error("Failed to create Redis client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		}()
	}

	hasher := bcrypt_hasher.NewHasher(cfg.Security.BcryptCost)

	var accountService account_port.Service = account_service.NewAccountService(store.Accounts, store.UOW, hasher, log, metrics)
	var postService post_port.Service = post_service.NewPostService(store.Posts, store.Comments, store.Accounts, store.UOW, log, metrics)

	if cfg.Storage.CacheEnabled {
		postCache := redis_cache.NewPostCache(redisClient, log)
		accountCache := redis_cache.NewAccountCache(redisClient, log)
		accountService = account_service.NewAccountServiceCacheDecorator(accountService, accountCache, postCache, log)
		postService = post_service.NewPostServiceCacheDecorator(postService, postCache, log)
		log.Info("Read-through caching enabled")
	}

	var sessions session_store.Store
	switch cfg.Session.Driver {
	case config.SessionRedis:
		sessions = redis_cache.NewSessionStore(redisClient, log)
	default:
		sessions = session_memory.NewStore()
	}

	authService := auth_service.NewAuthService(sessions, accountService, cfg.Session.Secret, cfg.Session.TTL, log, metrics)

	blogAPI := blog_http.NewBlogHTTPService(accountService, postService, authService, blog_http.NewValidator(), log, cfg.Blog.PageSize)
	httpServer, err := http_server.NewServer(cfg.HTTPServer, cfg.Session, blogAPI, authService, log, metrics)
	if err != nil {
		log.Error("Failed to create HTTP server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	metrics.SetServiceHealth(true)

	reportCtx, stopReporting := context.WithCancel(ctx)
	defer stopReporting()
	go authService.ReportActiveSessions(reportCtx, time.Minute)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")
	stopReporting()

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
