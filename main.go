package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lease-calculator/config"
	"lease-calculator/domain"
	httpLayer "lease-calculator/http"
	"lease-calculator/logger"
	"lease-calculator/repository"
	"lease-calculator/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("invalid configuration: " + err.Error())
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()
	log := logger.Log

	if cfg.Stage == logger.ProdStage {
		gin.SetMode(gin.ReleaseMode)
	}

	fees := domain.DefaultFeeTable()
	if cfg.FeeTablePath != "" {
		fees, err = repository.LoadFeeTable(cfg.FeeTablePath)
		if err != nil {
			log.Fatal("Failed to load fee table", zap.String("path", cfg.FeeTablePath), zap.Error(err))
		}
	}
	log.Info("Fee table loaded", zap.Int("manufacturers", len(fees)))

	var cache repository.CacheRepository
	if cfg.RedisAddr == "" {
		memoryCache := repository.NewMemoryCache()
		defer memoryCache.Stop()
		cache = memoryCache
	} else {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Warn("Redis unreachable, lease results will not be cached until it recovers",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		cancel()
		cache = redisCache
	}

	leaseService := service.NewLeaseService(fees, cache, cfg.CacheTTL)
	leaseHandler := httpLayer.NewLeaseHandler(leaseService, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(leaseHandler, rateLimiter, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Lease calculator listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("Error starting server", zap.Error(err))
		return
	case <-quit:
		log.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Error during server shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
