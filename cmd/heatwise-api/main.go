package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heatwise-api/internal/config"
	"heatwise-api/internal/database"
	httpapi "heatwise-api/internal/http"
	"heatwise-api/internal/logger"
	"heatwise-api/internal/repository"
	"heatwise-api/internal/service"
	"heatwise-api/internal/store"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Local dev convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "heatwise-api")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	cache := store.NewListCache(store.NewRedisKV(redisClient), log)

	var (
		db            *sql.DB
		companiesRepo repository.CompaniesRepository
		sitesRepo     repository.SitesRepository
	)
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("database connected", zap.String("host", cfg.Database.Host))
		} else {
			log.Warn("database unavailable, falling back to in-memory repositories", zap.Error(err))
		}
	}
	if db != nil {
		companiesRepo = repository.NewPostgresCompaniesRepository(db)
		sitesRepo = repository.NewPostgresSitesRepository(db)
	} else {
		companiesRepo = repository.NewMemoryCompaniesRepository()
		sitesRepo = repository.NewMemorySitesRepository()
	}

	companySvc := service.NewCompanyService(companiesRepo, cache, log)
	siteSvc := service.NewSiteService(sitesRepo, cache, log)
	checker := service.NewSiteChecker(siteSvc, log)

	router := httpapi.NewRouter(log)
	router.RegisterCompanyRoutes(httpapi.NewCompanyHandler(companySvc, log))
	router.RegisterSiteRoutes(httpapi.NewSiteHandler(siteSvc, checker, log))

	limiter := httpapi.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	handler := httpapi.RequestID(httpapi.AccessLog(log, limiter.Middleware(router)))

	srv := service.NewServer(cfg.HTTP.Addr, handler, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
	_ = redisClient.Close()
	if db != nil {
		_ = db.Close()
	}
}
