package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkline/storefront/internal/app/migrate"
	httpx "github.com/mkline/storefront/internal/http"
	"github.com/mkline/storefront/internal/repository/postgres"
	"github.com/mkline/storefront/internal/service/auth"
	"github.com/mkline/storefront/internal/service/employee"
	"github.com/mkline/storefront/internal/service/product"
	"github.com/mkline/storefront/internal/session"
	"github.com/mkline/storefront/pkg/config"
	"github.com/mkline/storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("api", 0).Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New("api", logger.ParseLevel(cfg.Common.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	runner, err := migrate.New(pool, cfg.Postgres.DSN, cfg.Postgres.MigrationsDir, log)
	if err != nil {
		log.Error("failed to configure migrations", "error", err)
		os.Exit(1)
	}
	defer runner.Close()
	if err := runner.Ping(ctx); err != nil {
		log.Error("database ping failed", "error", err)
		os.Exit(1)
	}
	if err := runner.Ensure(ctx); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	repo := postgres.New(pool)

	store := session.Store(nil)
	if addr := strings.TrimSpace(cfg.Session.RedisAddr); addr != "" {
		redisStore, err := session.NewRedisStore(addr, cfg.Session.RedisPassword, cfg.Session.RedisDB, cfg.Session.TTL)
		if err != nil {
			log.Warn("redis session store unavailable, using memory store", "error", err)
		} else {
			store = redisStore
		}
	}
	if store == nil {
		store = session.NewMemoryStore(cfg.Session.TTL)
	}
	defer store.Close()
	sessions := session.NewManager(store, cfg.Session.TTL, cfg.Session.CookieName, cfg.Session.CookieSecure)

	authSvc := auth.New(repo, log, cfg.Auth.PasswordPepper)
	productSvc := product.New(repo, log)
	employeeSvc := employee.New(repo, log)

	limiter := httpx.NewMemoryRateLimiter()
	if addr := strings.TrimSpace(cfg.Session.RedisAddr); addr != "" {
		redisLimiter, err := httpx.NewRedisRateLimiter(addr, cfg.Session.RedisPassword, cfg.Session.RedisDB, log)
		if err != nil {
			log.Warn("redis rate limiter unavailable", "error", err)
		} else {
			limiter = redisLimiter
		}
	}

	limits := httpx.RateLimits{Signup: cfg.RateLimit.SignupPerMinute, Signin: cfg.RateLimit.SigninPerMinute}
	router := httpx.NewRouter(log, authSvc, productSvc, employeeSvc, sessions, limiter, limits, pool.Ping)
	defer router.Close()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("api server starting", "addr", cfg.HTTP.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("api server stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
