package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coinledger/internal/config"
	"github.com/GlebRadaev/coinledger/internal/handlers"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/GlebRadaev/coinledger/internal/ratelimit"
	"github.com/GlebRadaev/coinledger/internal/repo"
	"github.com/GlebRadaev/coinledger/internal/service"
	"github.com/GlebRadaev/coinledger/internal/sweeper"
	"github.com/GlebRadaev/coinledger/pkg/logger"
)

const (
	rateLimitWindow = time.Minute
	rateLimitPrefix = "coinledger:ads"
	shutdownTimeout = 5 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	sweeper *sweeper.Service

	closers []closer
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

type closer struct {
	name string
	fn   func() error
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	rateLimit, err := a.rateLimiter(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv, err = service.New(a.repo, txManager, cfg)
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	a.api = handlers.New(a.srv, rateLimit)
	a.sweeper = sweeper.New(cfg, a.repo.SessionRepo, a.repo.AdsRepo)

	a.closers = append(a.closers, closer{name: "postgres", fn: func() error {
		pool.Close()
		return nil
	}})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSweeper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// rateLimiter returns nil when no Redis address is configured, which leaves
// the public ad endpoints unthrottled.
func (a *Application) rateLimiter(ctx context.Context, cfg *config.Config) (func(http.Handler) http.Handler, error) {
	if cfg.RedisAddress == "" {
		zap.L().Info("redis address not set, ad endpoints are not rate limited")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	a.closers = append(a.closers, closer{name: "redis", fn: rdb.Close})

	limiter := ratelimit.New(rdb, cfg.RateLimit, rateLimitWindow, rateLimitPrefix)
	return limiter.Middleware, nil
}

// closeResources runs after the HTTP server has drained, newest first.
func (a *Application) closeResources() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.fn(); err != nil {
			zap.L().Warn("close failed", zap.String("resource", c.name), zap.Error(err))
		}
	}
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown failed", zap.Error(err))
		}
		a.closeResources()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSweeper(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sweeper.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
