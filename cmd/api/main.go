package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/flightops/airdesk/internal/api"
	"github.com/flightops/airdesk/internal/app"
	"github.com/flightops/airdesk/internal/cache"
	"github.com/flightops/airdesk/internal/ports"
	"github.com/flightops/airdesk/internal/repository"
	"github.com/flightops/airdesk/internal/service"
	"github.com/flightops/airdesk/internal/utils"
	"github.com/flightops/airdesk/pkg/config"
	"github.com/flightops/airdesk/pkg/logger"
)

type App struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server
	db     *pgxpool.Pool
	cache  *cache.RedisCache
}

func NewApp(cfg *config.Config, log *zap.Logger) *App {
	return &App{
		config: cfg,
		logger: log,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := a.setupDatabase(ctx); err != nil {
		return fmt.Errorf("database setup failed: %w", err)
	}

	if err := a.migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	a.setupCache()

	if err := a.setupServer(); err != nil {
		return fmt.Errorf("server setup failed: %w", err)
	}

	return nil
}

func (a *App) setupDatabase(ctx context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	return nil
}

func (a *App) migrate(ctx context.Context) error {
	migrator, err := app.NewMigrator(a.db, a.config.Migrations.Dir, a.logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Run(ctx)
}

func (a *App) setupCache() {
	if a.config.Redis.Addr == "" {
		a.logger.Info("flight cache disabled, REDIS_ADDR not set")
		return
	}
	a.cache = cache.NewRedisCache(
		a.config.Redis.Addr,
		a.config.Redis.Password,
		a.config.Redis.DB,
		a.config.Redis.FlightTTL,
	)
}

func (a *App) setupServer() error {
	services := a.setupServices()
	router := api.NewRouter(services.FlightService, services.BookingService)

	a.server = &http.Server{
		Addr:         a.config.Server.Address,
		Handler:      utils.RequestLogger(a.logger, router),
		WriteTimeout: a.config.Server.WriteTimeout,
		ReadTimeout:  a.config.Server.ReadTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}

	return nil
}

type Services struct {
	FlightService  ports.FlightService
	BookingService ports.BookingService
}

func (a *App) setupServices() Services {
	aircraftRepo := repository.NewAircraftRepository(a.db)
	flightRepo := repository.NewFlightRepository(a.db)
	bookingRepo := repository.NewBookingRepository(a.db)

	var flightCache ports.FlightCache
	if a.cache != nil {
		flightCache = a.cache
	}

	return Services{
		FlightService:  service.NewFlightService(flightRepo, aircraftRepo, flightCache),
		BookingService: service.NewBookingService(bookingRepo, flightRepo),
	}
}

func (a *App) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("starting server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
		a.logger.Info("starting graceful shutdown")
		return a.Shutdown(ctx)
	case <-ctx.Done():
		return a.Shutdown(ctx)
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("cache close failed", zap.Error(err))
		}
	}

	if a.db != nil {
		a.db.Close()
	}

	return nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)
	defer log.Sync()

	a := NewApp(cfg, log)
	if err := a.Initialize(ctx); err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := a.Run(ctx); err != nil {
		log.Fatal("application error", zap.Error(err))
	}
}
