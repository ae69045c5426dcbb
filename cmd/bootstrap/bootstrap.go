package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-landing/config"
	deliveryHttp "dental-landing/internal/delivery/http"
	"dental-landing/internal/delivery/http/handler"
	"dental-landing/internal/delivery/http/middleware"
	"dental-landing/internal/domain/entity"
	domainRepo "dental-landing/internal/domain/repository"
	"dental-landing/internal/infrastructure/cache"
	"dental-landing/internal/repository"
	"dental-landing/internal/service"
	"dental-landing/internal/usecase"
	"dental-landing/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Registry    *service.ViewRegistry
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()

	// Build the region store; a bad catalog stops startup
	locationRepo, err := repository.NewLocationRepository(repository.DefaultCatalog(), customValidator)
	if err != nil {
		return nil, fmt.Errorf("failed to build region store: %w", err)
	}

	// Initialize Redis snapshot store (optional)
	var viewStateRepo domainRepo.ViewStateRepository
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		viewStateRepo = repository.NewViewStateRepository(redisClient, cfg.Redis.SnapshotTTL)
		logrus.Info("Redis connected successfully")
	} else {
		viewStateRepo = repository.NewNoopViewStateRepository()
		logrus.Info("Redis not configured, views are kept in memory only")
	}

	app.Registry = service.NewViewRegistry(service.ViewRegistryConfig{
		ServiceWindow:    cfg.Carousel.ServiceWindow,
		AutoplayInterval: cfg.Carousel.AutoplayInterval,
		IdleTimeout:      cfg.View.IdleTimeout,
		SweepInterval:    cfg.View.SweepInterval,
	}, locationRepo, viewStateRepo, log)

	app.Server = initializeServer(cfg, log, locationRepo, app.Registry, customValidator)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	locationRepo domainRepo.LocationRepository,
	registry *service.ViewRegistry,
	customValidator *validator.CustomValidator,
) *http.Server {
	// An unknown default region falls back to chile inside the usecase
	defaultRegion, err := entity.ParseRegion(cfg.App.DefaultRegion)
	if err != nil {
		log.Warnf("Unknown APP_DEFAULT_REGION %q, using %s", cfg.App.DefaultRegion, entity.RegionChile)
	}

	// Initialize usecases
	landingUsecase := usecase.NewLandingUsecase(log, locationRepo, registry, defaultRegion)

	// Initialize handlers
	landingHandler := handler.NewLandingHandler(landingUsecase, customValidator)
	pageHandler := handler.NewPageHandler(landingUsecase, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(landingHandler, pageHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close unmounts every view (disarming their autoplay timers) and closes Redis
func (app *App) Close() {
	if app.Registry != nil {
		app.Registry.Stop()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
