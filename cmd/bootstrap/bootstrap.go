package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"clinic-records-api/config"
	deliveryHttp "clinic-records-api/internal/delivery/http"
	"clinic-records-api/internal/delivery/http/handler"
	"clinic-records-api/internal/delivery/http/middleware"
	"clinic-records-api/internal/domain/repository"
	"clinic-records-api/internal/infrastructure/database"
	"clinic-records-api/internal/repository/memory"
	"clinic-records-api/internal/repository/mongodb"
	"clinic-records-api/internal/repository/postgres"
	"clinic-records-api/internal/service"
	"clinic-records-api/internal/usecase"
	"clinic-records-api/pkg/hash"
	"clinic-records-api/pkg/messages"
	"clinic-records-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config    *config.Config
	Log       *logrus.Logger
	Store     *repository.Store
	Server    *http.Server
	accessLog io.Closer
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
	log := setupLogger(cfg.Log)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Load message catalog
	catalog, err := messages.Load(cfg.Messages.Locale, cfg.Messages.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	// Initialize store
	store, err := openStore(context.Background(), cfg, log)
	if err != nil {
		return nil, err
	}
	app.Store = store
	log.WithField("driver", cfg.DB.Driver).Info("Store ready")

	// Initialize all layers
	app.Server, app.accessLog = initializeServer(cfg, log, store, catalog)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// openStore connects the backend selected by DB_DRIVER and prepares its
// schema.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*repository.Store, error) {
	switch cfg.DB.Driver {
	case config.DriverMongo:
		client, err := database.NewMongoConnection(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		indexCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
		defer cancel()
		if err := mongodb.EnsureIndexes(indexCtx, client.Database(cfg.Mongo.Database)); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return mongodb.NewStore(client, cfg.Mongo.Database), nil

	case config.DriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err := postgres.AutoMigrate(db); err != nil {
			return nil, err
		}
		return postgres.NewStore(db), nil

	case config.DriverMemory:
		log.Warn("Using in-memory store; data is lost on exit")
		return memory.NewStore()

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, store *repository.Store, catalog *messages.Catalog) (*http.Server, io.Closer) {
	// Initialize validator
	customValidator := validator.NewValidator(catalog.Locale())

	// Initialize services
	auditService := service.NewAuditService(log)
	hasher := hash.NewPasswordHasher(cfg.Security.BcryptCost)

	// Initialize usecases
	userUsecase := usecase.NewUserUsecase(log, store.Users, store.LabTests, auditService, hasher, cfg.App.EmptyListAsError)
	labTestUsecase := usecase.NewLabTestUsecase(log, store.LabTests, store.Users, auditService, cfg.App.EmptyListAsError)

	// Initialize handlers
	userHandler := handler.NewUserHandler(log, userUsecase, customValidator, catalog)
	labTestHandler := handler.NewLabTestHandler(log, labTestUsecase, customValidator, catalog)
	healthHandler := handler.NewHealthHandler(log, store.Ping, catalog)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigins)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log, catalog)

	// Initialize router
	router := deliveryHttp.NewRouter(userHandler, labTestHandler, healthHandler, corsMiddleware, recoveryMiddleware)
	httpHandler, accessLog := middleware.AccessLog(log, router.Setup())

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpHandler,
	}, accessLog
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.App.ShutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close(ctx)

	app.Log.Info("Server shutdown complete")
}

// Close releases the store and the access log writer
func (app *App) Close(ctx context.Context) {
	if app.Store != nil {
		if err := app.Store.Close(ctx); err != nil {
			app.Log.Warnf("Failed to close store: %+v", err)
		}
	}

	if app.accessLog != nil {
		app.accessLog.Close()
	}
}
