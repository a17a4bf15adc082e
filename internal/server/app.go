// Package server initializes and runs the registry server: it selects the
// storage backend, wires services into the gRPC endpoint and handles
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recmarket/internal/logging"
	"github.com/dmitrijs2005/recmarket/internal/server/config"
	"github.com/dmitrijs2005/recmarket/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recmarket/internal/server/services"
	"github.com/dmitrijs2005/recmarket/internal/timex"

	gs "github.com/dmitrijs2005/recmarket/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	repomanager     repomanager.RepositoryManager
	registryService *services.RegistryService
	imageService    *services.ImageService
}

// openPostgres is a seam for tests.
var openPostgres = repomanager.OpenPostgres

// newRepositoryManager picks the PostgreSQL backend when a DSN is configured
// and the in-memory backend otherwise.
func newRepositoryManager(ctx context.Context, c *config.Config, clock timex.Clock) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		return repomanager.NewInMemoryRepositoryManager(clock), nil
	}

	db, err := openPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	return repomanager.NewPostgresRepositoryManager(db, clock), nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	clock := timex.SystemClock{}

	rm, err := newRepositoryManager(ctx, c, clock)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rs := services.NewRegistryService(rm, logger.With("module", "registry"))
	is := services.NewImageService(rs, c, clock, logger.With("module", "images"))

	return &App{config: c, logger: logger, repomanager: rm, registryService: rs, imageService: is}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the storage backend.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "memory_store", app.config.DatabaseDSN == "")

	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config, app.logger, app.registryService, app.imageService)
	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", runErr)
	}

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(context.Background(), "storage close failed", "error", err)
	}

	app.logger.Info(context.Background(), "App stopped")
	return runErr
}
