// Package server wires the expedientes service together: storage backend,
// token service, use cases and the REST API, and runs it until a shutdown
// signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/expedientes/internal/logging"
	"github.com/dmitrijs2005/expedientes/internal/server/auth"
	"github.com/dmitrijs2005/expedientes/internal/server/config"
	"github.com/dmitrijs2005/expedientes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/expedientes/internal/server/rest"
	"github.com/dmitrijs2005/expedientes/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *rest.Server
}

// NewApp builds every collaborator once from c. The returned App owns the
// repository manager and closes it when Run returns.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	repos, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)

	router := rest.NewRouter(rest.Deps{
		Logger:      logger,
		Tokens:      tokens,
		Auth:        services.NewAuthService(auth.DefaultCredentials(), tokens),
		Expedientes: services.NewExpedienteService(repos.Expedientes()),
		Tasks:       services.NewTaskService(repos.Tasks()),
		Metrics:     rest.NewMetrics(),
	})

	return &App{
		config: c,
		logger: logger,
		repos:  repos,
		server: rest.NewServer(c.HTTPAddr, router, logger, c.ShutdownTimeout),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)

	if cerr := app.repos.Close(); cerr != nil {
		app.logger.Error(ctx, "closing storage", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
