// Package server wires storage, cache, services and transports together and
// runs the HTTP and gRPC endpoints until shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/logging"
	"github.com/dmitrijs2005/gophclip/internal/server/cache"
	"github.com/dmitrijs2005/gophclip/internal/server/config"
	"github.com/dmitrijs2005/gophclip/internal/server/metrics"
	"github.com/dmitrijs2005/gophclip/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophclip/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophclip/internal/server/grpc"
	hs "github.com/dmitrijs2005/gophclip/internal/server/http"
)

const connectTimeout = 10 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	cache    cache.Cache
	metrics  *metrics.Metrics
	issuer   *services.Issuer
	resolver *services.Resolver
	janitor  *services.Janitor
}

// NewApp validates c, connects to storage (and Redis when configured), runs
// migrations and builds the services. Logs go to w as JSON.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.NewJSONLogger(w, c.LogLevel)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	repos, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var ch cache.Cache = cache.Nop{}
	if c.RedisURL != "" {
		rc, err := cache.Dial(ctx, c.RedisURL)
		if err != nil {
			_ = repos.Close()
			return nil, fmt.Errorf("cache init error: %w", err)
		}
		ch = rc
	}

	m := metrics.New()
	opts := []services.Option{services.WithCache(ch), services.WithMetrics(m)}

	return &App{
		config:   c,
		logger:   logger,
		repos:    repos,
		cache:    ch,
		metrics:  m,
		issuer:   services.NewIssuer(repos.Entries(), c, logger, opts...),
		resolver: services.NewResolver(repos.Entries(), c, logger, opts...),
		janitor:  services.NewJanitor(repos.Entries(), c, logger, opts...),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled, a signal arrives or a server fails,
// then releases storage and cache.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageBackend)
	app.initSignalHandler(ctx, cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	router := hs.NewRouter(app.logger, hs.Deps{
		Issuer:         app.issuer,
		Resolver:       app.resolver,
		Ready:          app.repos,
		Metrics:        app.metrics.Handler(),
		AllowedOrigins: app.config.CORSAllowedOrigins,
	})
	httpServer := hs.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, router, app.config.ShutdownTimeout)
	g.Go(func() error { return httpServer.Run(ctx) })

	if app.config.EndpointAddrGRPC != "" {
		grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.issuer, app.resolver)
		g.Go(func() error { return grpcServer.Run(ctx) })
	}

	g.Go(func() error { return app.janitor.Run(ctx) })

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server error", "error", err)
	}

	app.close(ctx)
	app.logger.Info(ctx, "App stopped")
	return err
}

func (app *App) close(ctx context.Context) {
	if err := app.cache.Close(); err != nil {
		app.logger.Warn(ctx, "cache close error", "error", err)
	}
	if err := app.repos.Close(); err != nil {
		app.logger.Warn(ctx, "storage close error", "error", err)
	}
}
