package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/folio-dev/folio/pkg/cli/config"
	"github.com/folio-dev/folio/pkg/controller/server"
	"github.com/folio-dev/folio/pkg/infra"
	"github.com/folio-dev/folio/pkg/usecase"
	"github.com/folio-dev/folio/pkg/utils/logging"
)

// appConfig groups the settings shared by every command that talks to GitHub.
type appConfig struct {
	github  config.GitHub
	cache   config.Cache
	catalog config.Catalog
}

func (x *appConfig) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.cache.Flags(),
		x.catalog.Flags(),
	)
}

// newUseCase wires cache, GitHub client and catalog into a UseCase. The
// returned closer releases the cache connection.
func (x *appConfig) newUseCase(ctx context.Context) (*usecase.UseCase, func(), error) {
	if err := x.cache.Validate(); err != nil {
		return nil, nil, err
	}

	entries, err := x.catalog.Load()
	if err != nil {
		return nil, nil, err
	}

	cache, closer, err := x.cache.NewRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, err := x.github.NewClient(cache, x.cache.TTL())
	if err != nil {
		closer()
		return nil, nil, err
	}

	clients := infra.New(infra.WithGitHub(client))
	uc := usecase.New(clients,
		usecase.WithAccount(x.github.Account()),
		usecase.WithCatalog(entries),
	)

	return uc, closer, nil
}

func serveCommand() *cli.Command {
	var (
		addr string

		app    appConfig
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("FOLIO_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			app.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", app.github),
				slog.Any("Cache", app.cache),
				slog.Any("Catalog", app.catalog),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			uc, closeCache, err := app.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
