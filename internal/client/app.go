package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/food-catalog/internal/adapter"
	"github.com/MKhiriev/food-catalog/internal/config"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/tui"
	"github.com/MKhiriev/food-catalog/models"
)

// browseFunc runs the interactive browser.
type browseFunc func(ctx context.Context, catalog adapter.CatalogAdapter, creds models.Credentials, sel models.Selector) error

type App struct {
	buildInfo models.BuildInfo

	loadConfig func() (*config.ClientConfig, error)
	newAdapter func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.CatalogAdapter, error)
	browse     browseFunc

	out    io.Writer
	errOut io.Writer

	// populated before any subcommand runs
	cfg     *config.ClientConfig
	catalog adapter.CatalogAdapter
	logger  *logger.Logger
}

// NewApp creates the client backed by the HTTP adapter and the terminal
// browser.
func NewApp(buildInfo models.BuildInfo) *App {
	app := &App{
		buildInfo:  buildInfo,
		loadConfig: config.GetClientConfig,
		newAdapter: adapter.NewHTTPCatalogAdapter,
		out:        os.Stdout,
		errOut:     os.Stderr,
	}
	app.browse = func(ctx context.Context, catalog adapter.CatalogAdapter, creds models.Credentials, sel models.Selector) error {
		return tui.New(catalog, creds, app.buildInfo, app.logger).Browse(ctx, sel)
	}
	return app
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	return root.ExecuteContext(ctx)
}

func (a *App) credentials() models.Credentials {
	return models.Credentials{
		Email:    a.cfg.Credentials.Email,
		Password: a.cfg.Credentials.Password,
	}
}

func (a *App) requireCredentials() (models.Credentials, error) {
	creds := a.credentials()
	if creds.Email == "" || creds.Password == "" {
		return models.Credentials{}, ErrCredentialsRequired
	}
	return creds, nil
}
