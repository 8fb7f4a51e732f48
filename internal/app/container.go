package app

import (
	"context"

	"github.com/doeshing/envctx/internal/application/classify"
	"github.com/doeshing/envctx/internal/application/contexts"
	"github.com/doeshing/envctx/internal/application/doctor"
	"github.com/doeshing/envctx/internal/application/factory"
	"github.com/doeshing/envctx/internal/infrastructure/config"
	"github.com/doeshing/envctx/internal/pkg/logger"
	"github.com/doeshing/envctx/internal/ports"
)

// Options tunes container construction.
type Options struct {
	// ConfigPath overrides the config file location.
	ConfigPath string
	Verbose    bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	Factory         *factory.Factory
	ContextService  *contexts.Service
	ClassifyService *classify.Service
	DoctorService   *doctor.Service
	Logger          *logger.ZapLogger
}

// BuildContainer constructs the dependency graph. Configuration is loaded
// lazily by each service so that a broken file can still be inspected.
func BuildContainer(_ context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)

	log, err := logger.New(opts.Verbose)
	if err != nil {
		return nil, err
	}

	ctxFactory := factory.Default()

	log.Debug("container ready", map[string]interface{}{
		"config": cfgLoader.Path(),
	})

	return &Container{
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Factory:        ctxFactory,
		ContextService: &contexts.Service{
			ConfigProvider: cfgLoader,
			Factory:        ctxFactory,
			Logger:         log,
		},
		ClassifyService: &classify.Service{
			ConfigProvider: cfgLoader,
			Logger:         log,
		},
		DoctorService: &doctor.Service{
			ConfigProvider: cfgLoader,
			Factory:        ctxFactory,
		},
		Logger: log,
	}, nil
}
