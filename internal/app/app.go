package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/domprops/internal/config"
	"github.com/specialistvlad/domprops/internal/ctxlog"
	"github.com/specialistvlad/domprops/internal/domproperty"
	"github.com/specialistvlad/domprops/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	dom      *domproperty.Registry
}

// NewApp builds a fully initialized App: its own logger writing to logW, the
// built-in modules (or the given ones), the user's bundle files, and the
// sealed DOM property registry. Query output goes to outW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.", "mode", cfg.Mode.String())

	reg := registry.New(nil)
	if !cfg.NoBuiltins {
		if len(modules) == 0 {
			modules = coreModules
		}
		if err := reg.RegisterModules(ctx, modules...); err != nil {
			return nil, err
		}
	}

	if err := reg.LoadPaths(ctx, loader, cfg.BundlePaths...); err != nil {
		return nil, err
	}

	dom, err := reg.Build(ctx, domproperty.WithMode(cfg.Mode))
	if err != nil {
		return nil, fmt.Errorf("failed to build DOM property registry: %w", err)
	}
	dom.Seal()

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		dom:      dom,
	}, nil
}

// Registry returns the built DOM property registry.
func (a *App) Registry() *domproperty.Registry {
	return a.dom
}

// Bundles returns the registry binder. This is primarily for testing.
func (a *App) Bundles() *registry.Registry {
	return a.registry
}
