package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/domprops/internal/config"
	"github.com/specialistvlad/domprops/internal/ctxlog"
)

// LoadSource parses an in-memory bundle source with loader and adds the
// resulting bundles. Built-in modules use it for their embedded files.
func (r *Registry) LoadSource(ctx context.Context, loader config.Loader, filename string, src []byte) error {
	logger := ctxlog.FromContext(ctx)

	bundles, err := loader.LoadSource(ctx, filename, src)
	if err != nil {
		return fmt.Errorf("failed to load bundle source %s: %w", filename, err)
	}
	if err := r.AddBundles(bundles...); err != nil {
		return err
	}
	logger.Debug("Loaded bundles from source.", "source", filename, "bundles", len(bundles))
	return nil
}

// LoadPaths loads bundle files from disk with loader and adds them.
func (r *Registry) LoadPaths(ctx context.Context, loader config.Loader, paths ...string) error {
	logger := ctxlog.FromContext(ctx)
	if len(paths) == 0 {
		logger.Debug("No bundle paths given, skipping file loading.")
		return nil
	}

	model, err := loader.Load(ctx, paths...)
	if err != nil {
		return fmt.Errorf("failed to load bundle files: %w", err)
	}
	if len(model.Bundles) == 0 {
		logger.Warn("No bundles found in the given paths.", "paths", paths)
	}
	if err := r.PopulateFromModel(model); err != nil {
		return err
	}
	logger.Info("Bundle files loaded.", "bundles", len(model.Bundles))
	return nil
}

// RegisterModules lets every module add its handlers and bundles.
func (r *Registry) RegisterModules(ctx context.Context, modules ...Module) error {
	for _, m := range modules {
		if err := m.Register(ctx, r); err != nil {
			return fmt.Errorf("failed to register module %T: %w", m, err)
		}
	}
	ctxlog.FromContext(ctx).Debug("Modules registered.", "count", len(modules))
	return nil
}
