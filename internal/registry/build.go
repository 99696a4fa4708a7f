package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/domprops/internal/config"
	"github.com/specialistvlad/domprops/internal/ctxlog"
	"github.com/specialistvlad/domprops/internal/domproperty"
)

// Bind resolves the handler names of b and converts it into an injectable
// domproperty.Config.
func (r *Registry) Bind(b *config.Bundle) (domproperty.Config, error) {
	cfg := domproperty.Config{
		Properties:          make(map[string]domproperty.Flags, len(b.Properties)),
		AttributeNamespaces: make(map[string]string),
		AttributeNames:      make(map[string]string),
		PropertyNames:       make(map[string]string),
		MutationMethods:     make(map[string]domproperty.MutationMethod),
	}

	if b.CustomAttribute != "" {
		pred, ok := r.handlers.Predicate(b.CustomAttribute)
		if !ok {
			return domproperty.Config{}, fmt.Errorf("bundle %q: unknown custom attribute predicate %q", b.Name, b.CustomAttribute)
		}
		cfg.IsCustomAttribute = pred
	}

	for _, p := range b.Properties {
		cfg.Properties[p.Name] = p.Flags
		if p.AttributeName != nil {
			cfg.AttributeNames[p.Name] = *p.AttributeName
		}
		if p.Namespace != nil {
			cfg.AttributeNamespaces[p.Name] = *p.Namespace
		}
		if p.PropertyName != nil {
			cfg.PropertyNames[p.Name] = *p.PropertyName
		}
		if p.MutationMethod != nil && *p.MutationMethod != "" {
			mm, ok := r.handlers.MutationMethod(*p.MutationMethod)
			if !ok {
				return domproperty.Config{}, fmt.Errorf("bundle %q, property %q: unknown mutation method %q", b.Name, p.Name, *p.MutationMethod)
			}
			cfg.MutationMethods[p.Name] = mm
		}
	}
	return cfg, nil
}

// Build validates every bundle and injects them, in the order they were
// added, into a new domproperty.Registry created with opts. The logger from
// ctx traces each injection.
func (r *Registry) Build(ctx context.Context, opts ...domproperty.Option) (*domproperty.Registry, error) {
	logger := ctxlog.FromContext(ctx)

	opts = append([]domproperty.Option{domproperty.WithLogger(logger)}, opts...)
	dom := domproperty.New(opts...)

	if err := r.Validate(ctx, dom); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.", "bundles", len(r.bundles))

	for _, b := range r.bundles {
		cfg, err := r.Bind(b)
		if err != nil {
			return nil, err
		}
		if err := dom.Inject(cfg); err != nil {
			return nil, fmt.Errorf("failed to inject bundle %q from %s: %w", b.Name, b.Source, err)
		}
		logger.Debug("Bundle injected.", "bundle", b.Name, "properties", len(b.Properties))
	}

	logger.Info("DOM property registry built.", "bundles", len(r.bundles), "properties", dom.Len(), "mode", dom.Mode().String())
	return dom, nil
}
