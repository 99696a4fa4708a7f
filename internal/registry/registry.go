package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/domprops/internal/config"
	"github.com/specialistvlad/domprops/internal/handlers"
)

// Module is the interface that built-in attribute families implement to be
// registered: they add their handlers and their bundles.
type Module interface {
	Register(ctx context.Context, r *Registry) error
}

// Registry holds the handler store and every bundle to be injected, in the
// order they were added.
type Registry struct {
	handlers *handlers.Handlers
	bundles  []*config.Bundle
	origin   map[string]string
}

// New creates a Registry around h. A nil h gets an empty store.
func New(h *handlers.Handlers) *Registry {
	if h == nil {
		h = handlers.New()
	}
	return &Registry{
		handlers: h,
		origin:   make(map[string]string),
	}
}

// Handlers returns the handler store modules register into.
func (r *Registry) Handlers() *handlers.Handlers {
	return r.handlers
}

// AddBundles appends bundles. Bundle names must be unique within the
// registry.
func (r *Registry) AddBundles(bundles ...*config.Bundle) error {
	for _, b := range bundles {
		if b == nil {
			continue
		}
		if prev, ok := r.origin[b.Name]; ok {
			return fmt.Errorf("bundle %q from %s was already added from %s", b.Name, b.Source, prev)
		}
		r.origin[b.Name] = b.Source
		r.bundles = append(r.bundles, b)
	}
	return nil
}

// PopulateFromModel adds every bundle of a loaded model.
func (r *Registry) PopulateFromModel(model *config.Model) error {
	if model == nil {
		return nil
	}
	return r.AddBundles(model.Bundles...)
}

// Bundles returns the bundles in the order they were added.
func (r *Registry) Bundles() []*config.Bundle {
	return append([]*config.Bundle(nil), r.bundles...)
}
