// Package svg provides the standard SVG attribute bundle, including the
// xlink and xml namespaced attributes.
package svg

import (
	"context"
	_ "embed"

	"github.com/specialistvlad/domprops/internal/hcl"
	"github.com/specialistvlad/domprops/internal/registry"
)

//go:embed svg.hcl
var bundleSource []byte

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the SVG bundle. SVG needs no handlers of its own.
func (m *Module) Register(ctx context.Context, r *registry.Registry) error {
	return r.LoadSource(ctx, hcl.NewLoader(), "svg.hcl", bundleSource)
}
