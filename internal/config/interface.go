package config

import "context"

// Loader is the interface for a format-specific bundle loader.
type Loader interface {
	// Load reads every bundle found under the given files or directories and
	// translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// LoadSource parses a single in-memory source. The filename is used for
	// diagnostics only.
	LoadSource(ctx context.Context, filename string, src []byte) ([]*Bundle, error)
}
