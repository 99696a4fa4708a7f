package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/domprops/internal/domproperty"
)

// Output formats for the property table.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BundlePaths []string // hcl files or directories
	NoBuiltins  bool     // skip the built-in html and svg bundles
	Mode        domproperty.Mode

	// Lookup, when set, prints the descriptor of one property.
	Lookup string
	// Custom, when set, evaluates the custom attribute predicates.
	Custom string
	Format string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.NoBuiltins && len(cfg.BundlePaths) == 0 {
		return nil, errors.New("at least one bundle path is required when built-in bundles are disabled")
	}
	if cfg.Lookup != "" && cfg.Custom != "" {
		return nil, errors.New("lookup and custom are mutually exclusive")
	}

	if cfg.Format == "" {
		cfg.Format = FormatTable
	}
	if cfg.Format != FormatTable && cfg.Format != FormatJSON {
		return nil, fmt.Errorf("invalid format %q: must be '%s' or '%s'", cfg.Format, FormatTable, FormatJSON)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}
