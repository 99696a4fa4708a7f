package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/domprops/internal/ctxlog"
)

// ErrPropertyNotFound is returned by Run when a looked-up property is not
// registered.
var ErrPropertyNotFound = errors.New("property not found")

// Run answers the configured query: a single property lookup, a custom
// attribute check, or a dump of the whole registry.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	switch {
	case a.config.Lookup != "":
		return a.lookup(ctx, a.config.Lookup)
	case a.config.Custom != "":
		custom := a.dom.IsCustomAttribute(a.config.Custom)
		logger.Debug("Evaluated custom attribute predicates.", "attribute", a.config.Custom, "custom", custom)
		_, err := fmt.Fprintf(a.outW, "%s: custom=%t\n", a.config.Custom, custom)
		return err
	default:
		return a.dump()
	}
}

func (a *App) lookup(ctx context.Context, name string) error {
	logger := ctxlog.FromContext(ctx)

	info, ok := a.dom.Property(name)
	if !ok {
		if std, hint := a.dom.PossibleStandardName(name); hint {
			logger.Warn("Unknown property; did you mean the standard name?", "property", name, "did_you_mean", std)
			return fmt.Errorf("%w: %s (did you mean %s?)", ErrPropertyNotFound, name, std)
		}
		return fmt.Errorf("%w: %s", ErrPropertyNotFound, name)
	}

	row := newPropertyRow(name, info)
	if a.config.Format == FormatJSON {
		return writeJSON(a.outW, row)
	}
	return writeTable(a.outW, []propertyRow{row})
}

func (a *App) dump() error {
	names := a.dom.Properties()
	snap := a.dom.Snapshot()

	rows := make([]propertyRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, newPropertyRow(name, snap[name]))
	}
	a.logger.Debug("Dumping registry.", "properties", len(rows))

	if a.config.Format == FormatJSON {
		return writeJSON(a.outW, rows)
	}
	return writeTable(a.outW, rows)
}
