package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/specialistvlad/domprops/internal/app"
	"github.com/specialistvlad/domprops/internal/domproperty"
)

// EnvPrefix prefixes every environment variable read by Parse.
const EnvPrefix = "DOMPROPS"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// env holds the defaults read from DOMPROPS_* variables. Flags override them.
type env struct {
	Mode      domproperty.Mode `envconfig:"MODE" default:"development"`
	LogLevel  string           `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string           `envconfig:"LOG_FORMAT" default:"text"`
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults env
	if err := envconfig.Process(EnvPrefix, &defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid environment: %v", err)}
	}

	flagSet := flag.NewFlagSet("domprops", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
domprops - DOM property registry builder and inspector.

Usage:
  domprops [options] [BUNDLE_PATH...]

Arguments:
  BUNDLE_PATH
    Path to a .hcl bundle file or a directory containing .hcl files. The
    bundles are merged on top of the built-in html and svg bundles.

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprint(output, `
Environment:
  DOMPROPS_MODE, DOMPROPS_LOG_LEVEL, DOMPROPS_LOG_FORMAT set the defaults of
  -mode, -log-level and -log-format.
`)
	}

	mode := defaults.Mode
	flagSet.TextVar(&mode, "mode", defaults.Mode, "Registry mode. Options: 'development' or 'production'.")
	lookupFlag := flagSet.String("lookup", "", "Print the descriptor of a single property.")
	customFlag := flagSet.String("custom", "", "Report whether an attribute name is a custom attribute.")
	formatFlag := flagSet.String("format", app.FormatTable, "Output format. Options: 'table' or 'json'.")
	noBuiltinsFlag := flagSet.Bool("no-builtins", false, "Do not load the built-in html and svg bundles.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		BundlePaths: flagSet.Args(),
		NoBuiltins:  *noBuiltinsFlag,
		Mode:        mode,
		Lookup:      *lookupFlag,
		Custom:      *customFlag,
		Format:      strings.ToLower(*formatFlag),
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
