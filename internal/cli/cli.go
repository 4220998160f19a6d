package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/typeslots/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageError wraps err into an ExitError with the usage exit code.
func UsageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("typeslots", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
typeslots - Resolve and inspect the built-in type catalogue.

Usage:
  typeslots [options] [TYPE ...]

Arguments:
  TYPE
    A type key (PDefaultDict) or a qualified name (collections.defaultdict,
    int). Without arguments every resolved type is listed.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestsFlag := flagSet.String("manifests", "", "Path to a manifest file or directory. Defaults to the embedded catalogue.")
	mFlag := flagSet.String("m", "", "Path to a manifest file or directory (shorthand).")
	outputFlag := flagSet.String("output", app.OutputText, "Report format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	verifyFlag := flagSet.Bool("verify", false, "Check the declared slots of every type against its builtin-definition units.")
	checkFlag := flagSet.Bool("check-invariants", false, "Check that no two types share a module and name.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, UsageError(err)
	}
	slog.Debug("Arguments parsed successfully.")

	var selectors []string
	if flagSet.NArg() > 0 {
		selectors = flagSet.Args()
	}

	path := *manifestsFlag
	if path == "" {
		path = *mFlag
	}

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
		ManifestsPath:   path,
		Selectors:       selectors,
		Output:          strings.ToLower(*outputFlag),
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		Verify:          *verifyFlag,
		CheckInvariants: *checkFlag,
	})
	if err != nil {
		return nil, false, UsageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
