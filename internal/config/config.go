// Package config parses the command-line flags and environment overrides
// that configure a fibtoolkit run.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/fibtoolkit/internal/errors"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "FIBTOOLKIT_"

// Run modes.
const (
	ModeREPL = "repl"
	ModeDemo = "demo"
	ModeTUI  = "tui"
)

// Defaults.
const (
	DefaultMode      = ModeREPL
	DefaultDemoCount = 1000
	DefaultLogLevel  = "warn"
	DefaultTheme     = "dark"
	DefaultLogFormat = "json"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Mode selects the front end: repl, demo or tui.
	Mode string
	// DemoCount is the sequence length timed by the demo's performance section.
	DemoCount int
	// Interactive starts the REPL once the demo completes.
	Interactive bool
	// LogLevel is the zerolog level name for diagnostic logs on stderr.
	LogLevel string
	// LogFormat selects json lines or zerolog's console layout.
	LogFormat string
	// NoColor disables ANSI colors.
	NoColor bool
	// Theme names the color palette: dark or light.
	Theme string
	// Completion, when set, prints a completion script for that shell and exits.
	Completion string
}

// Validate checks the configuration for semantic errors.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate() error {
	switch c.Mode {
	case ModeREPL, ModeDemo, ModeTUI:
	default:
		return apperrors.NewConfigError("unknown mode %q (accepted values: %s, %s, %s)", c.Mode, ModeREPL, ModeDemo, ModeTUI)
	}
	if c.DemoCount < 0 {
		return apperrors.NewConfigError("demo count must be non-negative, got %d", c.DemoCount)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return apperrors.NewConfigError("unknown log format %q (accepted values: json, console)", c.LogFormat)
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return apperrors.NewConfigError("unknown theme %q (accepted values: dark, light)", c.Theme)
	}
	return nil
}

// ParseConfig parses the command-line arguments, applies FIBTOOLKIT_*
// environment overrides for flags that were not given explicitly, and
// validates the result. Priority: flags > environment > defaults.
//
// Parameters:
//   - programName: Name used in usage output.
//   - args: Arguments without the program name.
//   - errorWriter: Destination for usage and parse errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for -h, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\nExplore Fibonacci sequences interactively.\n\nFlags:\n", programName)
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEvery flag can also be set with a %s<NAME> environment variable (e.g. %sMODE=demo).\n", EnvPrefix, EnvPrefix)
	}

	config := AppConfig{}
	fs.StringVar(&config.Mode, "mode", DefaultMode, "Front end to run: repl, demo or tui.")
	fs.IntVar(&config.DemoCount, "demo-count", DefaultDemoCount, "Sequence length timed by the demo.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the REPL after the demo.")
	fs.BoolVar(&config.Interactive, "i", false, "Shorthand for -interactive.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level (debug, info, warn, error, disabled).")
	fs.StringVar(&config.LogFormat, "log-format", DefaultLogFormat, "Diagnostic log format (json, console).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color palette: dark or light.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for the given shell (bash, zsh, fish).")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)
	config.Mode = strings.ToLower(config.Mode)
	config.Theme = strings.ToLower(config.Theme)
	config.LogFormat = strings.ToLower(config.LogFormat)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, err)
		return AppConfig{}, err
	}
	return config, nil
}
