package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/agbru/fibtoolkit/internal/cli"
	"github.com/agbru/fibtoolkit/internal/config"
	apperrors "github.com/agbru/fibtoolkit/internal/errors"
	"github.com/agbru/fibtoolkit/internal/logging"
	"github.com/agbru/fibtoolkit/internal/metrics"
	"github.com/agbru/fibtoolkit/internal/orchestration"
	"github.com/agbru/fibtoolkit/internal/tui"
	"github.com/agbru/fibtoolkit/internal/ui"
)

// Application represents the fibtoolkit application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	In        io.Reader

	programName string
	logger      logging.Logger
	isTerminal  func(io.Writer) bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader the REPL consumes. Defaults to os.Stdin.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// WithLogger replaces the zerolog logger built from -log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// WithTerminalDetector overrides how the application decides whether the
// output is a terminal (colors and spinner are disabled otherwise).
func WithTerminalDetector(f func(io.Writer) bool) AppOption {
	return func(a *Application) { a.isTerminal = f }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter:   errWriter,
		In:          os.Stdin,
		programName: "fibtoolkit",
		isTerminal:  isTerminal,
	}
	for _, opt := range opts {
		opt(app)
	}

	var cmdArgs []string
	if len(args) > 0 {
		app.programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(app.programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.logger == nil {
		app.logger = logging.New(errWriter, "app", logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	terminal := a.isTerminal(out)
	ui.InitTheme(a.Config.NoColor || !terminal, a.Config.Theme)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	a.logger.Info("starting",
		logging.String("mode", a.Config.Mode),
		logging.String("version", Version),
		logging.Bool("terminal", terminal),
	)

	dispatcher := orchestration.NewDispatcher(
		orchestration.WithLogger(a.logger),
		orchestration.WithRecorder(metrics.NewRecorder()),
	)

	switch a.Config.Mode {
	case config.ModeDemo:
		return a.runDemo(ctx, out, dispatcher, terminal)
	case config.ModeTUI:
		return tui.Run(ctx, dispatcher, Version)
	default:
		return a.runREPL(ctx, out, dispatcher)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.programBase()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runDemo prints the scripted demo, then optionally continues into the REPL.
func (a *Application) runDemo(ctx context.Context, out io.Writer, dispatcher *orchestration.Dispatcher, terminal bool) int {
	demo := cli.NewDemo(out, cli.DemoConfig{Count: a.Config.DemoCount, Spinner: terminal})
	if err := demo.Run(ctx); err != nil {
		return a.exit(err)
	}
	if !a.Config.Interactive {
		return apperrors.ExitSuccess
	}
	fmt.Fprintln(out)
	return a.runREPL(ctx, out, dispatcher)
}

// runREPL runs the line explorer until quit, EOF or a signal.
func (a *Application) runREPL(ctx context.Context, out io.Writer, dispatcher *orchestration.Dispatcher) int {
	repl := cli.NewREPL(dispatcher, cli.DefaultREPLConfig())
	repl.SetInput(a.In)
	repl.SetOutput(out)
	return a.exit(repl.Start(ctx))
}

// exit logs a terminal error and maps it to an exit code.
func (a *Application) exit(err error) int {
	if err != nil && !apperrors.IsContextError(err) {
		a.logger.Error("session failed", err)
	}
	return apperrors.ExitCodeFor(err)
}

// programBase returns the program name without its directory.
func (a *Application) programBase() string {
	return filepath.Base(a.programName)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsHelpError checks if the error is a help flag error (-help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
