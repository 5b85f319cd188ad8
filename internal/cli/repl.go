// Package cli provides the line-oriented explorer (REPL), the scripted demo
// and shell completion for the fibtoolkit binary.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/fibtoolkit/internal/orchestration"
	"github.com/agbru/fibtoolkit/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Prompt is printed before each line is read.
	Prompt string
	// ShowBanner prints the welcome banner and the command list on start.
	ShowBanner bool
}

// DefaultREPLConfig returns the configuration used by the binary.
func DefaultREPLConfig() REPLConfig {
	return REPLConfig{Prompt: "fib> ", ShowBanner: true}
}

// REPL represents an interactive explorer session.
type REPL struct {
	config     REPLConfig
	dispatcher *orchestration.Dispatcher
	presenter  orchestration.ResultPresenter
	in         io.Reader
	out        io.Writer
}

// NewREPL creates a new REPL instance reading from stdin and writing to
// stdout.
//
// Parameters:
//   - dispatcher: Executes each line.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(dispatcher *orchestration.Dispatcher, config REPLConfig) *REPL {
	return &REPL{
		config:     config,
		dispatcher: dispatcher,
		presenter:  CLIResultPresenter{},
		in:         os.Stdin,
		out:        os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It reads and executes lines until
// quit, EOF or cancellation of ctx. Malformed lines are reported and the
// loop continues. Cancellation is observed while waiting for input.
//
// Returns:
//   - error: ctx.Err() when the session was cancelled, a read error, or nil.
func (r *REPL) Start(ctx context.Context) error {
	if r.config.ShowBanner {
		r.printBanner()
		r.presenter.PresentHelp(orchestration.Commands, r.out)
		fmt.Fprintln(r.out)
	}

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines := readLines(readCtx, r.in)

	for {
		if err := ctx.Err(); err != nil {
			return r.interrupted(err)
		}
		fmt.Fprint(r.out, ui.ColorGreen()+r.config.Prompt+ui.ColorReset())

		var next lineRead
		select {
		case <-ctx.Done():
			return r.interrupted(ctx.Err())
		case next = <-lines:
		}
		if next.err != nil && !errors.Is(next.err, io.EOF) {
			return fmt.Errorf("reading input: %w", next.err)
		}
		eof := next.err != nil

		input := strings.TrimSpace(next.line)
		if input != "" && !r.processCommand(ctx, input) {
			return nil
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return nil
		}
	}
}

// lineRead is one ReadString outcome.
type lineRead struct {
	line string
	err  error
}

// readLines reads in on its own goroutine so the caller can select on
// ctx.Done() while a read is pending. The goroutine stops after the first
// error or once ctx is done; a read already blocked on in is abandoned.
func readLines(ctx context.Context, in io.Reader) <-chan lineRead {
	lines := make(chan lineRead)
	go func() {
		reader := bufio.NewReader(in)
		for {
			line, err := reader.ReadString('\n')
			select {
			case lines <- lineRead{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// interrupted reports a cancelled session and returns err.
func (r *REPL) interrupted(err error) error {
	fmt.Fprintln(r.out, "\nInterrupted. Goodbye!")
	return err
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 Fibonacci Explorer - Interactive Mode%s              %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// processCommand executes one line and presents its result.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	res := r.dispatcher.ExecuteLine(ctx, input)
	if res.Kind == orchestration.KindHelp && res.Err == nil {
		r.presenter.PresentHelp(orchestration.Commands, r.out)
		return true
	}
	r.presenter.PresentResult(res, r.out)
	return !res.Quit()
}
