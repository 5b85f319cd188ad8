package orchestration

import (
	"io"
	"math/big"
	"time"

	"github.com/agbru/fibtoolkit/internal/fibonacci"
	"github.com/agbru/fibtoolkit/internal/metrics"
)

// Result encapsulates the outcome of one explorer command. Only the fields
// relevant to Kind are populated; Err is set when the command failed.
type Result struct {
	// Kind is the command that produced the result.
	Kind Kind
	// Arg echoes the raw argument.
	Arg string
	// Sequence holds the terms for seq and upto.
	Sequence fibonacci.Sequence
	// Index is the parsed n for find, ratio and binet.
	Index int
	// Value is F(n) for find, or the tested number for check.
	Value *big.Int
	// IsFibonacci is the answer to check.
	IsFibonacci bool
	// Analysis is the ratio report for ratio.
	Analysis fibonacci.AnalysisResult
	// Binet is the comparison for binet.
	Binet fibonacci.BinetComparison
	// Counts holds the per-command tallies for stats.
	Counts []metrics.CommandCount
	// Duration is the time spent inside the toolkit.
	Duration time.Duration
	// Err contains any error raised by parsing or execution.
	Err error
}

// Quit reports whether the result asks the session to end.
func (r Result) Quit() bool {
	return r.Kind == KindQuit && r.Err == nil
}

// ResultPresenter defines the interface for presenting command results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing the line REPL and the TUI to render the same results differently.
type ResultPresenter interface {
	// PresentResult renders a single command result.
	PresentResult(res Result, out io.Writer)
	// PresentHelp renders the command list.
	PresentHelp(commands []CommandSpec, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}
