package cli

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/agbru/fibtoolkit/internal/fibonacci"
	"github.com/agbru/fibtoolkit/internal/format"
	"github.com/agbru/fibtoolkit/internal/metrics"
	"github.com/agbru/fibtoolkit/internal/orchestration"
	"github.com/agbru/fibtoolkit/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for explorer results in the
// line REPL.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
)

// PresentResult renders one command result.
func (p CLIResultPresenter) PresentResult(res orchestration.Result, out io.Writer) {
	if res.Err != nil {
		p.presentError(res, out)
		return
	}

	switch res.Kind {
	case orchestration.KindSequence:
		fmt.Fprintf(out, "First %s%d%s Fibonacci numbers: %s\n",
			ui.ColorMagenta(), res.Index, ui.ColorReset(), FormatSequence(res.Sequence))
	case orchestration.KindUpTo:
		fmt.Fprintf(out, "Fibonacci numbers ≤ %s%s%s: %s\n",
			ui.ColorMagenta(), res.Arg, ui.ColorReset(), FormatSequence(res.Sequence))
		fmt.Fprintf(out, "Count: %s%d%s numbers\n", ui.ColorCyan(), len(res.Sequence), ui.ColorReset())
	case orchestration.KindFind:
		fmt.Fprintf(out, "F(%s%d%s) = %s%s%s\n",
			ui.ColorMagenta(), res.Index, ui.ColorReset(),
			ui.ColorGreen(), FormatValue(res.Value), ui.ColorReset())
	case orchestration.KindCheck:
		if res.IsFibonacci {
			fmt.Fprintf(out, "%s %sis%s a Fibonacci number\n", res.Arg, ui.ColorGreen(), ui.ColorReset())
		} else {
			fmt.Fprintf(out, "%s %sis not%s a Fibonacci number\n", res.Arg, ui.ColorYellow(), ui.ColorReset())
		}
	case orchestration.KindRatio:
		presentAnalysis(res.Analysis, out)
	case orchestration.KindBinet:
		presentBinet(res.Binet, out)
	case orchestration.KindStats:
		presentCounts(res.Counts, out)
		return
	case orchestration.KindQuit:
		fmt.Fprintf(out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return
	default:
		return
	}
	fmt.Fprintf(out, "  (%s)\n", p.FormatDuration(res.Duration))
}

// PresentHelp renders the command list.
func (CLIResultPresenter) PresentHelp(commands []orchestration.CommandSpec, out io.Writer) {
	fmt.Fprintf(out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	width := 0
	for _, c := range commands {
		if l := len(c.Usage()); l > width {
			width = l
		}
	}
	for _, c := range commands {
		usage := c.Usage()
		line := fmt.Sprintf("  %s%s%s%s - %s", ui.ColorYellow(), usage, ui.ColorReset(), padRight("", width-len(usage)), c.Summary)
		if len(c.Aliases) > 0 {
			line += fmt.Sprintf(" (also: %s)", strings.Join(c.Aliases, ", "))
		}
		fmt.Fprintln(out, line)
	}
}

// FormatDuration formats a duration for display using the CLI's standard
// duration formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

func (CLIResultPresenter) presentError(res orchestration.Result, out io.Writer) {
	var unknown orchestration.UnknownCommandError
	var usage orchestration.UsageError
	switch {
	case errors.As(res.Err, &unknown):
		fmt.Fprintf(out, "%sUnknown command: %s%s\n", ui.ColorRed(), unknown.Verb, ui.ColorReset())
		fmt.Fprintf(out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	case errors.As(res.Err, &usage):
		fmt.Fprintf(out, "%sUsage: %s%s\n", ui.ColorRed(), usage.Spec.Usage(), ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), res.Err, ui.ColorReset())
	}
}

func presentAnalysis(a fibonacci.AnalysisResult, out io.Writer) {
	fmt.Fprintf(out, "Golden ratio: %s%s%s\n", ui.ColorCyan(), format.FormatFixed(a.GoldenRatio, 8), ui.ColorReset())
	if !a.HasRatios() {
		fmt.Fprintf(out, "Final ratio: %sn/a%s (no consecutive pair with a non-zero denominator)\n", ui.ColorYellow(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "Final ratio: %s%s%s\n", ui.ColorCyan(), format.FormatFixed(a.FinalRatio, 8), ui.ColorReset())
	fmt.Fprintf(out, "Error: %s%s%s\n", ui.ColorCyan(), format.FormatScientific(a.ConvergenceError), ui.ColorReset())
}

func presentBinet(b fibonacci.BinetComparison, out io.Writer) {
	status := ui.ColorGreen() + "✓" + ui.ColorReset()
	if !b.Match {
		status = ui.ColorRed() + "✗" + ui.ColorReset()
	}
	fmt.Fprintf(out, "F(%d): Iterative=%s, Binet=%s %s\n", b.N, FormatValue(b.Iterative), FormatValue(b.Binet), status)
}

func presentCounts(counts []metrics.CommandCount, out io.Writer) {
	if len(counts) == 0 {
		fmt.Fprintln(out, "No commands executed yet.")
		return
	}
	fmt.Fprintf(out, "%sCommand%s   %sOK%s      %sFailed%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	for _, c := range counts {
		fmt.Fprintf(out, "%s%-9s%s %-7d %d\n", ui.ColorBlue(), c.Command, ui.ColorReset(), c.OK, c.Failed)
	}
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// FormatValue renders v with thousands separators, or truncated to its
// leading and trailing digits when longer than TruncationLimit.
func FormatValue(v *big.Int) string {
	if v == nil {
		return "n/a"
	}
	s := v.String()
	if len(s) > TruncationLimit {
		return fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
	}
	return format.FormatNumberString(s)
}

// FormatSequence renders a sequence as a bracketed list. Long sequences keep
// SequenceDisplayEdges terms at each end; long terms are truncated.
func FormatSequence(seq fibonacci.Sequence) string {
	terms := seq.Strings()
	for i, t := range terms {
		if len(t) > TruncationLimit {
			terms[i] = t[:DisplayEdges] + "..." + t[len(t)-DisplayEdges:]
		}
	}
	if len(terms) <= SequenceDisplayLimit {
		return format.FormatList(terms)
	}
	elided := len(terms) - 2*SequenceDisplayEdges
	shown := make([]string, 0, 2*SequenceDisplayEdges+1)
	shown = append(shown, terms[:SequenceDisplayEdges]...)
	shown = append(shown, fmt.Sprintf("... %d more ...", elided))
	shown = append(shown, terms[len(terms)-SequenceDisplayEdges:]...)
	return format.FormatList(shown)
}
