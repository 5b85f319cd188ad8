package tui

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/agbru/fibtoolkit/internal/fibonacci"
	"github.com/agbru/fibtoolkit/internal/format"
	"github.com/agbru/fibtoolkit/internal/orchestration"
)

// Display limits for the transcript panel.
const (
	maxDigits       = 60
	digitEdges      = 20
	maxTerms        = 30
	termEdges       = 8
	transcriptLimit = 500
)

// TUIResultPresenter implements orchestration.ResultPresenter with lipgloss
// styles for the transcript panel.
type TUIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = TUIResultPresenter{}
	_ orchestration.DurationFormatter = TUIResultPresenter{}
)

// PresentResult renders one command result.
func (p TUIResultPresenter) PresentResult(res orchestration.Result, out io.Writer) {
	if res.Err != nil {
		var unknown orchestration.UnknownCommandError
		if errors.As(res.Err, &unknown) {
			fmt.Fprintln(out, errorStyle.Render("Unknown command: "+unknown.Verb)+dimStyle.Render("  (help lists the commands)"))
			return
		}
		fmt.Fprintln(out, errorStyle.Render(capitalize(res.Err.Error())))
		return
	}

	switch res.Kind {
	case orchestration.KindSequence:
		fmt.Fprintf(out, "First %d: %s\n", res.Index, valueStyle.Render(formatTerms(res.Sequence)))
	case orchestration.KindUpTo:
		fmt.Fprintf(out, "≤ %s: %s\n", res.Arg, valueStyle.Render(formatTerms(res.Sequence)))
		fmt.Fprintf(out, "Count: %d numbers\n", len(res.Sequence))
	case orchestration.KindFind:
		fmt.Fprintf(out, "F(%d) = %s\n", res.Index, valueStyle.Render(formatDigits(res.Value)))
	case orchestration.KindCheck:
		if res.IsFibonacci {
			fmt.Fprintf(out, "%s %s\n", res.Arg, successStyle.Render("is a Fibonacci number"))
		} else {
			fmt.Fprintf(out, "%s %s\n", res.Arg, warningStyle.Render("is not a Fibonacci number"))
		}
	case orchestration.KindRatio:
		a := res.Analysis
		fmt.Fprintf(out, "Golden ratio: %s\n", valueStyle.Render(format.FormatFixed(a.GoldenRatio, 8)))
		fmt.Fprintf(out, "Final ratio:  %s\n", valueStyle.Render(format.FormatFixed(a.FinalRatio, 8)))
		fmt.Fprintf(out, "Error:        %s\n", valueStyle.Render(format.FormatScientific(a.ConvergenceError)))
	case orchestration.KindBinet:
		b := res.Binet
		mark := successStyle.Render("✓")
		if !b.Match {
			mark = errorStyle.Render("✗")
		}
		fmt.Fprintf(out, "F(%d): Iterative=%s, Binet=%s %s\n", b.N, formatDigits(b.Iterative), formatDigits(b.Binet), mark)
	case orchestration.KindStats:
		if len(res.Counts) == 0 {
			fmt.Fprintln(out, dimStyle.Render("No commands executed yet."))
		}
		for _, c := range res.Counts {
			fmt.Fprintf(out, "%-7s %s\n", c.Command, valueStyle.Render(fmt.Sprintf("%d ok / %d err", c.OK, c.Failed)))
		}
		return
	case orchestration.KindQuit:
		fmt.Fprintln(out, successStyle.Render("Goodbye!"))
		return
	default:
		return
	}
	fmt.Fprintln(out, dimStyle.Render("  "+p.FormatDuration(res.Duration)))
}

// PresentHelp renders the command list.
func (TUIResultPresenter) PresentHelp(commands []orchestration.CommandSpec, out io.Writer) {
	for _, c := range commands {
		fmt.Fprintf(out, "%s %s\n", valueStyle.Render(fmt.Sprintf("%-12s", c.Usage())), c.Summary)
	}
}

// FormatDuration formats a duration for display.
func (TUIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

func formatDigits(v *big.Int) string {
	if v == nil {
		return "n/a"
	}
	s := v.String()
	if len(s) > maxDigits {
		return fmt.Sprintf("%s…%s (%d digits)", s[:digitEdges], s[len(s)-digitEdges:], len(s))
	}
	return format.FormatNumberString(s)
}

func formatTerms(seq fibonacci.Sequence) string {
	terms := seq.Strings()
	for i, t := range terms {
		if len(t) > maxDigits {
			terms[i] = t[:digitEdges] + "…" + t[len(t)-digitEdges:]
		}
	}
	if len(terms) > maxTerms {
		head := terms[:termEdges]
		tail := terms[len(terms)-termEdges:]
		terms = append(append(append([]string{}, head...), fmt.Sprintf("… %d more …", len(seq)-2*termEdges)), tail...)
	}
	return format.FormatList(terms)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
