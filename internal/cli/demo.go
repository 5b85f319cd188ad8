package cli

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/fibtoolkit/internal/fibonacci"
	"github.com/agbru/fibtoolkit/internal/format"
	"github.com/agbru/fibtoolkit/internal/metrics"
	"github.com/agbru/fibtoolkit/internal/ui"
)

// DefaultDemoCount is the sequence length timed by the performance section.
const DefaultDemoCount = 1000

// Inputs of the scripted sections.
var (
	demoSequenceCounts = []int{5, 8, 12}
	demoBounds         = []int64{50, 100, 1000}
	demoPositions      = []int{10, 15, 20, 25}
	demoCandidates     = []int64{1, 2, 4, 5, 8, 10, 13, 16, 21, 34, 50, 55, 89, 100}
	demoRatioCount     = 15
	demoRatioTail      = 5
	demoSingleIndex    = 100
	demoBinetIndices   = []int{10, 15, 20}
)

// DemoConfig configures the scripted demonstration.
type DemoConfig struct {
	// Count is the sequence length generated by the performance section.
	Count int
	// Spinner shows a spinner while the performance section runs. It should
	// only be enabled when the output is a terminal.
	Spinner bool
}

// Demo walks through every toolkit operation with fixed inputs.
type Demo struct {
	config DemoConfig
	out    io.Writer
	memory *metrics.MemoryCollector
}

// NewDemo creates a Demo writing to out. A non-positive Count falls back to
// DefaultDemoCount.
func NewDemo(out io.Writer, config DemoConfig) *Demo {
	if config.Count <= 0 {
		config.Count = DefaultDemoCount
	}
	return &Demo{config: config, out: out, memory: metrics.NewMemoryCollector()}
}

type demoSection struct {
	title string
	run   func() error
}

// Run prints the seven demo sections. It stops between sections when ctx is
// cancelled.
func (d *Demo) Run(ctx context.Context) error {
	sections := []demoSection{
		{"BASIC SEQUENCE GENERATION", d.basicSequences},
		{"GENERATE UP TO MAXIMUM VALUE", d.boundedSequences},
		{"FIND SPECIFIC FIBONACCI NUMBERS", d.specificValues},
		{"FIBONACCI NUMBER IDENTIFICATION", d.identification},
		{"GOLDEN RATIO CONVERGENCE ANALYSIS", d.goldenRatio},
		{"PERFORMANCE ANALYSIS", d.performance},
		{"MATHEMATICAL PROPERTIES", d.binet},
	}

	d.banner("FIBONACCI SEQUENCE GENERATOR")
	for i, s := range sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		heading := fmt.Sprintf("%d. %s", i+1, s.title)
		fmt.Fprintf(d.out, "\n%s%s%s\n", ui.ColorBold(), heading, ui.ColorReset())
		fmt.Fprintln(d.out, strings.Repeat("-", len(heading)))
		if err := s.run(); err != nil {
			return fmt.Errorf("demo section %q: %w", s.title, err)
		}
	}
	fmt.Fprintln(d.out)
	d.banner("DEMO COMPLETE")
	return nil
}

func (d *Demo) banner(title string) {
	const width = 60
	rule := strings.Repeat("=", width)
	pad := (width - len(title)) / 2
	fmt.Fprintf(d.out, "%s%s%s\n", ui.ColorCyan(), rule, ui.ColorReset())
	fmt.Fprintf(d.out, "%s%s%s%s\n", strings.Repeat(" ", pad), ui.ColorBold(), title, ui.ColorReset())
	fmt.Fprintf(d.out, "%s%s%s\n", ui.ColorCyan(), rule, ui.ColorReset())
}

func (d *Demo) basicSequences() error {
	for _, n := range demoSequenceCounts {
		seq, err := fibonacci.SequenceUpTo(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "First %d Fibonacci numbers: %s\n", n, FormatSequence(seq))
	}
	return nil
}

func (d *Demo) boundedSequences() error {
	for _, bound := range demoBounds {
		seq, err := fibonacci.SequenceBelow(big.NewInt(bound))
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "Fibonacci numbers ≤ %d: %s\n", bound, FormatSequence(seq))
		fmt.Fprintf(d.out, "   Count: %d numbers\n", len(seq))
	}
	return nil
}

func (d *Demo) specificValues() error {
	for _, n := range demoPositions {
		v, err := fibonacci.NthValue(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "F(%d) = %s\n", n, FormatValue(v))
	}
	return nil
}

func (d *Demo) identification() error {
	var fib, other []string
	for _, c := range demoCandidates {
		s := strconv.FormatInt(c, 10)
		if fibonacci.IsFibonacci(big.NewInt(c)) {
			fib = append(fib, s)
		} else {
			other = append(other, s)
		}
	}
	fmt.Fprintf(d.out, "Fibonacci numbers: %s%s%s\n", ui.ColorGreen(), format.FormatList(fib), ui.ColorReset())
	fmt.Fprintf(d.out, "Non-Fibonacci numbers: %s%s%s\n", ui.ColorYellow(), format.FormatList(other), ui.ColorReset())
	return nil
}

func (d *Demo) goldenRatio() error {
	a, err := fibonacci.RatioAnalysis(demoRatioCount)
	if err != nil {
		return err
	}
	last := len(a.Sequence) - 1
	fmt.Fprintf(d.out, "Golden ratio (φ): %s\n", format.FormatFixed(a.GoldenRatio, 10))
	fmt.Fprintf(d.out, "Final ratio F(%d)/F(%d): %s\n", last, last-1, format.FormatFixed(a.FinalRatio, 10))
	fmt.Fprintf(d.out, "Convergence error: %s\n", format.FormatScientific(a.ConvergenceError))

	fmt.Fprintf(d.out, "\nRatio progression (last %d):\n", demoRatioTail)
	start := max(len(a.Ratios)-demoRatioTail, 0)
	for k := start; k < len(a.Ratios); k++ {
		// Ratios[k] is F(k+2)/F(k+1): the F(1)/F(0) pair is skipped.
		r := a.Ratios[k]
		diff := r - a.GoldenRatio
		if diff < 0 {
			diff = -diff
		}
		fmt.Fprintf(d.out, "   F(%d)/F(%d) = %s (error: %s)\n", k+2, k+1, format.FormatFixed(r, 8), format.FormatScientific(diff))
	}
	return nil
}

func (d *Demo) performance() error {
	var spin Spinner = noopSpinner{}
	if d.config.Spinner {
		spin = newSpinner(d.out)
	}
	spin.UpdateSuffix(fmt.Sprintf(" Generating %d Fibonacci numbers...", d.config.Count))
	spin.Start()

	before := d.memory.Snapshot()
	start := time.Now()
	seq, err := fibonacci.SequenceUpTo(d.config.Count)
	elapsed := time.Since(start)
	after := d.memory.Snapshot()

	spin.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Generated %d Fibonacci numbers in %s\n", d.config.Count, format.FormatExecutionDuration(elapsed))
	if largest := seq.Last(); largest != nil {
		fmt.Fprintf(d.out, "Largest number: %s\n", FormatValue(largest))
		fmt.Fprintf(d.out, "Number of digits in F(%d): %d\n", len(seq)-1, len(largest.String()))
	}
	fmt.Fprintf(d.out, "Allocated %s in %d objects\n",
		format.FormatBytes(after.AllocatedSince(before)), after.ObjectsSince(before))

	start = time.Now()
	v, err := fibonacci.NthValue(demoSingleIndex)
	elapsed = time.Since(start)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Found F(%d) = %s in %s\n", demoSingleIndex, FormatValue(v), format.FormatExecutionDuration(elapsed))
	return nil
}

func (d *Demo) binet() error {
	fmt.Fprintln(d.out, "Comparison with Binet's formula:")
	for _, n := range demoBinetIndices {
		cmp, err := fibonacci.CompareBinet(n)
		if err != nil {
			return err
		}
		fmt.Fprint(d.out, "   ")
		presentBinet(cmp, d.out)
	}
	return nil
}
