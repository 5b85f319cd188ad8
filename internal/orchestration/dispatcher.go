package orchestration

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/fibtoolkit/internal/errors"
	"github.com/agbru/fibtoolkit/internal/fibonacci"
	"github.com/agbru/fibtoolkit/internal/logging"
	"github.com/agbru/fibtoolkit/internal/metrics"
)

const tracerName = "github.com/agbru/fibtoolkit/internal/orchestration"

// DefaultMaxIndex bounds n for seq, find, ratio and binet so that a typo in
// an interactive session cannot request a multi-gigabyte sequence.
const DefaultMaxIndex = 100_000

// DefaultMaxBoundDigits bounds the decimal length of the upto and check
// arguments.
const DefaultMaxBoundDigits = 10_000

// Dispatcher executes explorer commands against the toolkit.
type Dispatcher struct {
	logger         logging.Logger
	recorder       *metrics.Recorder
	tracer         trace.Tracer
	maxIndex       int
	maxBoundDigits int
}

// DispatcherOption configures a Dispatcher during construction.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for per-command debug entries.
func WithLogger(l logging.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

// WithRecorder sets the metrics recorder backing the stats command.
func WithRecorder(r *metrics.Recorder) DispatcherOption {
	return func(d *Dispatcher) { d.recorder = r }
}

// WithTracerProvider sets the provider spans are created from. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) DispatcherOption {
	return func(d *Dispatcher) { d.tracer = tp.Tracer(tracerName) }
}

// WithMaxIndex overrides DefaultMaxIndex.
func WithMaxIndex(n int) DispatcherOption {
	return func(d *Dispatcher) { d.maxIndex = n }
}

// NewDispatcher creates a Dispatcher. Without options it logs nowhere,
// records into a fresh Recorder and traces through the global provider.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		maxIndex:       DefaultMaxIndex,
		maxBoundDigits: DefaultMaxBoundDigits,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.Nop()
	}
	if d.recorder == nil {
		d.recorder = metrics.NewRecorder()
	}
	if d.tracer == nil {
		d.tracer = otel.Tracer(tracerName)
	}
	return d
}

// Recorder returns the metrics recorder.
func (d *Dispatcher) Recorder() *metrics.Recorder {
	return d.recorder
}

// ExecuteLine parses and executes one line of input. Parse failures are
// returned as a Result carrying KindInvalid (or the parsed kind for usage
// errors) and the error.
func (d *Dispatcher) ExecuteLine(ctx context.Context, line string) Result {
	cmd, err := Parse(line)
	if err != nil {
		res := Result{Kind: KindInvalid, Err: err}
		var usage UsageError
		if errors.As(err, &usage) {
			res.Kind = usage.Spec.Kind
		}
		return res
	}
	return d.Execute(ctx, cmd)
}

// Execute runs a parsed command. Every command is timed, counted in the
// recorder (except stats itself) and wrapped in a span.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) Result {
	_, span := d.tracer.Start(ctx, "fibtoolkit."+cmd.Kind.String(),
		trace.WithAttributes(
			attribute.String("command", cmd.Kind.String()),
			attribute.String("argument", cmd.Arg),
		))
	defer span.End()

	start := time.Now()
	res := d.run(cmd)
	res.Duration = time.Since(start)

	if res.Err != nil {
		res.Err = apperrors.CommandError{Command: cmd.Kind.String(), Cause: res.Err}
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
	}
	switch cmd.Kind {
	case KindStats, KindHelp, KindQuit:
	default:
		d.recorder.Observe(cmd.Kind.String(), res.Duration, res.Err)
	}

	d.logger.Debug("command executed",
		logging.String("command", cmd.Kind.String()),
		logging.String("argument", cmd.Arg),
		logging.Duration("duration", res.Duration),
		logging.Bool("failed", res.Err != nil),
	)
	return res
}

func (d *Dispatcher) run(cmd Command) Result {
	res := Result{Kind: cmd.Kind, Arg: cmd.Arg}

	switch cmd.Kind {
	case KindSequence:
		n, err := d.parseIndex(cmd.Arg)
		if err != nil {
			res.Err = err
			return res
		}
		res.Index = n
		res.Sequence, res.Err = fibonacci.SequenceUpTo(n)

	case KindUpTo:
		res.Sequence, res.Err = d.sequenceBelow(cmd.Arg)

	case KindFind:
		n, err := d.parseIndex(cmd.Arg)
		if err != nil {
			res.Err = err
			return res
		}
		res.Index = n
		res.Value, res.Err = fibonacci.NthValue(n)

	case KindCheck:
		res.Value, res.IsFibonacci, res.Err = d.check(cmd.Arg)

	case KindRatio:
		n, err := d.parseIndex(cmd.Arg)
		if err != nil {
			res.Err = err
			return res
		}
		res.Index = n
		res.Analysis, res.Err = fibonacci.RatioAnalysis(n)

	case KindBinet:
		n, err := d.parseIndex(cmd.Arg)
		if err != nil {
			res.Err = err
			return res
		}
		res.Index = n
		res.Binet, res.Err = fibonacci.CompareBinet(n)

	case KindStats:
		res.Counts, res.Err = d.recorder.Counts()

	case KindHelp, KindQuit:

	default:
		res.Err = UnknownCommandError{Verb: cmd.Kind.String()}
	}
	return res
}

// parseIndex accepts a base-10 integer. Negative values pass through so the
// toolkit reports them; values above the session limit are rejected here.
func (d *Dispatcher) parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, apperrors.NewInvalidArgument("n", "%s is out of range", arg)
		}
		return 0, apperrors.NewInvalidArgument("n", "must be an integer, got %q", arg)
	}
	if n > d.maxIndex {
		return 0, apperrors.NewInvalidArgument("n", "%d exceeds the explorer limit of %d", n, d.maxIndex)
	}
	return n, nil
}

// sequenceBelow accepts an integer of any size or a decimal bound.
func (d *Dispatcher) sequenceBelow(arg string) (fibonacci.Sequence, error) {
	if len(strings.TrimLeft(arg, "+-")) > d.maxBoundDigits {
		return nil, apperrors.NewInvalidArgument("max", "more than %d digits", d.maxBoundDigits)
	}
	if bound, ok := new(big.Int).SetString(arg, 10); ok {
		return fibonacci.SequenceBelow(bound)
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, apperrors.NewInvalidArgument("max", "must be a number, got %q", arg)
	}
	return fibonacci.SequenceBelowFloat(f)
}

// check parses the candidate as an integer first; a decimal that is not
// integral is a valid input that simply is not a Fibonacci number.
func (d *Dispatcher) check(arg string) (*big.Int, bool, error) {
	if len(strings.TrimLeft(arg, "+-")) > d.maxBoundDigits {
		return nil, false, apperrors.NewInvalidArgument("num", "more than %d digits", d.maxBoundDigits)
	}
	if num, ok := new(big.Int).SetString(arg, 10); ok {
		return num, fibonacci.IsFibonacci(num), nil
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, false, apperrors.NewInvalidArgument("num", "must be a number, got %q", arg)
	}
	return nil, fibonacci.IsFibonacciFloat(f), nil
}
