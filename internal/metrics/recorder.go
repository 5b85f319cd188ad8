package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "fibtoolkit"

	// OutcomeOK labels a command that completed.
	OutcomeOK = "ok"
	// OutcomeError labels a command that returned an error.
	OutcomeError = "error"
)

// Recorder counts explorer commands and their latencies. Each Recorder owns
// its registry, so independent sessions (and tests) never share counters.
type Recorder struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// CommandCount is the per-command tally exposed by Counts.
type CommandCount struct {
	Command string
	OK      uint64
	Failed  uint64
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Explorer commands executed, by command and outcome.",
		}, []string{"command", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Explorer command execution time.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"command"}),
	}
	r.registry.MustRegister(r.commands, r.duration)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records one execution of command.
func (r *Recorder) Observe(command string, d time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.commands.WithLabelValues(command, outcome).Inc()
	r.duration.WithLabelValues(command).Observe(d.Seconds())
}

// Counts gathers the command counter and returns one entry per command,
// sorted by command name.
func (r *Recorder) Counts() ([]CommandCount, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	byCommand := make(map[string]*CommandCount)
	for _, mf := range families {
		if mf.GetName() != namespace+"_commands_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var command, outcome string
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "command":
					command = lp.GetValue()
				case "outcome":
					outcome = lp.GetValue()
				}
			}
			cc, ok := byCommand[command]
			if !ok {
				cc = &CommandCount{Command: command}
				byCommand[command] = cc
			}
			v := uint64(m.GetCounter().GetValue())
			if outcome == OutcomeError {
				cc.Failed += v
			} else {
				cc.OK += v
			}
		}
	}

	out := make([]CommandCount, 0, len(byCommand))
	for _, cc := range byCommand {
		out = append(out, *cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Command < out[j].Command })
	return out, nil
}
