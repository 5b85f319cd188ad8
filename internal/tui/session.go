package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/fibtoolkit/internal/format"
	"github.com/agbru/fibtoolkit/internal/metrics"
	"github.com/agbru/fibtoolkit/internal/orchestration"
)

// defaultSparklineWidth is the number of durations kept before the first
// resize.
const defaultSparklineWidth = 24

// SessionModel displays per-session statistics: command tallies from the
// metrics recorder, recent durations and runtime memory.
type SessionModel struct {
	counts    []metrics.CommandCount
	durations *DurationRing
	last      time.Duration
	memory    metrics.MemorySnapshot
	width     int
	height    int
}

// NewSessionModel creates a new session panel.
func NewSessionModel() SessionModel {
	return SessionModel{durations: NewDurationRing(defaultSparklineWidth)}
}

// SetSize updates dimensions. The sparkline keeps one sample per column.
func (s *SessionModel) SetSize(w, h int) {
	s.width = w
	s.height = h
	s.durations.Resize(max(w-6, 1))
}

// Record adds the duration of an executed toolkit command.
func (s *SessionModel) Record(res orchestration.Result) {
	switch res.Kind {
	case orchestration.KindInvalid, orchestration.KindStats, orchestration.KindHelp, orchestration.KindQuit:
		return
	}
	s.last = res.Duration
	s.durations.Push(res.Duration)
}

// UpdateCounts replaces the per-command tallies.
func (s *SessionModel) UpdateCounts(counts []metrics.CommandCount) {
	s.counts = counts
}

// UpdateMemStats stores the latest memory snapshot.
func (s *SessionModel) UpdateMemStats(snap metrics.MemorySnapshot) {
	s.memory = snap
}

// Totals returns the number of successful and failed commands.
func (s SessionModel) Totals() (ok, failed uint64) {
	for _, c := range s.counts {
		ok += c.OK
		failed += c.Failed
	}
	return ok, failed
}

// View renders the session panel.
func (s SessionModel) View() string {
	var rows []string
	ok, failed := s.Totals()
	rows = append(rows,
		metricRow("Commands:", fmt.Sprintf("%d", ok+failed)),
		metricRow("Failed:", fmt.Sprintf("%d", failed)),
		metricRow("Last:", format.FormatExecutionDuration(s.last)),
		metricRow("Heap:", format.FormatBytes(s.memory.HeapAlloc)),
		metricRow("GC:", fmt.Sprintf("%d", s.memory.NumGC)),
		"",
		metricLabelStyle.Render(" Recent durations"),
		" "+sparklineStyle.Render(RenderSparkline(s.durations.Slice())),
	)
	if len(s.counts) > 0 {
		rows = append(rows, "", metricLabelStyle.Render(" By command"))
		for _, c := range s.counts {
			rows = append(rows, fmt.Sprintf(" %s %s",
				metricLabelStyle.Render(fmt.Sprintf("%-7s", c.Command)),
				metricValueStyle.Render(fmt.Sprintf("%d ok / %d err", c.OK, c.Failed))))
		}
	}

	return panelStyle.
		Width(max(s.width-2, 0)).
		Height(max(s.height-2, 0)).
		Render(strings.Join(rows, "\n"))
}

func metricRow(label, value string) string {
	return fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-10s", label)),
		metricValueStyle.Render(value))
}
