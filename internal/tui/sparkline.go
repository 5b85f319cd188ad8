package tui

import "time"

// sparklineChars maps levels 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// DurationRing is a fixed-capacity circular buffer of command durations.
type DurationRing struct {
	data  []time.Duration
	head  int
	count int
}

// NewDurationRing creates a ring with the given capacity.
func NewDurationRing(capacity int) *DurationRing {
	if capacity <= 0 {
		capacity = 1
	}
	return &DurationRing{data: make([]time.Duration, capacity)}
}

// Push adds a sample, overwriting the oldest if full.
func (r *DurationRing) Push(d time.Duration) {
	r.data[r.head] = d
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Len returns the number of valid samples.
func (r *DurationRing) Len() int { return r.count }

// Cap returns the buffer capacity.
func (r *DurationRing) Cap() int { return len(r.data) }

// Last returns the most recent sample, or 0 if empty.
func (r *DurationRing) Last() time.Duration {
	if r.count == 0 {
		return 0
	}
	idx := r.head - 1
	if idx < 0 {
		idx = len(r.data) - 1
	}
	return r.data[idx]
}

// Slice returns samples in chronological order (oldest first).
func (r *DurationRing) Slice() []time.Duration {
	if r.count == 0 {
		return nil
	}
	result := make([]time.Duration, r.count)
	start := r.head - r.count
	if start < 0 {
		start += len(r.data)
	}
	for i := range r.count {
		result[i] = r.data[(start+i)%len(r.data)]
	}
	return result
}

// Resize changes the capacity, preserving the most recent samples that fit.
func (r *DurationRing) Resize(newCap int) {
	if newCap <= 0 {
		newCap = 1
	}
	if newCap == len(r.data) {
		return
	}
	old := r.Slice()
	r.data = make([]time.Duration, newCap)
	r.head = 0
	r.count = 0
	start := 0
	if len(old) > newCap {
		start = len(old) - newCap
	}
	for _, d := range old[start:] {
		r.Push(d)
	}
}

// RenderSparkline draws one block per sample, scaled so that the slowest
// sample reaches the full block.
func RenderSparkline(samples []time.Duration) string {
	if len(samples) == 0 {
		return ""
	}
	var peak time.Duration
	for _, d := range samples {
		peak = max(peak, d)
	}
	runes := make([]rune, len(samples))
	for i, d := range samples {
		idx := 0
		if peak > 0 && d > 0 {
			idx = int(float64(d) / float64(peak) * 7.0)
		}
		runes[i] = sparklineChars[min(idx, 7)]
	}
	return string(runes)
}
