package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats how long an explorer command took.
// Most toolkit commands finish in nanoseconds or microseconds, so those
// stay visible instead of collapsing to zero: whole nanoseconds below 1µs,
// whole microseconds below 1ms, whole milliseconds below 1s, and the
// duration rounded to the millisecond beyond that.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", max(d.Nanoseconds(), 0))
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}
