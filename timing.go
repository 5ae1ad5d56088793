package muon

import (
	"fmt"
	"time"
)

// Marker is a monotonic time origin captured when a timed call starts.
// The zero Marker means timing was not requested.
type Marker struct {
	start time.Time
}

// StartTimer captures a monotonic marker for elapsed-time measurement.
// time.Time carries a monotonic reading, so wall-clock adjustments cannot
// skew the result.
func StartTimer() Marker {
	return Marker{start: time.Now()}
}

// Elapsed returns the formatted " • N ms" suffix for the exit line,
// or "" when no marker was captured.
func (m Marker) Elapsed() string {
	if m.start.IsZero() {
		return ""
	}
	return fmt.Sprintf(" • %d ms", time.Since(m.start).Milliseconds())
}

// ElapsedDuration returns the raw elapsed time, or 0 when no marker was
// captured.
func (m Marker) ElapsedDuration() time.Duration {
	if m.start.IsZero() {
		return 0
	}
	return time.Since(m.start)
}
