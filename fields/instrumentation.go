// Package fields provides instrumentation-specific logging field helpers.
//
// These helpers create structured fields with consistent naming for
// call-correlation data alongside muon's pre-formatted lines.
//
// Usage:
//
//	import "github.com/quarklabs/muon/fields"
//
//	logger.Log(ctx, "cache warmed",
//	    fields.Correlation(cc.ID),
//	    fields.Subject("RepoCache"),
//	    fields.DurationMs(12.5),
//	)
package fields

import (
	"strconv"
	"time"

	"github.com/quarklabs/muon"
)

// --- Correlation Fields ---

// Correlation creates a correlation id field, rendered in base16 to match
// the id segment of muon's log prefixes.
func Correlation(id int64) muon.Field {
	return muon.String("correlation_id", strconv.FormatInt(id, 16))
}

// Subject creates a field for the instrumented receiver's display name.
func Subject(name string) muon.Field {
	return muon.String("subject", name)
}

// Method creates a field for the instrumented method name.
func Method(name string) muon.Field {
	return muon.String("method", name)
}

// Outcome creates a field for the call outcome ("completed" or "failed").
func Outcome(outcome string) muon.Field {
	return muon.String("outcome", outcome)
}

// --- Timing Fields ---

// DurationMs creates an elapsed-time field in milliseconds.
func DurationMs(ms float64) muon.Field {
	return muon.F("duration_ms", ms)
}

// Duration creates an elapsed-time field from a time.Duration.
func Duration(d time.Duration) muon.Field {
	return muon.F("duration_ms", float64(d.Microseconds())/1000.0)
}

// --- Argument Fields ---

// Args creates a field carrying the formatted argument string.
func Args(args string) muon.Field {
	return muon.String("args", args)
}
