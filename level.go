package muon

import "strings"

// Level controls how much instrumentation output a Logger emits.
// Ordering matters: the instrumentation gate compares the logger's current
// level against the level a decoration requires.
type Level int8

const (
	// LevelOff suppresses all output.
	LevelOff Level = iota
	// LevelErrors emits failure lines only.
	LevelErrors
	// LevelVerbose emits entry/exit lines for standard decorations.
	LevelVerbose
	// LevelDebug additionally emits debug-channel decorations and inline
	// argument detail.
	LevelDebug
)

// String returns the textual form used in configuration files.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelErrors:
		return "errors"
	case LevelVerbose:
		return "verbose"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string level to Level.
// Unknown strings fall back to LevelVerbose.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "off", "silent":
		return LevelOff
	case "errors", "error":
		return LevelErrors
	case "verbose", "info", "log":
		return LevelVerbose
	case "debug":
		return LevelDebug
	default:
		return LevelVerbose
	}
}
