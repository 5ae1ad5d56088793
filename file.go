package muon

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits applied when FileConfig leaves them unset. Instrumented
// hot paths can emit two lines per call, so file output always rotates.
const (
	defaultMaxSizeMB  = 100
	defaultMaxAgeDays = 7
	defaultMaxBackups = 5
)

// withDefaults returns a copy of the config with unset rotation limits
// filled in.
func (c FileConfig) withDefaults() FileConfig {
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = defaultMaxSizeMB
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = defaultMaxAgeDays
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = defaultMaxBackups
	}
	return c
}

// NewFileWriter creates the rotating writer entry/exit lines are persisted
// through, backed by lumberjack. Returns nil if the path is empty.
func NewFileWriter(cfg FileConfig) io.Writer {
	if cfg.Path == "" {
		return nil
	}
	cfg = cfg.withDefaults()

	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxAge:     cfg.MaxAgeDays,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
}
