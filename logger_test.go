package muon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedLogger returns a Logger backed by an observer core so tests can
// assert on emitted lines.
func newObservedLogger(level Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewLoggerFromZap(zap.New(core), level), logs
}

func TestLogger_LevelGating(t *testing.T) {
	ctx := context.Background()
	logger, logs := newObservedLogger(LevelVerbose)

	logger.Debug(ctx, "hidden")
	logger.Log(ctx, "shown")
	if logs.Len() != 1 {
		t.Fatalf("got %d lines, want 1", logs.Len())
	}
	if logs.All()[0].Message != "shown" {
		t.Errorf("message = %q", logs.All()[0].Message)
	}

	logger.SetLevel(LevelDebug)
	logger.Debug(ctx, "now visible")
	if logs.Len() != 2 {
		t.Errorf("got %d lines after SetLevel(debug), want 2", logs.Len())
	}

	logger.SetLevel(LevelOff)
	logger.Error(ctx, errors.New("x"), "suppressed")
	if logs.Len() != 2 {
		t.Errorf("LevelOff should suppress errors, got %d lines", logs.Len())
	}
}

func TestLogger_LogWithDebugParams(t *testing.T) {
	ctx := context.Background()
	logger, logs := newObservedLogger(LevelVerbose)

	logger.LogWithDebugParams(ctx, "call", "a=1, b=2")
	if got := logs.All()[0].Message; got != "call" {
		t.Errorf("at verbose level message = %q, want params omitted", got)
	}

	logger.SetLevel(LevelDebug)
	logger.LogWithDebugParams(ctx, "call", "a=1, b=2")
	if got := logs.All()[1].Message; got != "call(a=1, b=2)" {
		t.Errorf("at debug level message = %q, want params inline", got)
	}
}

func TestLogger_ErrorAttachesError(t *testing.T) {
	ctx := context.Background()
	logger, logs := newObservedLogger(LevelErrors)

	boom := errors.New("boom")
	logger.Error(ctx, boom, "operation failed")

	entry := logs.All()[0]
	if entry.Level != zapcore.ErrorLevel {
		t.Errorf("level = %v, want error", entry.Level)
	}
	found := false
	for _, f := range entry.Context {
		if f.Key == "error" {
			found = true
		}
	}
	if !found {
		t.Error("error field missing from entry")
	}
}

func TestLogger_CorrelationFieldFromContext(t *testing.T) {
	logger, logs := newObservedLogger(LevelVerbose)

	cc := &CorrelationContext{ID: 0x2a}
	ctx := ContextWithCorrelation(context.Background(), cc)
	logger.Log(ctx, "with correlation")

	entry := logs.All()[0]
	var got string
	for _, f := range entry.Context {
		if f.Key == "correlation_id" {
			got = f.String
		}
	}
	if got != "2a" {
		t.Errorf("correlation_id field = %q, want %q", got, "2a")
	}
}

func TestNewLogger_Smoke(t *testing.T) {
	ctx := context.Background()

	logger := NewLogger(Default())
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	logger.Log(ctx, "test message", F("key", "value"))

	dev := NewLogger(Development())
	dev.Debug(ctx, "debug message")
	dev.Warn(ctx, "warn message")
}

func TestNewLogger_FileOutput(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "muon.log")

	cfg := Default().WithFile(path)
	cfg.Console.Enabled = false

	logger := NewLogger(cfg)
	logger.Log(ctx, "to file")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
