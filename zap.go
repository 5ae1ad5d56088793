package muon

import (
	"context"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger implements Logger using Uber's Zap.
type zapLogger struct {
	zap    *zap.Logger
	config Config
	level  *atomic.Int32
}

// NewLogger creates a Logger from the provided configuration.
func NewLogger(cfg Config) Logger {
	cores := make([]zapcore.Core, 0, 3)

	if cfg.Console.Enabled {
		cores = append(cores, buildConsoleCores(cfg)...)
	}

	if cfg.File.Enabled && cfg.File.Path != "" {
		if fileCore := buildFileCore(cfg); fileCore != nil {
			cores = append(cores, fileCore)
		}
	}

	var core zapcore.Core
	switch len(cores) {
	case 0:
		core = zapcore.NewNopCore()
	case 1:
		core = cores[0]
	default:
		core = zapcore.NewTee(cores...)
	}

	return newZapLogger(zap.New(core, buildZapOptions(cfg)...), ParseLevel(cfg.Level), cfg)
}

// NewLoggerFromZap wraps an existing zap.Logger.
// Useful for embedding muon into an application that already owns its zap
// setup, and for tests that capture output with an observer core.
func NewLoggerFromZap(z *zap.Logger, level Level) Logger {
	return newZapLogger(z, level, Default())
}

func newZapLogger(z *zap.Logger, level Level, cfg Config) *zapLogger {
	lvl := &atomic.Int32{}
	lvl.Store(int32(level))
	return &zapLogger{zap: z, config: cfg, level: lvl}
}

// prepareFields converts muon fields and appends trace correlation fields
// extracted from the context.
func (l *zapLogger) prepareFields(ctx context.Context, fields []Field) []zap.Field {
	zapFields := toZapFields(fields)

	// Short-circuit: context.Background() and context.TODO() never carry
	// trace or correlation info
	if ctx != nil && ctx != context.Background() && ctx != context.TODO() {
		zapFields = append(zapFields, extractContextZapFields(ctx)...)
	}

	return zapFields
}

// Debug logs a message on the debug channel.
func (l *zapLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	if l.Level() < LevelDebug {
		return // Zero allocation for filtered levels
	}
	l.zap.Debug(msg, l.prepareFields(ctx, fields)...)
}

// Log logs a message on the standard channel.
func (l *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	if l.Level() < LevelVerbose {
		return
	}
	l.zap.Info(msg, l.prepareFields(ctx, fields)...)
}

// Warn logs a message on the warning channel.
func (l *zapLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	if l.Level() < LevelVerbose {
		return
	}
	l.zap.Warn(msg, l.prepareFields(ctx, fields)...)
}

// Error logs a failure message with its error.
func (l *zapLogger) Error(ctx context.Context, err error, msg string, fields ...Field) {
	if l.Level() < LevelErrors {
		return
	}

	zapFields := l.prepareFields(ctx, fields)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	l.zap.Error(msg, zapFields...)
}

// LogWithDebugParams logs msg on the standard channel, appending the
// parameter text only when the debug level is active.
func (l *zapLogger) LogWithDebugParams(ctx context.Context, msg, params string, fields ...Field) {
	lvl := l.Level()
	if lvl < LevelVerbose {
		return
	}
	if lvl >= LevelDebug && params != "" {
		msg += "(" + params + ")"
	}
	l.zap.Info(msg, l.prepareFields(ctx, fields)...)
}

func (l *zapLogger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel changes the level at runtime.
// This is safe to call from multiple goroutines.
func (l *zapLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *zapLogger) Sync() error {
	return l.zap.Sync()
}

// --- Construction helpers ---

// buildZapOptions creates common zap options from config.
func buildZapOptions(cfg Config) []zap.Option {
	var opts []zap.Option

	if cfg.Development {
		opts = append(opts, zap.Development())
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	if cfg.ServiceName != "" {
		opts = append(opts, zap.Fields(zap.String("service", cfg.ServiceName)))
	}

	return opts
}

// buildConsoleCores creates console output cores.
// Returns two cores if ErrorsToStderr is enabled (stdout for standard output,
// stderr for warnings and errors).
func buildConsoleCores(cfg Config) []zapcore.Core {
	encoder := buildConsoleEncoder(cfg)

	// The muon Level gate runs before zap; cores accept everything.
	all := zap.LevelEnablerFunc(func(zapcore.Level) bool { return true })

	if cfg.Console.ErrorsToStderr {
		stdoutLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl < zapcore.WarnLevel
		})
		stderrLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.WarnLevel
		})

		return []zapcore.Core{
			zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), stdoutLevel),
			zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), stderrLevel),
		}
	}

	return []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), all),
	}
}

// buildConsoleEncoder creates the appropriate encoder for console output.
func buildConsoleEncoder(cfg Config) zapcore.Encoder {
	if cfg.Console.Format == "pretty" || (cfg.Development && cfg.Console.Format == "") {
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		if cfg.Console.Color {
			encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		} else {
			encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
			encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		}
		encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
		return zapcore.NewConsoleEncoder(encoderCfg)
	}

	// JSON encoder for production
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.MessageKey = "msg"
	encoderCfg.LevelKey = "level"
	encoderCfg.CallerKey = "caller"
	return zapcore.NewJSONEncoder(encoderCfg)
}

// buildFileCore creates the file output core with rotation.
func buildFileCore(cfg Config) zapcore.Core {
	writer := NewFileWriter(cfg.File)
	if writer == nil {
		return nil
	}

	// Always use JSON for file output
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	all := zap.LevelEnablerFunc(func(zapcore.Level) bool { return true })
	return zapcore.NewCore(encoder, zapcore.AddSync(writer), all)
}

// --- Field conversion ---

func toZapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	zapFields := make([]zap.Field, 0, len(fields)+2)
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			zapFields = append(zapFields, zap.String(f.Key, v))
		case int:
			zapFields = append(zapFields, zap.Int(f.Key, v))
		case int64:
			zapFields = append(zapFields, zap.Int64(f.Key, v))
		case bool:
			zapFields = append(zapFields, zap.Bool(f.Key, v))
		case error:
			zapFields = append(zapFields, zap.NamedError(f.Key, v))
		default:
			zapFields = append(zapFields, zap.Any(f.Key, f.Value))
		}
	}
	return zapFields
}
