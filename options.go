package muon

import "time"

// ArgFormatter renders a single call argument. Returning ok=false suppresses
// the argument's fragment entirely.
type ArgFormatter func(value any) (text string, ok bool)

// PrefixContext is the read-only call descriptor handed to a prefix
// override.
type PrefixContext struct {
	// ID is the correlation id allocated for the call.
	ID int64
	// Instance is the receiver, nil for free functions.
	Instance any
	// InstanceName is the resolved display name of the receiver.
	InstanceName string
	// Name is the decorated method's name.
	Name string
	// Prefix is the default prefix the override is replacing.
	Prefix string
}

// options holds per-decoration configuration, immutable after decoration.
type options struct {
	debug         bool
	suppressArgs  bool
	argFormatters map[int]ArgFormatter
	condition     func(args []any) bool
	correlate     bool
	enter         func(args []any) string
	exit          func(result any) string
	prefix        func(pc PrefixContext, args []any) string
	sanitize      Sanitizer
	singleLine    bool
	timed         bool
	slowThreshold time.Duration
	paramNames    []string
}

func defaultOptions() *options {
	return &options{timed: true}
}

// Option configures a single decoration.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// WithDebug routes output to the debug channel and gates the decoration on
// the debug level instead of verbose.
func WithDebug() Option {
	return optionFunc(func(o *options) { o.debug = true })
}

// WithoutArgs suppresses all argument logging for the decoration.
func WithoutArgs() Option {
	return optionFunc(func(o *options) { o.suppressArgs = true })
}

// WithArg overrides formatting for the argument at the given position.
func WithArg(pos int, f ArgFormatter) Option {
	return optionFunc(func(o *options) {
		if o.argFormatters == nil {
			o.argFormatters = make(map[int]ArgFormatter)
		}
		o.argFormatters[pos] = f
	})
}

// WithoutArg suppresses only the argument at the given position.
func WithoutArg(pos int) Option {
	return WithArg(pos, func(any) (string, bool) { return "", false })
}

// WithCondition gates the decoration on a per-call predicate. When the
// predicate returns false the call bypasses instrumentation entirely; the
// method still runs.
func WithCondition(condition func(args []any) bool) Option {
	return optionFunc(func(o *options) { o.condition = condition })
}

// WithCorrelate force-enables correlation id assignment and printing even
// when timing is off.
func WithCorrelate() Option {
	return optionFunc(func(o *options) { o.correlate = true })
}

// WithEnter appends extra text to the entry line.
func WithEnter(enter func(args []any) string) Option {
	return optionFunc(func(o *options) { o.enter = enter })
}

// WithExit appends extra text to the exit line, computed from the call's
// result. A panic inside the callback is caught and rendered inline, never
// propagated.
func WithExit(exit func(result any) string) Option {
	return optionFunc(func(o *options) { o.exit = exit })
}

// WithPrefix fully replaces the computed prefix string.
func WithPrefix(prefix func(pc PrefixContext, args []any) string) Option {
	return optionFunc(func(o *options) { o.prefix = prefix })
}

// WithSanitizer applies a value transform during default argument
// formatting, e.g. redaction of secrets.
func WithSanitizer(sanitize Sanitizer) Option {
	return optionFunc(func(o *options) { o.sanitize = sanitize })
}

// SingleLine merges entry and exit into one combined log line emitted when
// the call settles.
func SingleLine() Option {
	return optionFunc(func(o *options) { o.singleLine = true })
}

// WithoutTiming disables elapsed-time measurement. Timed decorations imply
// correlation; untimed ones correlate only with WithCorrelate.
func WithoutTiming() Option {
	return optionFunc(func(o *options) { o.timed = false })
}

// WithSlowThreshold emits the exit line on the warning channel when the
// elapsed time exceeds d.
func WithSlowThreshold(d time.Duration) Option {
	return optionFunc(func(o *options) { o.slowThreshold = d })
}

// WithParameterNames supplies declared parameter names for name=value
// argument fragments. Go erases parameter names at compile time, so without
// this option arguments render as bare values.
func WithParameterNames(names ...string) Option {
	return optionFunc(func(o *options) { o.paramNames = names })
}
