package muon

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/quarklabs/muon/internal/introspect"
)

// Fn is the method-like callable shape the wrapper decorates and returns.
// Property getters are zero-argument Fns.
type Fn func(ctx context.Context, args ...any) (any, error)

// Instrumentor produces instrumented replacements for methods. It composes
// a Logger, a correlation Registry, and an optional tracer. Safe for
// concurrent use.
type Instrumentor struct {
	logger   Logger
	registry *Registry
	tracer   trace.Tracer
}

// InstrumentorOption configures an Instrumentor at construction.
type InstrumentorOption interface {
	applyInstrumentor(*Instrumentor)
}

type instrumentorOptionFunc func(*Instrumentor)

func (f instrumentorOptionFunc) applyInstrumentor(in *Instrumentor) { f(in) }

// WithRegistry supplies an explicit correlation registry. Tests use this to
// isolate id sequences; by default each Instrumentor owns a fresh one.
func WithRegistry(r *Registry) InstrumentorOption {
	return instrumentorOptionFunc(func(in *Instrumentor) { in.registry = r })
}

// WithTracer wraps every logged call in a span from the given tracer.
// Failures record the error and set the span status.
func WithTracer(t trace.Tracer) InstrumentorOption {
	return instrumentorOptionFunc(func(in *Instrumentor) { in.tracer = t })
}

// New creates an Instrumentor writing to logger. A nil logger falls back to
// a default console logger.
func New(logger Logger, opts ...InstrumentorOption) *Instrumentor {
	if logger == nil {
		logger = NewLogger(Default())
	}
	in := &Instrumentor{logger: logger}
	for _, opt := range opts {
		opt.applyInstrumentor(in)
	}
	if in.registry == nil {
		in.registry = NewRegistry()
	}
	return in
}

// Registry returns the instrumentor's correlation registry.
func (in *Instrumentor) Registry() *Registry { return in.registry }

// Logger returns the instrumentor's logger.
func (in *Instrumentor) Logger() Logger { return in.logger }

// Current returns the context of the most recently allocated correlation id.
// Best-effort under interleaved calls; see Registry.Current.
func (in *Instrumentor) Current() (*CorrelationContext, bool) {
	return in.registry.Current()
}

// Func decorates a free function. An empty name is resolved from the
// function's symbol.
func (in *Instrumentor) Func(name string, fn Fn, opts ...Option) Fn {
	return in.Method(nil, name, fn, opts...)
}

// Method decorates a method of instance, returning a replacement with
// identical behavior on the value/error channel plus entry/exit logging.
// The receiver's display name comes from Nameable or its type name.
//
// Decorating nil is a programmer error and panics at decoration time.
func (in *Instrumentor) Method(instance any, name string, fn Fn, opts ...Option) Fn {
	if fn == nil {
		panic("muon: cannot instrument a nil function")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(o)
	}

	if name == "" {
		name = introspect.FuncName(fn)
	}
	names := o.paramNames
	if names == nil {
		names = introspect.Parameters(fn)
	}

	return func(ctx context.Context, args ...any) (any, error) {
		return in.call(ctx, instance, name, names, o, fn, args)
	}
}

// call runs the per-invocation state machine.
func (in *Instrumentor) call(ctx context.Context, instance any, name string, names []string, o *options, fn Fn, args []any) (any, error) {
	// A new id is allocated unconditionally so external log tooling sees a
	// single monotonic sequence, even for suppressed calls.
	id := in.registry.Allocate()

	if !in.shouldLog(o, args) {
		return fn(ctx, args...)
	}

	correlate := o.correlate || o.timed
	subject := LoggableName(instance)

	qualified := name
	if subject != "" {
		qualified = subject + "." + name
	}

	prefix := qualified
	if correlate {
		prefix = "[" + strconv.FormatInt(id, 16) + "] " + qualified
	}
	if o.prefix != nil {
		prefix = safePrefix(o.prefix, PrefixContext{
			ID:           id,
			Instance:     instance,
			InstanceName: subject,
			Name:         name,
			Prefix:       prefix,
		}, args, prefix)
	}

	// The context is registered before any logging so nested code can set
	// exit details or look it up while the entry line is still in flight.
	var cc *CorrelationContext
	if correlate {
		cc = &CorrelationContext{ID: id, Prefix: prefix}
		in.registry.Open(id, cc)
		ctx = ContextWithCorrelation(ctx, cc)
	}

	var span trace.Span
	if in.tracer != nil {
		ctx, span = in.tracer.Start(ctx, qualified)
	}

	var enterText string
	if o.enter != nil {
		enterText = safeEnter(o.enter, args)
	}
	argText := formatArgs(args, names, o)

	if !o.singleLine {
		entry := prefix
		if enterText != "" {
			entry += " " + enterText
		}
		if o.debug {
			if argText != "" {
				entry += "(" + argText + ")"
			}
			in.logger.Debug(ctx, entry)
		} else {
			in.logger.LogWithDebugParams(ctx, entry, argText)
		}
	}

	s := &callState{
		in:        in,
		o:         o,
		ctx:       ctx,
		cc:        cc,
		span:      span,
		prefix:    prefix,
		enterText: enterText,
		argText:   argText,
	}
	// An explicit exit option always gets a marker so its line carries
	// elapsed time even when timing is off.
	if o.timed || o.exit != nil {
		s.marker = StartTimer()
	}

	defer func() {
		if r := recover(); r != nil {
			s.fail(fmt.Errorf("panic: %v", r))
			panic(r)
		}
	}()

	result, err := fn(ctx, args...)

	switch {
	case err != nil:
		s.fail(err)

	case IsFuture(result):
		f := result.(Future)
		go func() {
			<-f.Done()
			if v, ferr := f.Result(); ferr != nil {
				s.fail(ferr)
			} else {
				s.exit(v)
			}
		}()

	default:
		s.exit(result)
	}

	return result, err
}

// shouldLog computes the gate: the configured level must admit the
// decoration's channel and the optional predicate must hold.
func (in *Instrumentor) shouldLog(o *options, args []any) bool {
	required := LevelVerbose
	if o.debug {
		required = LevelDebug
	}
	if in.logger.Level() < required {
		return false
	}
	if o.condition == nil {
		return true
	}
	return safeCondition(o.condition, args)
}

// callState carries everything the exit-logging routine needs, for both the
// immediate and the deferred (Future) paths.
type callState struct {
	in        *Instrumentor
	o         *options
	ctx       context.Context
	cc        *CorrelationContext
	span      trace.Span
	prefix    string
	enterText string
	argText   string
	marker    Marker
}

// exit logs the success line and releases the correlation context.
func (s *callState) exit(result any) {
	exitText := "completed"
	if s.o.exit != nil {
		exitText = safeExit(s.o.exit, result)
	}
	s.finish(exitText, nil)
}

// fail logs the failure line and releases the correlation context.
// The error is logged, never altered; the caller re-raises it.
func (s *callState) fail(err error) {
	s.finish("failed", err)
}

func (s *callState) finish(exitText string, err error) {
	msg := s.prefix
	if s.o.singleLine {
		if s.enterText != "" {
			msg += " " + s.enterText
		}
		if s.argText != "" {
			msg += "(" + s.argText + ")"
		}
	}
	msg += " " + exitText
	if err != nil {
		msg += ": " + err.Error()
	}
	if s.cc != nil {
		if details := s.cc.ExitDetails(); details != "" {
			msg += details
		}
	}
	msg += s.marker.Elapsed()

	switch {
	case err != nil:
		s.in.logger.Error(s.ctx, err, msg)
		if s.span != nil {
			s.span.RecordError(err)
			s.span.SetStatus(codes.Error, err.Error())
		}
	case s.o.slowThreshold > 0 && s.marker.ElapsedDuration() > s.o.slowThreshold:
		s.in.logger.Warn(s.ctx, msg)
	case s.o.debug:
		s.in.logger.Debug(s.ctx, msg)
	default:
		s.in.logger.Log(s.ctx, msg)
	}

	if s.span != nil {
		s.span.End()
	}
	if s.cc != nil {
		s.in.registry.Close(s.cc.ID)
	}
}

// --- Callback guards ---
//
// User-supplied callbacks must never turn a successful call into a failure.
// Each guard degrades a panic to inline diagnostic text or a neutral value.

func safeExit(exit func(any) string, result any) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("@log.exit error: %v", r)
		}
	}()
	return exit(result)
}

func safeEnter(enter func([]any) string, args []any) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("@log.enter error: %v", r)
		}
	}()
	return enter(args)
}

func safePrefix(prefix func(PrefixContext, []any) string, pc PrefixContext, args []any, fallback string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = fallback
		}
	}()
	return prefix(pc, args)
}

// A panicking condition counts as absent: the call is instrumented rather
// than silently losing its log lines.
func safeCondition(condition func([]any) bool, args []any) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = true
		}
	}()
	return condition(args)
}
