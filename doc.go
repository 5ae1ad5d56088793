// Package muon provides transparent method instrumentation for Go services.
//
// Muon wraps method-like callables to emit structured entry/exit log lines,
// measure elapsed time, and correlate asynchronous call chains through
// monotonically-assigned ids, all without disturbing the wrapped call's
// return value, error, or panic.
//
// # Guarantees
//
//   - Transparency: a wrapped call returns, errors, and panics exactly like
//     the unwrapped call. Instrumentation is a pure side channel.
//   - Failure Isolation: internal formatting or logging failures degrade to
//     inline diagnostic text; they never propagate to the caller.
//   - Concurrency: Instrumentor, Registry, and Logger are safe for
//     concurrent use.
//
// # Basic usage
//
//	logger := muon.NewLogger(muon.Default())
//	defer logger.Sync()
//
//	in := muon.New(logger)
//	add := in.Func("add", func(ctx context.Context, args ...any) (any, error) {
//	    return args[0].(int) + args[1].(int), nil
//	}, muon.WithParameterNames("a", "b"))
//
//	sum, _ := add(ctx, 2, 3)
//	// logs: [1] add(a=2, b=3)
//	//       [1] add completed • 0 ms
//
// Muon is not a logging backend; it sits on top of one (Zap) and is designed
// to instrument hot paths cheaply when logging is gated off.
package muon
