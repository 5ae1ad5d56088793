package muon

import "sync"

var (
	globalMu sync.RWMutex
	global   *Instrumentor
)

// SetGlobal sets the global Instrumentor.
func SetGlobal(in *Instrumentor) {
	globalMu.Lock()
	global = in
	globalMu.Unlock()
}

// G returns the global Instrumentor.
func G() *Instrumentor {
	globalMu.RLock()
	g := global
	globalMu.RUnlock()
	if g == nil {
		panic("muon: global not set, call SetGlobal first")
	}
	return g
}

// getGlobal returns the global Instrumentor, lazily constructing a default
// one on first use. The fallback is stored so every package-level call
// shares a single registry and its monotonic id sequence.
func getGlobal() *Instrumentor {
	globalMu.RLock()
	g := global
	globalMu.RUnlock()
	if g != nil {
		return g
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = New(NewLogger(Default()))
	}
	return global
}

// Func decorates a free function using the global Instrumentor.
func Func(name string, fn Fn, opts ...Option) Fn {
	return getGlobal().Func(name, fn, opts...)
}

// Method decorates a method using the global Instrumentor.
func Method(instance any, name string, fn Fn, opts ...Option) Fn {
	return getGlobal().Method(instance, name, fn, opts...)
}

// Current returns the most recent correlation context from the global
// Instrumentor. Best-effort under interleaved calls.
func Current() (*CorrelationContext, bool) {
	return getGlobal().Current()
}
