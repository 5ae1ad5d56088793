package muon

import (
	"math"
	"sync"
)

// maxCorrelationID is the largest id Allocate hands out before wrapping
// back to 1. Wrapped ids are not globally unique across a process lifetime;
// a collision with a still-open, very long-lived call is an accepted edge.
const maxCorrelationID = math.MaxInt64

// CorrelationContext is the mutable record associated with one open
// instrumented call. The wrapped method (or code it calls) may annotate the
// eventual exit line through SetExitDetails.
type CorrelationContext struct {
	// ID is the correlation id allocated for this call.
	ID int64

	// Prefix is the computed log prefix for this call.
	Prefix string

	mu          sync.Mutex
	exitDetails string
}

// SetExitDetails records extra text appended to the call's exit line,
// e.g. a cache-hit/miss annotation. Safe for concurrent use.
func (c *CorrelationContext) SetExitDetails(details string) {
	c.mu.Lock()
	c.exitDetails = details
	c.mu.Unlock()
}

// ExitDetails returns the annotation set via SetExitDetails, or "".
func (c *CorrelationContext) ExitDetails() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exitDetails
}

// Registry maps correlation ids to the contexts of in-flight instrumented
// calls and owns the monotonic id counter. Entries are transient: opened when
// a correlating call begins, removed the moment its exit line has been
// logged. The zero value is not usable; construct with NewRegistry.
//
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	counter int64
	last    int64
	open    map[int64]*CorrelationContext
}

// NewRegistry creates an empty Registry with its counter at zero.
// Instrumentors created without an explicit registry share one per
// Instrumentor; tests can instantiate isolated registries.
func NewRegistry() *Registry {
	return &Registry{open: make(map[int64]*CorrelationContext)}
}

// Allocate increments the counter and returns the new id.
// Past maxCorrelationID the counter wraps to 1, never 0.
func (r *Registry) Allocate() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.counter >= maxCorrelationID {
		r.counter = 1
	} else {
		r.counter++
	}
	r.last = r.counter
	return r.counter
}

// Open inserts (or overwrites) the context for id.
func (r *Registry) Open(id int64, cc *CorrelationContext) {
	r.mu.Lock()
	r.open[id] = cc
	r.mu.Unlock()
}

// Close removes the context for id. Closing an absent id is a no-op.
func (r *Registry) Close(id int64) {
	r.mu.Lock()
	delete(r.open, id)
	r.mu.Unlock()
}

// Lookup returns the context for id, if the call is still open.
func (r *Registry) Lookup(id int64) (*CorrelationContext, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cc, ok := r.open[id]
	return cc, ok
}

// Current returns the context of the most recently allocated id, if that
// call is still open.
//
// This is a best-effort convenience for out-of-band callers: under
// interleaved calls the most recently allocated id may belong to an
// unrelated call, not the caller's own. Code running inside an instrumented
// call should use CorrelationFromContext instead.
func (r *Registry) Current() (*CorrelationContext, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cc, ok := r.open[r.last]
	return cc, ok
}
