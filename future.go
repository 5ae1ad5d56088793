package muon

import "sync"

// Future is the asynchronous result contract the wrapper recognizes. When a
// wrapped method returns a Future, exit logging is deferred until the future
// settles; the future itself is returned to the caller unchanged.
type Future interface {
	// Done is closed when the future has settled.
	Done() <-chan struct{}

	// Result returns the settled value or error. Calling Result before
	// Done is closed is undefined.
	Result() (any, error)
}

// IsFuture reports whether v carries a deferred result.
func IsFuture(v any) bool {
	_, ok := v.(Future)
	return ok
}

// Promise is a settable Future.
//
//	p := muon.NewPromise()
//	go func() { p.Resolve(compute()) }()
//	return p, nil
type Promise struct {
	done chan struct{}
	once sync.Once
	val  any
	err  error
}

// NewPromise creates an unsettled Promise.
func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// Resolve settles the promise with a value. Only the first settlement wins.
func (p *Promise) Resolve(v any) {
	p.once.Do(func() {
		p.val = v
		close(p.done)
	})
}

// Reject settles the promise with an error. Only the first settlement wins.
func (p *Promise) Reject(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Done implements Future.
func (p *Promise) Done() <-chan struct{} { return p.done }

// Result implements Future.
func (p *Promise) Result() (any, error) { return p.val, p.err }

// Wait blocks until the promise settles and returns its outcome.
func (p *Promise) Wait() (any, error) {
	<-p.done
	return p.val, p.err
}
