// Package signal implements cold, single-subscriber push streams.
//
// A Signal wraps a generator. Every call to Start runs the generator again
// with a fresh Subscriber and returns a disposable that cancels that one
// activation. A subscription receives any number of values followed by at
// most one terminal event, completion or failure.
package signal

import (
	"weak"

	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/lock"
)

// NoValue is the value type of signals that only ever terminate.
type NoValue struct{ _ [0]func() }

// NoError is the failure type of signals that cannot fail.
type NoError struct{ _ [0]func() }

// Generator starts the work for one subscription and returns what cancels
// it. Returning nil means there is nothing to cancel.
type Generator[V, E any] func(*Subscriber[V, E]) disposable.Disposable

type Signal[V, E any] struct {
	generator Generator[V, E]
}

func New[V, E any](generator Generator[V, E]) Signal[V, E] {
	return Signal[V, E]{generator: generator}
}

// Start activates the signal. Any of the callbacks may be nil.
func (s Signal[V, E]) Start(next func(V), failed func(E), completed func()) disposable.Disposable {
	return s.start(NewSubscriber(next, failed, completed))
}

func (s Signal[V, E]) start(sub *Subscriber[V, E]) *subscriberDisposable[V, E] {
	var d disposable.Disposable
	if s.generator != nil {
		d = s.generator(sub)
	}
	sub.AssignDisposable(d)

	h := &subscriberDisposable[V, E]{
		mu:  lock.New(),
		sub: weak.Make(sub),
	}
	// A subscriber that terminated during the generator call has already
	// disposed d; the handle still marks the subscriber on Dispose.
	if sub.Active() {
		h.inner = d
	}
	return h
}

// subscriberDisposable is the handle returned by Start. It owns the work's
// disposable but only weakly refers to the subscriber, so holding on to the
// handle does not keep callbacks and their captures alive.
type subscriberDisposable[V, E any] struct {
	mu       lock.Mutex
	sub      weak.Pointer[Subscriber[V, E]]
	inner    disposable.Disposable
	disposed bool
}

func (h *subscriberDisposable[V, E]) Dispose() {
	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		return
	}
	h.disposed = true
	inner := h.inner
	h.inner = nil
	h.mu.Unlock()

	// The subscriber is marked even when there is no work to dispose, so
	// producers holding on to it can no longer reach the callbacks.
	terminatedHere := true
	if sub := h.sub.Value(); sub != nil {
		terminatedHere = sub.markTerminatedWithoutDisposal()
	}
	if inner != nil && terminatedHere {
		inner.Dispose()
	}
}

// Single emits v and completes.
func Single[V, E any](v V) Signal[V, E] {
	return New(func(sub *Subscriber[V, E]) disposable.Disposable {
		sub.PutNext(v)
		sub.PutCompletion()
		return nil
	})
}

// Complete completes without emitting.
func Complete[V, E any]() Signal[V, E] {
	return New(func(sub *Subscriber[V, E]) disposable.Disposable {
		sub.PutCompletion()
		return nil
	})
}

func Fail[V, E any](err E) Signal[V, E] {
	return New(func(sub *Subscriber[V, E]) disposable.Disposable {
		sub.PutFailure(err)
		return nil
	})
}

// Never emits nothing and never terminates.
func Never[V, E any]() Signal[V, E] {
	return New(func(*Subscriber[V, E]) disposable.Disposable {
		return nil
	})
}
