package signal

import (
	"runtime"

	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/lock"
)

// Subscriber receives the values of one activation of a Signal and at most
// one terminal event. Calls made after termination are silently dropped so
// that producers racing a cancellation never corrupt state.
type Subscriber[V, E any] struct {
	mu         lock.Mutex
	next       func(V)
	failed     func(E)
	completed  func()
	terminated bool
	disposable disposable.Disposable
	keepAlive  []any
}

// NewSubscriber builds a subscriber from optional callbacks; nil ones are
// treated as no-ops.
func NewSubscriber[V, E any](next func(V), failed func(E), completed func()) *Subscriber[V, E] {
	return &Subscriber[V, E]{
		mu:        lock.New(),
		next:      next,
		failed:    failed,
		completed: completed,
	}
}

// AssignDisposable hands the subscriber the disposable for the work feeding
// it. If the subscriber already terminated, d is disposed immediately.
func (s *Subscriber[V, E]) AssignDisposable(d disposable.Disposable) {
	if d == nil {
		return
	}
	s.mu.Lock()
	if s.terminated {
		s.mu.Unlock()
		d.Dispose()
		return
	}
	s.disposable = d
	s.mu.Unlock()
}

// KeepAlive pins obj until the subscriber terminates.
func (s *Subscriber[V, E]) KeepAlive(obj any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.terminated {
		s.keepAlive = append(s.keepAlive, obj)
	}
}

// Active reports whether the subscriber can still deliver events. Producers
// may use it to stop doing work nobody will observe.
func (s *Subscriber[V, E]) Active() (active bool) {
	lock.Guard(s.mu, func() {
		active = !s.terminated
	})
	return active
}

func (s *Subscriber[V, E]) PutNext(v V) {
	s.mu.Lock()
	var next func(V)
	if !s.terminated {
		next = s.next
	}
	s.mu.Unlock()

	if next != nil {
		next(v)
	}
}

func (s *Subscriber[V, E]) PutFailure(err E) {
	t, ok := s.terminate()
	if !ok {
		return
	}
	if t.failed != nil {
		t.failed(err)
	}
	t.release()
}

func (s *Subscriber[V, E]) PutCompletion() {
	t, ok := s.terminate()
	if !ok {
		return
	}
	if t.completed != nil {
		t.completed()
	}
	t.release()
}

// markTerminatedWithoutDisposal is used by the handle returned from Start:
// the handle disposes the work itself, so the captured disposable is dropped
// here. Reports whether this call performed the termination.
func (s *Subscriber[V, E]) markTerminatedWithoutDisposal() bool {
	t, ok := s.terminate()
	if ok {
		runtime.KeepAlive(t.keepAlive)
	}
	return ok
}

// termination is everything captured under the lock at the moment the
// subscriber terminates; it is acted upon after the lock is released.
type termination[V, E any] struct {
	failed     func(E)
	completed  func()
	disposable disposable.Disposable
	keepAlive  []any
}

func (s *Subscriber[V, E]) terminate() (termination[V, E], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminated {
		return termination[V, E]{}, false
	}
	t := termination[V, E]{
		failed:     s.failed,
		completed:  s.completed,
		disposable: s.disposable,
		keepAlive:  s.keepAlive,
	}
	s.terminated = true
	s.next = nil
	s.failed = nil
	s.completed = nil
	s.disposable = nil
	s.keepAlive = nil
	return t, true
}

func (t termination[V, E]) release() {
	if t.disposable != nil {
		t.disposable.Dispose()
	}
	runtime.KeepAlive(t.keepAlive)
}
