package signal

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/delaneyj/coldsignal/diag"
	"github.com/delaneyj/coldsignal/disposable"
)

// StrictDisposable is the handle returned by StartStrict. It remembers
// where the subscription was started so that a handle dropped while its
// subscription is still running can be reported.
type StrictDisposable struct {
	inner disposable.Disposable
	state *strictState
	File  string
	Line  int
}

type strictState struct {
	disposed atomic.Bool
	tracker  *diag.Tracker
	site     diag.Site
}

type strictLeak struct {
	state  *strictState
	active func() bool
}

// StartStrict is Start plus call-site bookkeeping in diag.Default().
func (s Signal[V, E]) StartStrict(next func(V), failed func(E), completed func()) *StrictDisposable {
	return s.startStrict(diag.Default(), 2, next, failed, completed)
}

// StartStrictIn is StartStrict reporting to tracker.
func (s Signal[V, E]) StartStrictIn(tracker *diag.Tracker, next func(V), failed func(E), completed func()) *StrictDisposable {
	return s.startStrict(tracker, 2, next, failed, completed)
}

func (s Signal[V, E]) startStrict(tracker *diag.Tracker, skip int, next func(V), failed func(E), completed func()) *StrictDisposable {
	if tracker == nil {
		tracker = diag.Default()
	}
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "unknown", 0
	}

	state := &strictState{
		tracker: tracker,
		site:    tracker.Begin(file, line),
	}
	sub := NewSubscriber(next, failed, completed)
	h := s.start(sub)
	d := &StrictDisposable{
		inner: h,
		state: state,
		File:  file,
		Line:  line,
	}

	subRef := h.sub
	runtime.AddCleanup(d, reportLeak, strictLeak{
		state: state,
		active: func() bool {
			sub := subRef.Value()
			return sub != nil && sub.Active()
		},
	})
	return d
}

func reportLeak(l strictLeak) {
	if !l.state.disposed.CompareAndSwap(false, true) {
		return
	}
	if l.active() {
		l.state.tracker.Leak(l.state.site)
		return
	}
	l.state.tracker.End(l.state.site)
}

func (d *StrictDisposable) Dispose() {
	if d.state.disposed.CompareAndSwap(false, true) {
		d.state.tracker.End(d.state.site)
	}
	d.inner.Dispose()
}

func (d *StrictDisposable) String() string {
	return fmt.Sprintf("strict subscription at %s:%d", d.File, d.Line)
}
