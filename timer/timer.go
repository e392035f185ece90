package timer

import (
	"sync"
	"time"

	"github.com/delaneyj/coldsignal/queue"
)

// Timer fires fn on a queue after a timeout, once or repeatedly, until
// invalidated. Invalidate may be called from any goroutine; once it returns
// fn will not be invoked again.
type Timer struct {
	sched   Scheduler
	queue   queue.Queue
	timeout time.Duration
	repeat  bool
	fn      func()

	mu          sync.Mutex
	pending     Stopper
	started     bool
	invalidated bool
	fired       bool
}

func New(sched Scheduler, timeout time.Duration, repeat bool, q queue.Queue, fn func()) *Timer {
	if sched == nil {
		sched = System
	}
	if q == nil {
		q = queue.Immediate
	}
	return &Timer{
		sched:   sched,
		queue:   q,
		timeout: timeout,
		repeat:  repeat,
		fn:      fn,
	}
}

// Start arms the timer. Starting twice, or after Invalidate, does nothing.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.invalidated {
		return
	}
	t.started = true
	t.arm()
}

func (t *Timer) arm() {
	t.pending = t.sched.AfterFunc(t.timeout, func() {
		t.queue.Async(t.fire)
	})
}

func (t *Timer) fire() {
	t.mu.Lock()
	if t.invalidated {
		t.mu.Unlock()
		return
	}
	t.fired = true
	if t.repeat {
		t.arm()
	} else {
		t.invalidated = true
		t.pending = nil
	}
	fn := t.fn
	t.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (t *Timer) Invalidate() {
	t.mu.Lock()
	if t.invalidated {
		t.mu.Unlock()
		return
	}
	t.invalidated = true
	pending := t.pending
	t.pending = nil
	t.mu.Unlock()

	if pending != nil {
		pending.Stop()
	}
}

// Fired reports whether the timer has fired at least once. Checked after
// Invalidate it tells whether fn ran or never will.
func (t *Timer) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}
