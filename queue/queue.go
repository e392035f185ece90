// Package queue provides the "run this closure asynchronously" collaborator
// used by operators that hop between execution contexts.
package queue

import "sync"

type Queue interface {
	Async(fn func())
}

type immediate struct{}

func (immediate) Async(fn func()) { fn() }

// Immediate runs every closure inline on the calling goroutine.
var Immediate Queue = immediate{}

// Serial runs closures one at a time in submission order. A worker
// goroutine is started when work arrives and exits once the queue drains.
type Serial struct {
	mu      sync.Mutex
	pending []func()
	running bool
}

func NewSerial() *Serial {
	return &Serial{}
}

func (q *Serial) Async(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.mu.Unlock()

	go q.drain()
}

func (q *Serial) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.running = false
			q.mu.Unlock()
			return
		}
		fn := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		fn()
	}
}

// Sync runs fn on q and waits for it to finish. It must not be called from
// a closure already running on q.
func Sync(q Queue, fn func()) {
	done := make(chan struct{})
	q.Async(func() {
		defer close(done)
		fn()
	})
	<-done
}
