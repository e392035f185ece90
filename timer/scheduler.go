// Package timer provides cancelable one-shot and repeating timers whose
// callbacks are delivered on a queue.
package timer

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Stopper cancels a pending callback. Stop reports whether the callback was
// prevented from running.
type Stopper interface {
	Stop() bool
}

// Scheduler is the time source timers are built on.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Stopper
}

type clockScheduler struct {
	clock clock.Clock
}

// NewScheduler adapts a clock.Clock, real or mocked.
func NewScheduler(c clock.Clock) Scheduler {
	return &clockScheduler{clock: c}
}

func (s *clockScheduler) Now() time.Time {
	return s.clock.Now()
}

func (s *clockScheduler) AfterFunc(d time.Duration, fn func()) Stopper {
	return s.clock.AfterFunc(d, fn)
}

// System is backed by the wall clock.
var System = NewScheduler(clock.New())
