// Package timertest provides a deterministic, manually driven
// timer.Scheduler.
//
// Callbacks run synchronously on the goroutine that advances the clock, so
// combined with queue.Immediate a whole timed pipeline can be stepped
// through without sleeping.
package timertest

import (
	"sort"
	"sync"
	"time"

	"github.com/delaneyj/coldsignal/timer"
)

// Epoch is the time a new Scheduler starts at.
var Epoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

type Scheduler struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*entry
}

type entry struct {
	sched   *Scheduler
	when    time.Time
	seq     uint64
	fn      func()
	stopped bool
}

func (e *entry) Stop() bool {
	e.sched.mu.Lock()
	defer e.sched.mu.Unlock()
	if e.stopped {
		return false
	}
	e.stopped = true
	e.sched.remove(e)
	return true
}

func New() *Scheduler {
	return &Scheduler{now: Epoch}
}

var _ timer.Scheduler = (*Scheduler)(nil)

func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Elapsed is the virtual time since Epoch.
func (s *Scheduler) Elapsed() time.Duration {
	return s.Now().Sub(Epoch)
}

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) timer.Stopper {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	e := &entry{
		sched: s,
		when:  s.now.Add(max(d, 0)),
		seq:   s.seq,
		fn:    fn,
	}
	s.pending = append(s.pending, e)
	return e
}

// Pending is the number of armed callbacks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Advance moves time forward by d, running every callback that comes due
// in order. While a callback runs, Now reports its due time.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for s.runNext(target) {
	}

	s.mu.Lock()
	if target.After(s.now) {
		s.now = target
	}
	s.mu.Unlock()
}

// Jump moves time forward by d without running anything, the way a process
// sees the clock after being suspended. The overdue callbacks run on the
// next Advance, with Now already past their due times.
func (s *Scheduler) Jump(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}

func (s *Scheduler) runNext(target time.Time) bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	sort.Slice(s.pending, func(i, j int) bool {
		a, b := s.pending[i], s.pending[j]
		if !a.when.Equal(b.when) {
			return a.when.Before(b.when)
		}
		return a.seq < b.seq
	})
	e := s.pending[0]
	if e.when.After(target) {
		s.mu.Unlock()
		return false
	}
	s.pending = s.pending[1:]
	e.stopped = true
	if e.when.After(s.now) {
		s.now = e.when
	}
	fn := e.fn
	s.mu.Unlock()

	fn()
	return true
}

func (s *Scheduler) remove(e *entry) {
	for i, p := range s.pending {
		if p == e {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
