package lock

import (
	"runtime"
	"sync/atomic"
)

const spinsBeforeYield = 64

// Spin is a test-and-test-and-set lock. It is meant for critical sections
// that only swap a handful of pointers.
type Spin struct {
	state atomic.Uint32
}

func (s *Spin) Lock() {
	for spins := 0; ; spins++ {
		if s.state.Load() == 0 && s.state.CompareAndSwap(0, 1) {
			return
		}
		if spins >= spinsBeforeYield {
			runtime.Gosched()
			spins = 0
		}
	}
}

func (s *Spin) TryLock() bool {
	return s.state.Load() == 0 && s.state.CompareAndSwap(0, 1)
}

func (s *Spin) Unlock() {
	if !s.state.CompareAndSwap(1, 0) {
		panic("lock: unlock of unlocked spin lock")
	}
}
