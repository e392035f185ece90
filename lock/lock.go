// Package lock provides the non-reentrant exclusive lock that guards
// subscriber and disposable state.
//
// Two backends satisfy the same contract: a sync.Mutex backed lock and a
// spinning lock built on a single atomic word. Callers never see which one
// they got. Neither backend is reentrant; locking twice from the same
// goroutine without an Unlock in between deadlocks.
package lock

import (
	"sync"
	"sync/atomic"
)

type Mutex interface {
	Lock()
	Unlock()
	TryLock() bool
}

type Kind int32

const (
	KindMutex Kind = iota
	KindSpin
)

func (k Kind) String() string {
	switch k {
	case KindMutex:
		return "mutex"
	case KindSpin:
		return "spin"
	default:
		return "unknown"
	}
}

var defaultKind atomic.Int32

// SetDefault selects the backend returned by New. Locks that already exist
// keep their backend.
func SetDefault(k Kind) {
	defaultKind.Store(int32(k))
}

func Default() Kind {
	return Kind(defaultKind.Load())
}

func New() Mutex {
	return NewOf(Default())
}

func NewOf(k Kind) Mutex {
	switch k {
	case KindSpin:
		return &Spin{}
	default:
		return &sync.Mutex{}
	}
}

// Guard runs fn while holding mu.
func Guard(mu Mutex, fn func()) {
	mu.Lock()
	defer mu.Unlock()
	fn()
}
