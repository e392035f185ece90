// Package disposable defines the release/cancel capability shared by every
// asynchronous operation, plus the few ways of composing it.
package disposable

import "sync/atomic"

// Disposable releases a resource or cancels in-flight work. Dispose must be
// safe to call more than once and from any goroutine.
type Disposable interface {
	Dispose()
}

type empty struct{}

func (*empty) Dispose() {}

// Empty does nothing when disposed.
var Empty Disposable = &empty{}

// Action runs a closure the first time it is disposed.
type Action struct {
	action atomic.Pointer[func()]
}

func NewAction(fn func()) *Action {
	a := &Action{}
	if fn != nil {
		a.action.Store(&fn)
	}
	return a
}

func (a *Action) Dispose() {
	if fn := a.action.Swap(nil); fn != nil {
		(*fn)()
	}
}

// Disposed reports whether the action already ran or was never set.
func (a *Action) Disposed() bool {
	return a.action.Load() == nil
}

// Func adapts a plain function. Unlike Action it runs on every Dispose call,
// so fn must itself be idempotent.
type Func func()

func (f Func) Dispose() {
	if f != nil {
		f()
	}
}
