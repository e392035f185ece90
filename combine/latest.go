// Package combine provides combine-latest operators over several signals.
//
// The CombineN functions are generated by cmd/codegen; run
//
//	go run ./cmd/codegen --count 4
//
// from the repository root after changing the templates.
package combine

import "sync"

// latest is the shared state behind a CombineN subscription.
type latest[T any] struct {
	mu    sync.Mutex
	tuple T
	seen  []bool
	done  []bool
	nSeen int
	nDone int
}

func newLatest[T any](n int) *latest[T] {
	return &latest[T]{
		seen: make([]bool, n),
		done: make([]bool, n),
	}
}

// store records a value from input i and reports the tuple to emit, if
// every input has produced at least one value.
func (l *latest[T]) store(i int, set func(*T)) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	set(&l.tuple)
	if !l.seen[i] {
		l.seen[i] = true
		l.nSeen++
	}
	return l.tuple, l.nSeen == len(l.seen)
}

// complete records that input i completed and reports whether all have.
func (l *latest[T]) complete(i int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done[i] {
		l.done[i] = true
		l.nDone++
	}
	return l.nDone == len(l.done)
}
