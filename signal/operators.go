package signal

import (
	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/queue"
)

func Map[V, W, E any](s Signal[V, E], fn func(V) W) Signal[W, E] {
	return New(func(sub *Subscriber[W, E]) disposable.Disposable {
		return s.Start(func(v V) {
			sub.PutNext(fn(v))
		}, sub.PutFailure, sub.PutCompletion)
	})
}

func MapError[V, E, F any](s Signal[V, E], fn func(E) F) Signal[V, F] {
	return New(func(sub *Subscriber[V, F]) disposable.Disposable {
		return s.Start(sub.PutNext, func(err E) {
			sub.PutFailure(fn(err))
		}, sub.PutCompletion)
	})
}

func Filter[V, E any](s Signal[V, E], keep func(V) bool) Signal[V, E] {
	return New(func(sub *Subscriber[V, E]) disposable.Disposable {
		return s.Start(func(v V) {
			if keep(v) {
				sub.PutNext(v)
			}
		}, sub.PutFailure, sub.PutCompletion)
	})
}

// DistinctUntilChanged drops values equal to the one emitted just before.
func DistinctUntilChanged[V comparable, E any](s Signal[V, E]) Signal[V, E] {
	return New(func(sub *Subscriber[V, E]) disposable.Disposable {
		var (
			last    V
			hasLast bool
		)
		return s.Start(func(v V) {
			if hasLast && last == v {
				return
			}
			last, hasLast = v, true
			sub.PutNext(v)
		}, sub.PutFailure, sub.PutCompletion)
	})
}

// Then runs next once s completes. Failures of s end the sequence.
func Then[V, E any](s Signal[V, E], next Signal[V, E]) Signal[V, E] {
	return New(func(sub *Subscriber[V, E]) disposable.Disposable {
		first, second := disposable.NewMeta(), disposable.NewMeta()
		first.Set(s.Start(sub.PutNext, sub.PutFailure, func() {
			second.Set(next.Start(sub.PutNext, sub.PutFailure, sub.PutCompletion))
		}))
		return disposable.NewSet(first, second)
	})
}

// DeliverOn re-dispatches every event of s onto q. Events keep their order
// when q is serial.
func DeliverOn[V, E any](s Signal[V, E], q queue.Queue) Signal[V, E] {
	return New(func(sub *Subscriber[V, E]) disposable.Disposable {
		return s.Start(func(v V) {
			q.Async(func() { sub.PutNext(v) })
		}, func(err E) {
			q.Async(func() { sub.PutFailure(err) })
		}, func() {
			q.Async(sub.PutCompletion)
		})
	})
}

// StartOn runs the generator of s on q instead of the caller's goroutine.
func StartOn[V, E any](s Signal[V, E], q queue.Queue) Signal[V, E] {
	return New(func(sub *Subscriber[V, E]) disposable.Disposable {
		d := disposable.NewMeta()
		q.Async(func() {
			d.Set(s.Start(sub.PutNext, sub.PutFailure, sub.PutCompletion))
		})
		return d
	})
}
