package timing

import (
	"log/slog"
	"time"

	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/queue"
	"github.com/delaneyj/coldsignal/signal"
	"github.com/delaneyj/coldsignal/timer"
)

// Delay subscribes to s only after timeout has elapsed on q. Disposing
// before that cancels the timer; disposing after cancels the subscription.
func Delay[V, E any](s signal.Signal[V, E], timeout time.Duration, q queue.Queue, opts ...Option) signal.Signal[V, E] {
	cfg := newConfig(opts)
	return signal.New(func(sub *signal.Subscriber[V, E]) disposable.Disposable {
		timerDisposable := disposable.NewMeta()
		runDisposable := disposable.NewMeta()

		q.Async(func() {
			t := timer.New(cfg.sched, timeout, false, q, func() {
				cfg.log.Debug("delay elapsed", slog.Duration("timeout", timeout))
				runDisposable.Set(forward(s, sub))
			})
			timerDisposable.Set(disposable.NewAction(t.Invalidate))
			t.Start()
			cfg.log.Debug("delay armed", slog.Duration("timeout", timeout))
		})

		return disposable.NewSet(timerDisposable, runDisposable)
	})
}

// forward starts s and passes all of its events on to sub.
func forward[V, E any](s signal.Signal[V, E], sub *signal.Subscriber[V, E]) disposable.Disposable {
	return s.Start(sub.PutNext, sub.PutFailure, sub.PutCompletion)
}
