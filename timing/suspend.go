package timing

import (
	"log/slog"
	"time"

	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/queue"
	"github.com/delaneyj/coldsignal/signal"
	"github.com/delaneyj/coldsignal/timer"
)

// SuspendAwareDelay behaves like Delay but stays accurate when the process
// is suspended and the wall clock jumps. Long timeouts are polled every
// granularity; once the deadline is within one poll a final one-shot timer
// covers the remainder. No wait is ever shorter than MinimumDelay.
func SuspendAwareDelay[V, E any](s signal.Signal[V, E], timeout, granularity time.Duration, q queue.Queue, opts ...Option) signal.Signal[V, E] {
	cfg := newConfig(opts)
	slack := time.Duration(float64(granularity) * granularitySlack)

	return signal.New(func(sub *signal.Subscriber[V, E]) disposable.Disposable {
		timerDisposable := disposable.NewMeta()
		runDisposable := disposable.NewMeta()

		q.Async(func() {
			begin := cfg.sched.Now()
			deadline := begin.Add(timeout)

			startFinal := func(wait time.Duration) {
				wait = max(MinimumDelay, wait)
				t := timer.New(cfg.sched, wait, false, q, func() {
					cfg.log.Debug("suspend aware delay elapsed",
						slog.Duration("timeout", timeout),
						slog.Duration("late", cfg.sched.Now().Sub(deadline)),
					)
					runDisposable.Set(forward(s, sub))
				})
				timerDisposable.Set(disposable.NewAction(t.Invalidate))
				t.Start()
			}

			if timeout <= slack {
				startFinal(timeout)
				return
			}

			var poll *timer.Timer
			poll = timer.New(cfg.sched, granularity, true, q, func() {
				now := cfg.sched.Now()
				if deadline.Add(-slack).After(now) {
					return
				}
				poll.Invalidate()
				cfg.log.Debug("suspend aware delay polling done", slog.Duration("remaining", deadline.Sub(now)))
				startFinal(deadline.Sub(now))
			})
			timerDisposable.Set(disposable.NewAction(poll.Invalidate))
			poll.Start()
		})

		return disposable.NewSet(timerDisposable, runDisposable)
	})
}
