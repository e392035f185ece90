package timing

import (
	"log/slog"
	"time"

	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/queue"
	"github.com/delaneyj/coldsignal/signal"
	"github.com/delaneyj/coldsignal/timer"
)

// Timeout forwards s unless it stays silent for timeout, in which case s is
// dropped and alternate is forwarded instead. Whichever side produces an
// event first wins; the other is ignored from then on.
func Timeout[V, E any](s signal.Signal[V, E], timeout time.Duration, q queue.Queue, alternate signal.Signal[V, E], opts ...Option) signal.Signal[V, E] {
	cfg := newConfig(opts)
	return signal.New(func(sub *signal.Subscriber[V, E]) disposable.Disposable {
		run := disposable.NewMeta()

		t := timer.New(cfg.sched, timeout, false, q, func() {
			cfg.log.Debug("timeout elapsed, switching to alternate", slog.Duration("timeout", timeout))
			run.Set(forward(alternate, sub))
		})

		// After Invalidate returns the timer can no longer fire, so Fired
		// tells which side owns the subscriber.
		upstreamWon := func() bool {
			t.Invalidate()
			return !t.Fired()
		}

		run.Set(s.Start(func(v V) {
			if upstreamWon() {
				sub.PutNext(v)
			}
		}, func(err E) {
			if upstreamWon() {
				sub.PutFailure(err)
			}
		}, func() {
			if upstreamWon() {
				sub.PutCompletion()
			}
		}))
		t.Start()

		return disposable.NewAction(func() {
			t.Invalidate()
			run.Dispose()
		})
	})
}
