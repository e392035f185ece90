// Package timing holds the time based combinators: Delay,
// SuspendAwareDelay and Timeout.
package timing

import (
	"io"
	"log/slog"
	"time"

	"github.com/delaneyj/coldsignal/timer"
)

// MinimumDelay is the shortest wait SuspendAwareDelay ever schedules, so
// that many subscriptions resuming together do not all fire at once.
const MinimumDelay = 500 * time.Millisecond

// granularitySlack widens the polling window of SuspendAwareDelay.
const granularitySlack = 1.1

type config struct {
	sched timer.Scheduler
	log   *slog.Logger
}

type Option func(*config)

// WithScheduler sets the time source, timer.System by default.
func WithScheduler(s timer.Scheduler) Option {
	return func(c *config) {
		c.sched = s
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

func newConfig(opts []Option) config {
	c := config{
		sched: timer.System,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
