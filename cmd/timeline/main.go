package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/queue"
	"github.com/delaneyj/coldsignal/signal"
	"github.com/delaneyj/coldsignal/timer/timertest"
	"github.com/delaneyj/coldsignal/timing"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	timeoutKey     = "timeout-ms"
	granularityKey = "granularity-ms"
	suspendKey     = "suspend-ms"
	verboseKey     = "verbose"
)

func main() {
	cmd := &cli.Command{
		Name:  "timeline",
		Usage: "Print when each timing combinator subscribes upstream, on a virtual clock",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  timeoutKey,
				Usage: "Timeout of every combinator in milliseconds",
				Value: 100_000,
			},
			&cli.UintFlag{
				Name:  granularityKey,
				Usage: "Polling granularity of the suspend aware delay in milliseconds",
				Value: 10_000,
			},
			&cli.UintFlag{
				Name:  suspendKey,
				Usage: "How long the process is suspended after the first poll, in milliseconds",
				Value: 150_000,
			},
			&cli.BoolFlag{
				Name:  verboseKey,
				Usage: "Log timer activity",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type row struct {
	scenario string
	event    string
	at       time.Duration
}

type timeline struct {
	mu    sync.Mutex
	sched *timertest.Scheduler
	rows  []row
}

func (t *timeline) record(scenario, event string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, row{scenario: scenario, event: event, at: t.sched.Elapsed()})
}

// upstream records when it gets subscribed and then emits a single value.
func (t *timeline) upstream(scenario string) signal.Signal[string, signal.NoError] {
	return signal.New(func(sub *signal.Subscriber[string, signal.NoError]) disposable.Disposable {
		t.record(scenario, "upstream subscribed")
		sub.PutNext("upstream")
		sub.PutCompletion()
		return nil
	})
}

func (t *timeline) observe(scenario string, s signal.Signal[string, signal.NoError]) disposable.Disposable {
	return s.Start(func(v string) {
		t.record(scenario, "value from "+v)
	}, nil, func() {
		t.record(scenario, "completed")
	})
}

func run(ctx context.Context, cmd *cli.Command) error {
	timeout := time.Duration(cmd.Uint(timeoutKey)) * time.Millisecond
	granularity := time.Duration(cmd.Uint(granularityKey)) * time.Millisecond
	suspend := time.Duration(cmd.Uint(suspendKey)) * time.Millisecond
	if granularity <= 0 {
		return fmt.Errorf("%s must be positive", granularityKey)
	}

	level := slog.LevelInfo
	if cmd.Bool(verboseKey) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	sched := timertest.New()
	tl := &timeline{sched: sched}
	opts := []timing.Option{timing.WithScheduler(sched), timing.WithLogger(logger)}
	q := queue.Immediate

	disposables := disposable.NewSet(
		tl.observe("delay", timing.Delay(tl.upstream("delay"), timeout, q, opts...)),
		tl.observe("suspend aware delay", timing.SuspendAwareDelay(tl.upstream("suspend aware delay"), timeout, granularity, q, opts...)),
		tl.observe("timeout (silent upstream)", timing.Timeout(signal.Never[string, signal.NoError](), timeout, q, signal.Single[string, signal.NoError]("alternate"), opts...)),
	)
	defer disposables.Dispose()

	log.Printf("Simulating %v of activity with a %v suspension", timeout, suspend)
	sched.Advance(min(granularity, timeout))
	tl.record("clock", fmt.Sprintf("suspended for %v", suspend))
	sched.Jump(suspend)
	sched.Advance(timeout + granularity + timing.MinimumDelay)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"scenario", "event", "at", "at (ms)"})
	for _, r := range tl.rows {
		table.Append([]string{
			r.scenario,
			r.event,
			r.at.String(),
			humanize.Comma(r.at.Milliseconds()),
		})
	}
	table.Render()
	return nil
}
