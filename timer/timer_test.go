package timer_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/delaneyj/coldsignal/queue"
	"github.com/delaneyj/coldsignal/timer"
	"github.com/delaneyj/coldsignal/timer/timertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneShotFiresOnce(t *testing.T) {
	sched := timertest.New()
	fired := 0
	tm := timer.New(sched, time.Second, false, queue.Immediate, func() { fired++ })
	tm.Start()
	tm.Start()

	sched.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, fired)
	assert.False(t, tm.Fired())

	sched.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.True(t, tm.Fired())

	sched.Advance(time.Hour)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, sched.Pending())
}

func TestRepeatingUntilInvalidated(t *testing.T) {
	sched := timertest.New()
	fired := 0
	var tm *timer.Timer
	tm = timer.New(sched, 10*time.Second, true, queue.Immediate, func() {
		fired++
		if fired == 3 {
			tm.Invalidate()
		}
	})
	tm.Start()

	sched.Advance(25 * time.Second)
	assert.Equal(t, 2, fired)

	sched.Advance(time.Minute)
	assert.Equal(t, 3, fired)
	assert.Equal(t, 0, sched.Pending())
}

func TestInvalidateBeforeFire(t *testing.T) {
	sched := timertest.New()
	fired := false
	tm := timer.New(sched, time.Second, false, queue.Immediate, func() { fired = true })
	tm.Start()
	tm.Invalidate()
	tm.Invalidate()

	sched.Advance(time.Minute)
	assert.False(t, fired)
	assert.False(t, tm.Fired())
	assert.Equal(t, 0, sched.Pending())
}

func TestStartAfterInvalidateIsNoop(t *testing.T) {
	sched := timertest.New()
	tm := timer.New(sched, time.Second, false, queue.Immediate, func() {})
	tm.Invalidate()
	tm.Start()
	assert.Equal(t, 0, sched.Pending())
}

func TestJumpRunsOverdueWithLateNow(t *testing.T) {
	sched := timertest.New()
	var seen time.Duration
	tm := timer.New(sched, 10*time.Second, false, queue.Immediate, func() {
		seen = sched.Elapsed()
	})
	tm.Start()

	sched.Jump(time.Minute)
	sched.Advance(0)
	assert.Equal(t, time.Minute, seen)
}

func TestClockBackedScheduler(t *testing.T) {
	mock := clock.NewMock()
	sched := timer.NewScheduler(mock)
	assert.Equal(t, mock.Now(), sched.Now())

	var fired atomic.Bool
	tm := timer.New(sched, time.Second, false, queue.NewSerial(), func() { fired.Store(true) })
	tm.Start()

	mock.Add(time.Second)
	require.Eventually(t, fired.Load, time.Second, time.Millisecond)
}
