package signal_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/delaneyj/coldsignal/diag"
	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/signal"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrictRecordsCallSite(t *testing.T) {
	tr := diag.NewTracker(diag.WithLogger(slogt.New(t)))
	work := &counting{}
	s := signal.New(func(*signal.Subscriber[int, error]) disposable.Disposable {
		return work
	})

	_, file, line, _ := runtime.Caller(0)
	d := s.StartStrictIn(tr, nil, nil, nil)
	assert.Equal(t, file, d.File)
	assert.Equal(t, line+1, d.Line)
	assert.Contains(t, d.String(), "strict_test.go")

	snap := tr.Snapshot()
	require.Len(t, snap, 1)
	assert.EqualValues(t, 1, snap[0].Active)

	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, work.count())
	assert.EqualValues(t, 0, tr.Snapshot()[0].Active)
}

func TestStrictLeakIsReported(t *testing.T) {
	tr := diag.NewTracker(diag.WithLogger(slogt.New(t)))
	var held *signal.Subscriber[int, error]
	s := signal.New(func(sub *signal.Subscriber[int, error]) disposable.Disposable {
		held = sub
		return nil
	})

	func() {
		s.StartStrictIn(tr, nil, nil, nil)
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		snap := tr.Snapshot()
		return len(snap) == 1 && snap[0].Leaked == 1
	}, 5*time.Second, 10*time.Millisecond)
	runtime.KeepAlive(held)
}

func TestStrictDroppedAfterCompletionIsNotALeak(t *testing.T) {
	tr := diag.NewTracker()
	func() {
		signal.Single[int, error](1).StartStrictIn(tr, nil, nil, nil)
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		snap := tr.Snapshot()
		return len(snap) == 1 && snap[0].Active == 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 0, tr.Snapshot()[0].Leaked)
}

func TestStartStrictUsesDefaultTracker(t *testing.T) {
	prev := diag.Default()
	t.Cleanup(func() { diag.SetDefault(prev) })
	tr := diag.NewTracker()
	diag.SetDefault(tr)

	d := signal.Never[int, error]().StartStrict(nil, nil, nil)
	require.Len(t, tr.Snapshot(), 1)
	d.Dispose()
	assert.EqualValues(t, 0, tr.Snapshot()[0].Active)
}
