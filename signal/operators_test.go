package signal_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/queue"
	"github.com/delaneyj/coldsignal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[V any](vs ...V) signal.Signal[V, error] {
	return signal.New(func(sub *signal.Subscriber[V, error]) disposable.Disposable {
		for _, v := range vs {
			sub.PutNext(v)
		}
		sub.PutCompletion()
		return nil
	})
}

func TestMap(t *testing.T) {
	r := &recorder[string]{}
	r.start(signal.Map(values(1, 2, 3), strconv.Itoa))
	assert.Equal(t, []string{"1", "2", "3"}, r.values)
	assert.Equal(t, 1, r.completed)
}

type codeError struct{ code int }

func (e codeError) Error() string { return "code " + strconv.Itoa(e.code) }

func TestMapError(t *testing.T) {
	var got error
	signal.MapError(signal.Fail[int](errBoom), func(err error) error {
		return codeError{code: 7}
	}).Start(nil, func(err error) { got = err }, nil)

	var ce codeError
	require.True(t, errors.As(got, &ce))
	assert.Equal(t, 7, ce.code)
}

func TestFilter(t *testing.T) {
	r := &recorder[int]{}
	r.start(signal.Filter(values(1, 2, 3, 4), func(v int) bool { return v%2 == 0 }))
	assert.Equal(t, []int{2, 4}, r.values)
}

func TestDistinctUntilChanged(t *testing.T) {
	r := &recorder[int]{}
	r.start(signal.DistinctUntilChanged(values(1, 1, 2, 2, 2, 1, 3, 3)))
	assert.Equal(t, []int{1, 2, 1, 3}, r.values)
}

func TestThen(t *testing.T) {
	r := &recorder[int]{}
	r.start(signal.Then(values(1, 2), values(3)))
	assert.Equal(t, []int{1, 2, 3}, r.values)
	assert.Equal(t, 1, r.completed)
}

func TestThenStopsOnFailure(t *testing.T) {
	r := &recorder[int]{}
	r.start(signal.Then(signal.Fail[int](errBoom), values(3)))
	assert.Empty(t, r.values)
	assert.Equal(t, []error{errBoom}, r.failures)
}

func TestThenDisposesActiveStage(t *testing.T) {
	var second *signal.Subscriber[int, error]
	work := &counting{}
	tail := signal.New(func(sub *signal.Subscriber[int, error]) disposable.Disposable {
		second = sub
		return work
	})

	d := signal.Then(values(1), tail).Start(nil, nil, nil)
	require.NotNil(t, second)
	assert.True(t, second.Active())

	d.Dispose()
	assert.Equal(t, 1, work.count())
	assert.False(t, second.Active())
}

func TestDeliverOnSerialQueue(t *testing.T) {
	q := queue.NewSerial()
	var (
		mu   sync.Mutex
		got  []int
		done = make(chan struct{})
	)
	signal.DeliverOn(values(1, 2, 3), q).Start(func(v int) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	}, nil, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("completion not delivered")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestStartOn(t *testing.T) {
	q := queue.NewSerial()
	done := make(chan int, 1)
	signal.StartOn(signal.Single[int, error](9), q).Start(func(v int) { done <- v }, nil, nil)

	select {
	case v := <-done:
		assert.Equal(t, 9, v)
	case <-time.After(time.Second):
		t.Fatal("value not delivered")
	}
}
