package disposable_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/delaneyj/coldsignal/disposable"
	"github.com/stretchr/testify/assert"
)

type counting struct {
	n atomic.Int32
}

func (c *counting) Dispose() { c.n.Add(1) }

func (c *counting) count() int { return int(c.n.Load()) }

func TestActionRunsOnce(t *testing.T) {
	calls := 0
	a := disposable.NewAction(func() { calls++ })
	assert.False(t, a.Disposed())

	a.Dispose()
	a.Dispose()

	assert.Equal(t, 1, calls)
	assert.True(t, a.Disposed())
}

func TestActionConcurrentDispose(t *testing.T) {
	var calls atomic.Int32
	a := disposable.NewAction(func() { calls.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Dispose()
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
}

func TestNilActionAndEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		disposable.NewAction(nil).Dispose()
		disposable.Empty.Dispose()
		disposable.Empty.Dispose()
		var f disposable.Func
		f.Dispose()
	})
}

// assigning A then B disposes A once at assignment and B once at dispose
func TestMetaReplaceThenDispose(t *testing.T) {
	a, b := &counting{}, &counting{}
	m := disposable.NewMeta()

	m.Set(a)
	assert.Equal(t, 0, a.count())

	m.Set(b)
	assert.Equal(t, 1, a.count())
	assert.Equal(t, 0, b.count())
	assert.Same(t, b, m.Get())

	m.Dispose()
	m.Dispose()
	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())
	assert.Nil(t, m.Get())
}

func TestMetaSetAfterDispose(t *testing.T) {
	m := disposable.NewMeta()
	m.Dispose()

	late := &counting{}
	m.Set(late)
	assert.Equal(t, 1, late.count())
	assert.Nil(t, m.Get())
}

func TestMetaSetNilClears(t *testing.T) {
	a := &counting{}
	m := disposable.NewMeta()
	m.Set(a)
	m.Set(nil)
	assert.Equal(t, 1, a.count())

	m.Dispose()
	assert.Equal(t, 1, a.count())
}

func TestSetDisposesAllMembers(t *testing.T) {
	a, b, c := &counting{}, &counting{}, &counting{}
	s := disposable.NewSet(a, b)
	s.Add(c)
	assert.Equal(t, 3, s.Len())

	s.Dispose()
	s.Dispose()

	for _, d := range []*counting{a, b, c} {
		assert.Equal(t, 1, d.count())
	}
	assert.Equal(t, 0, s.Len())
}

func TestSetAddAfterDispose(t *testing.T) {
	s := disposable.NewSet()
	s.Dispose()

	late := &counting{}
	s.Add(late)
	assert.Equal(t, 1, late.count())
	assert.Equal(t, 0, s.Len())
}

func TestSetAcceptsFunc(t *testing.T) {
	calls := 0
	s := disposable.NewSet(disposable.Func(func() { calls++ }))

	assert.NotPanics(t, func() {
		s.Add(disposable.Func(func() { calls++ }))
		s.Remove(disposable.Func(func() {}))
	})
	assert.Equal(t, 2, s.Len())

	s.Dispose()
	assert.Equal(t, 2, calls)

	s.Add(disposable.Func(func() { calls++ }))
	assert.Equal(t, 3, calls)
}

func TestSetRemoveDoesNotDispose(t *testing.T) {
	a := &counting{}
	s := disposable.NewSet(a)
	s.Remove(a)
	s.Dispose()

	assert.Equal(t, 0, a.count())
}
