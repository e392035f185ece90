package diag_test

import (
	"strings"
	"testing"

	"github.com/delaneyj/coldsignal/diag"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteIDIsStable(t *testing.T) {
	a := diag.SiteFor("x.go", 12)
	b := diag.SiteFor("x.go", 12)
	c := diag.SiteFor("x.go", 13)

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Equal(t, "x.go:12", a.String())
}

func TestBeginEndLeak(t *testing.T) {
	tr := diag.NewTracker(diag.WithLogger(slogt.New(t)))

	s1 := tr.Begin("a.go", 1)
	tr.Begin("a.go", 1)
	s2 := tr.Begin("b.go", 7)

	tr.End(s1)
	tr.Leak(s2)
	tr.End(s2) // never below zero

	snap := tr.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a.go", snap[0].File)
	assert.EqualValues(t, 1, snap[0].Active)
	assert.EqualValues(t, 0, snap[0].Leaked)
	assert.Equal(t, "b.go", snap[1].File)
	assert.EqualValues(t, 0, snap[1].Active)
	assert.EqualValues(t, 1, snap[1].Leaked)
}

func TestSetDefault(t *testing.T) {
	prev := diag.Default()
	t.Cleanup(func() { diag.SetDefault(prev) })

	tr := diag.NewTracker()
	diag.SetDefault(tr)
	assert.Same(t, tr, diag.Default())
}

func TestCollector(t *testing.T) {
	tr := diag.NewTracker(diag.WithNamespace("test"))
	tr.Begin("a.go", 1)
	tr.Leak(tr.Begin("b.go", 2))

	assert.Equal(t, 4, testutil.CollectAndCount(tr))

	expected := `
# HELP test_strict_leaked_total Strict subscription handles dropped while still running, by call site.
# TYPE test_strict_leaked_total counter
test_strict_leaked_total{site="a.go:1"} 0
test_strict_leaked_total{site="b.go:2"} 1
`
	require.NoError(t, testutil.CollectAndCompare(tr, strings.NewReader(expected), "test_strict_leaked_total"))
}
