// Package diag keeps per call-site statistics about strict subscriptions
// and exposes them as Prometheus metrics.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Site identifies the place a strict subscription was started.
type Site struct {
	ID   uint64
	File string
	Line int
}

func (s Site) String() string {
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}

// SiteStats is a snapshot of one call site.
type SiteStats struct {
	Site
	Active int64
	Leaked int64
}

type siteStats struct {
	site   Site
	active int64
	leaked int64
}

type Tracker struct {
	mu    sync.Mutex
	sites map[uint64]*siteStats
	log   *slog.Logger

	activeDesc *prometheus.Desc
	leakedDesc *prometheus.Desc
}

type options struct {
	logger    *slog.Logger
	namespace string
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithNamespace sets the Prometheus namespace, "coldsignal" by default.
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

func NewTracker(opts ...Option) *Tracker {
	o := options{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		namespace: "coldsignal",
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tracker{
		sites: map[uint64]*siteStats{},
		log:   o.logger,
		activeDesc: prometheus.NewDesc(
			prometheus.BuildFQName(o.namespace, "strict", "active"),
			"Strict subscription handles not yet disposed, by call site.",
			[]string{"site"}, nil,
		),
		leakedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(o.namespace, "strict", "leaked_total"),
			"Strict subscription handles dropped while still running, by call site.",
			[]string{"site"}, nil,
		),
	}
}

var (
	defaultMu      sync.RWMutex
	defaultTracker = NewTracker()
)

func Default() *Tracker {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultTracker
}

func SetDefault(t *Tracker) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultTracker = t
}

func SiteFor(file string, line int) Site {
	return Site{
		ID:   xxhash.Sum64String(fmt.Sprintf("%s:%d", file, line)),
		File: file,
		Line: line,
	}
}

// Begin records a new live handle started at file:line.
func (t *Tracker) Begin(file string, line int) Site {
	site := SiteFor(file, line)

	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.sites[site.ID]
	if !ok {
		st = &siteStats{site: site}
		t.sites[site.ID] = st
	}
	st.active++
	return site
}

// End records that a handle was disposed, or collected after its
// subscription had already terminated.
func (t *Tracker) End(site Site) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if st, ok := t.sites[site.ID]; ok && st.active > 0 {
		st.active--
	}
}

// Leak records a handle collected while its subscription was still live.
func (t *Tracker) Leak(site Site) {
	t.mu.Lock()
	st, ok := t.sites[site.ID]
	if ok {
		if st.active > 0 {
			st.active--
		}
		st.leaked++
	}
	t.mu.Unlock()

	t.log.Warn("strict subscription leaked",
		slog.String("site", site.String()),
		slog.String("file", site.File),
		slog.Int("line", site.Line),
	)
}

// Snapshot returns every known site ordered by file and line.
func (t *Tracker) Snapshot() []SiteStats {
	t.mu.Lock()
	out := make([]SiteStats, 0, len(t.sites))
	for _, st := range t.sites {
		out = append(out, SiteStats{
			Site:   st.site,
			Active: st.active,
			Leaked: st.leaked,
		})
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].Line < out[j].Line
	})
	return out
}

func (t *Tracker) Describe(ch chan<- *prometheus.Desc) {
	ch <- t.activeDesc
	ch <- t.leakedDesc
}

func (t *Tracker) Collect(ch chan<- prometheus.Metric) {
	for _, st := range t.Snapshot() {
		site := st.Site.String()
		ch <- prometheus.MustNewConstMetric(t.activeDesc, prometheus.GaugeValue, float64(st.Active), site)
		ch <- prometheus.MustNewConstMetric(t.leakedDesc, prometheus.CounterValue, float64(st.Leaked), site)
	}
}

var _ prometheus.Collector = (*Tracker)(nil)
