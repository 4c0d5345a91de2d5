// SPDX-License-Identifier: MIT

package errhandler

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvgsl/gslerr"
)

// Chain calls every non-nil handler in order.
func Chain(hs ...Handler) Handler {
	var live []Handler
	for _, h := range hs {
		if h != nil {
			live = append(live, h)
		}
	}

	return func(reason, file string, line int, err gslerr.Error) {
		for _, h := range live {
			h(reason, file, line, err)
		}
	}
}

// Logger logs each native error at error level. A nil logger uses slog.Default().
func Logger(l *slog.Logger) Handler {
	if l == nil {
		l = slog.Default()
	}

	return func(reason, file string, line int, err gslerr.Error) {
		l.LogAttrs(context.Background(), slog.LevelError, "gsl error",
			slog.String("reason", reason),
			slog.String("file", file),
			slog.Int("line", line),
			slog.Int("code", int(err.Code())),
			slog.String("kind", err.Name()))
	}
}

// MetricErrors is the counter name exported by Metrics.
const MetricErrors = "gsl_native_errors_total"

// unknownKind keeps the label set closed when GSL reports unnamed codes.
const unknownKind = "Unknown"

// Metrics counts native errors per taxonomy variant.
type Metrics struct {
	errors *prometheus.CounterVec
}

// NewMetrics registers the counter on reg. A nil reg uses a private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		errors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: MetricErrors,
			Help: "Native GSL errors reported through the error hook, by kind",
		}, []string{"kind"}),
	}
}

// Handler returns a Handler that increments the counter.
func (m *Metrics) Handler() Handler {
	return func(_, _ string, _ int, err gslerr.Error) {
		kind := unknownKind
		if err.Known() {
			kind = err.Name()
		}
		m.errors.WithLabelValues(kind).Inc()
	}
}

// Collector exposes the counter, e.g. for testutil.
func (m *Metrics) Collector() *prometheus.CounterVec { return m.errors }

// Event is one recorded native error.
type Event struct {
	Reason string
	File   string
	Line   int
	Err    gslerr.Error
}

// Recorder keeps every event it sees. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Handler returns a Handler that appends to r.
func (r *Recorder) Handler() Handler {
	return func(reason, file string, line int, err gslerr.Error) {
		r.mu.Lock()
		r.events = append(r.events, Event{Reason: reason, File: file, Line: line, Err: err})
		r.mu.Unlock()
	}
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Reset drops every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
