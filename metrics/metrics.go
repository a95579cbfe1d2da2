// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the Prometheus collectors for the API
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	NotesCreatedTotal  prometheus.Counter
	NoteConflictsTotal prometheus.Counter
	NotModifiedTotal   prometheus.Counter
	RateLimitedTotal   prometheus.Counter
}

// NewMetrics creates and registers the collectors with the default
// registry. Registration happens once per process; later calls return
// the same instance.
//
// Metrics:
//   - notes_http_requests_total{method,route,status}
//   - notes_http_request_duration_seconds{method,route}
//   - notes_created_total
//   - notes_conflicts_total
//   - notes_not_modified_total
//   - notes_rate_limited_total
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "notes_http_requests_total",
					Help: "Total number of HTTP requests handled",
				},
				[]string{"method", "route", "status"},
			),

			RequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "notes_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
				},
				[]string{"method", "route"},
			),

			NotesCreatedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "notes_created_total",
					Help: "Total number of notes created",
				},
			),

			NoteConflictsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "notes_conflicts_total",
					Help: "Total number of note creates rejected as duplicates",
				},
			),

			NotModifiedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "notes_not_modified_total",
					Help: "Total number of conditional requests answered with 304",
				},
			),

			RateLimitedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "notes_rate_limited_total",
					Help: "Total number of requests rejected by the rate limiter",
				},
			),
		}
	})

	return globalMetrics
}

// ObserveRequest records one finished request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordNoteCreated() {
	m.NotesCreatedTotal.Inc()
}

func (m *Metrics) RecordNoteConflict() {
	m.NoteConflictsTotal.Inc()
}

func (m *Metrics) RecordNotModified() {
	m.NotModifiedTotal.Inc()
}

func (m *Metrics) RecordRateLimited() {
	m.RateLimitedTotal.Inc()
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
