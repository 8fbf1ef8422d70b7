// Package metrics exposes Prometheus instrumentation for the API and the
// background reminder job.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/event-planner/internal/calendar"
)

const namespace = "planner"

// Metrics holds every collector the service reports. A nil *Metrics is a
// valid no-op so callers never need to guard.
type Metrics struct {
	registry       *prometheus.Registry
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	dashboardItems *prometheus.HistogramVec
	remindersSent  prometheus.Counter
	reminderRuns   *prometheus.CounterVec
}

// New registers all collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total count of HTTP requests processed by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of HTTP request durations by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dashboardItems: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dashboard_items",
			Help:      "Number of items per dashboard bucket.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}, []string{"bucket"}),
		remindersSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_sent_total",
			Help:      "Reminder notifications created by the scheduler.",
		}),
		reminderRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_runs_total",
			Help:      "Reminder job runs by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.dashboardItems,
		m.remindersSent,
		m.reminderRuns,
	)
	return m
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// Middleware counts requests and observes their latency, labelled by the chi
// route pattern so path parameters do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(recorder.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveDashboard records the size of each bucket of a built dashboard.
func (m *Metrics) ObserveDashboard(b calendar.Buckets) {
	if m == nil {
		return
	}
	m.dashboardItems.WithLabelValues(string(calendar.BucketActive)).Observe(float64(len(b.Active)))
	m.dashboardItems.WithLabelValues(string(calendar.BucketPending)).Observe(float64(len(b.Pending)))
	m.dashboardItems.WithLabelValues(string(calendar.BucketHistorical)).Observe(float64(len(b.Historical)))
}

// ReminderRun records one run of the reminder job and how many
// notifications it created.
func (m *Metrics) ReminderRun(sent int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.reminderRuns.WithLabelValues("error").Inc()
		return
	}
	m.reminderRuns.WithLabelValues("ok").Inc()
	m.remindersSent.Add(float64(sent))
}
