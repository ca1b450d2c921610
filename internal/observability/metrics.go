package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the Prometheus metrics of the service.
type Metrics struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	receiptsTotal    *prometheus.CounterVec
	receivedKgTotal  *prometheus.CounterVec
	receiptValueEuro *prometheus.CounterVec
}

// NewMetrics builds a private registry with HTTP and receipt metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agrilog_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agrilog_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	receipts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agrilog_receipts_recorded_total",
		Help: "Goods receipts recorded by product category.",
	}, []string{"category"})
	receivedKg := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agrilog_received_marketable_kg_total",
		Help: "Marketable weight received in kilograms by product category.",
	}, []string{"category"})
	value := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agrilog_receipt_value_euro_total",
		Help: "Value of recorded receipts in euro by product category.",
	}, []string{"category"})
	registry.MustRegister(requests, duration, receipts, receivedKg, value)
	return &Metrics{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:    requests,
		requestDuration:  duration,
		receiptsTotal:    receipts,
		receivedKgTotal:  receivedKg,
		receiptValueEuro: value,
	}
}

// ReceiptRecorded counts a persisted goods receipt.
func (m *Metrics) ReceiptRecorded(category string, marketableKg, total float64) {
	if m == nil {
		return
	}
	m.receiptsTotal.WithLabelValues(category).Inc()
	if marketableKg > 0 {
		m.receivedKgTotal.WithLabelValues(category).Add(marketableKg)
	}
	if total > 0 {
		m.receiptValueEuro.WithLabelValues(category).Add(total)
	}
}

// Handler returns the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records request count and latency by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Registerer exposes the registry for additional collectors.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
