// internal/metrics/metrics.go
// Kolektor Prometheus untuk perhitungan IPR/VLP/nodal dan request HTTP.

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nodal"

type Recorder struct {
	reg          *prometheus.Registry
	computations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	requests     *prometheus.CounterVec
	up           prometheus.Gauge
}

// New membuat registry tersendiri (bukan default global) agar test tidak bentrok.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Number of IPR/VLP/nodal computations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "computation_duration_seconds",
			Help:      "Computation latency by operation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"operation"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template and status class.",
		}, []string{"route", "status"}),
		up: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "app_up",
			Help:      "1 if the app is up",
		}),
	}
	r.reg.MustRegister(
		r.computations, r.duration, r.requests, r.up,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	r.up.Set(1)
	return r
}

// Observe mencatat satu perhitungan; outcome mengikuti kode error ("ok" bila nil).
func (r *Recorder) Observe(operation, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.computations.WithLabelValues(operation, outcome).Inc()
	r.duration.WithLabelValues(operation).Observe(d.Seconds())
}

func (r *Recorder) Request(route string, status int) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(route, statusClass(status)).Inc()
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	}
	return "2xx"
}

// Handler mengekspos registry dalam format text Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ComputationCounter mengembalikan counter untuk satu pasangan label (dipakai test).
func (r *Recorder) ComputationCounter(operation, outcome string) prometheus.Counter {
	return r.computations.WithLabelValues(operation, outcome)
}
