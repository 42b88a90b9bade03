package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "reservation_calendar"

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Metrics struct {
	mutations        *prometheus.CounterVec
	mutationDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	storeSize        prometheus.Gauge
}

// New registers the collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Reservation mutations sent to the backend, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		mutationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mutation_duration_seconds",
			Help:      "Time from dispatch to reconciled store, by kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"method", "route", "code"}),
		storeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_reservations",
			Help:      "Reservations currently held in the calendar store.",
		}),
	}
	reg.MustRegister(m.mutations, m.mutationDuration, m.httpRequests, m.storeSize)
	return m
}

func (m *Metrics) ObserveMutation(kind, outcome string, d time.Duration) {
	m.mutations.WithLabelValues(kind, outcome).Inc()
	m.mutationDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (m *Metrics) ObserveRequest(method, route string, code int) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

func (m *Metrics) SetStoreSize(n int) {
	m.storeSize.Set(float64(n))
}
