package metrics

import (
	"net/http"
	"strconv"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/payment"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	bookingsCreated *prometheus.CounterVec
	bookingRevenue  *prometheus.CounterVec
	bookingsFailed  *prometheus.CounterVec
	chargeDuration  *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "booking", Name: "created_total",
			Help: "Bookings committed, by kind.",
		}, []string{"kind"}),
		bookingRevenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "booking", Name: "revenue_total",
			Help: "Total price of committed bookings, by kind.",
		}, []string{"kind"}),
		bookingsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "booking", Name: "failed_total",
			Help: "Booking attempts that did not commit, by kind and phase.",
		}, []string{"kind", "phase"}),
		chargeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "payment", Name: "charge_duration_seconds",
			Help:    "Payment provider round trip.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.bookingsCreated, m.bookingRevenue, m.bookingsFailed, m.chargeDuration,
		m.httpRequests, m.httpDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) BookingCreated(kind booking.Kind, amount booking.Money) {
	m.bookingsCreated.WithLabelValues(kind.String()).Inc()
	m.bookingRevenue.WithLabelValues(kind.String()).Add(amount.Decimal().InexactFloat64())
}

func (m *Metrics) BookingFailed(kind booking.Kind, phase booking.Phase) {
	m.bookingsFailed.WithLabelValues(kind.String(), phase.String()).Inc()
}

func (m *Metrics) ObserveCharge(provider payment.Provider, success bool, elapsed time.Duration) {
	outcome := "failed"
	if success {
		outcome = "succeeded"
	}
	m.chargeDuration.WithLabelValues(string(provider), outcome).Observe(elapsed.Seconds())
}

// ObserveHTTP takes the route template, never the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
