package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	bookingOutcomes *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	dbDuration      *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),
		bookingOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_outcomes_total",
			Help:        "Booking transactions by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_request_duration_seconds",
			Help:        "Clinic backend call duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"operation"}),
		dbDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"query", "status"}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.bookingOutcomes, m.backendDuration, m.dbDuration)
	return m
}

// RecordHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordBookingOutcome учитывает результат транзакции бронирования
func (m *Metrics) RecordBookingOutcome(outcome string) {
	m.bookingOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveBackendCall учитывает длительность вызова бэкенда клиники
func (m *Metrics) ObserveBackendCall(operation string, duration time.Duration) {
	m.backendDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(query string, failed bool, duration time.Duration) {
	status := "ok"
	if failed {
		status = "error"
	}
	m.dbDuration.WithLabelValues(query, status).Observe(duration.Seconds())
}

// Nop реализация без сбора метрик (метрики выключены в конфиге)
type Nop struct{}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) RecordBookingOutcome(string) {}
func (Nop) ObserveBackendCall(string, time.Duration) {}
func (Nop) ObserveDBQuery(string, bool, time.Duration) {}
