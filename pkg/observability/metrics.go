package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter names routed by IncrementCounter
const (
	CounterQuestionsCreated    = "questions_created"
	CounterQuestionsDeleted    = "questions_deleted"
	CounterQuizQuestionsServed = "quiz_questions_served"
	CounterQuizzesCompleted    = "quizzes_completed"
	CounterEventsPublished     = "events_published"
	CounterEventsFailed        = "events_failed"
)

// Timer stops a running duration measurement
type Timer interface {
	Stop()
}

// Collector holds all Prometheus metrics for the application. Each collector
// owns its registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Bus metrics
	BusOperations *prometheus.CounterVec
	BusDuration   *prometheus.HistogramVec

	// Business metrics
	QuestionsCreated    prometheus.Counter
	QuestionsDeleted    prometheus.Counter
	QuizQuestionsServed prometheus.Counter
	QuizzesCompleted    prometheus.Counter
	Events              *prometheus.CounterVec

	// Resilience metrics
	CircuitState *prometheus.GaugeVec
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		BusOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bus_operations_total",
				Help:      "Commands and queries dispatched, by outcome",
			},
			[]string{"metric", "type"},
		),
		BusDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "bus_operation_duration_seconds",
				Help:      "Command and query handler duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"metric", "type"},
		),
		QuestionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_created_total",
			Help:      "Total number of questions created",
		}),
		QuestionsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_deleted_total",
			Help:      "Total number of questions deleted",
		}),
		QuizQuestionsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_questions_served_total",
			Help:      "Total number of quiz questions handed out",
		}),
		QuizzesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quizzes_completed_total",
			Help:      "Quiz requests that found no unseen question left",
		}),
		Events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "domain_events_total",
				Help:      "Domain events handed to the publisher, by outcome",
			},
			[]string{"type", "status"},
		),
		CircuitState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
			},
			[]string{"name"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.BusOperations,
		c.BusDuration,
		c.QuestionsCreated,
		c.QuestionsDeleted,
		c.QuizQuestionsServed,
		c.QuizzesCompleted,
		c.Events,
		c.CircuitState,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// IncrementCounter increments a business counter by name. Unknown names are ignored.
func (c *Collector) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case CounterQuestionsCreated:
		c.QuestionsCreated.Inc()
	case CounterQuestionsDeleted:
		c.QuestionsDeleted.Inc()
	case CounterQuizQuestionsServed:
		c.QuizQuestionsServed.Inc()
	case CounterQuizzesCompleted:
		c.QuizzesCompleted.Inc()
	case CounterEventsPublished:
		c.Events.WithLabelValues(tags["type"], "published").Inc()
	case CounterEventsFailed:
		c.Events.WithLabelValues(tags["type"], "failed").Inc()
	}
}

// Increment bumps a bus counter such as query_count or command_errors
func (c *Collector) Increment(metric, label string) {
	c.BusOperations.WithLabelValues(metric, label).Inc()
}

// StartTimer starts measuring a bus operation
func (c *Collector) StartTimer(metric, label string) Timer {
	return &histogramTimer{
		observer: c.BusDuration.WithLabelValues(metric, label),
		start:    time.Now(),
	}
}

// RecordHTTPRequest records a finished HTTP request
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetCircuitState records the state of a named circuit breaker
func (c *Collector) SetCircuitState(name string, state int) {
	c.CircuitState.WithLabelValues(name).Set(float64(state))
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

type histogramTimer struct {
	observer prometheus.Observer
	start    time.Time
}

func (t *histogramTimer) Stop() {
	t.observer.Observe(time.Since(t.start).Seconds())
}
