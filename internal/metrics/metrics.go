// Package metrics exposes practice engine counters in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
)

const namespace = "palipractice"

// Practice records queue builds, results and settings repairs. It satisfies
// the recorder interface of the practice service.
type Practice struct {
	registry *prometheus.Registry

	queuesBuilt     *prometheus.CounterVec
	buildDuration   *prometheus.HistogramVec
	queueItems      *prometheus.CounterVec
	results         *prometheus.CounterVec
	settingsRepairs *prometheus.CounterVec
}

// New creates the collectors on a private registry together with the Go
// runtime and process collectors.
func New() *Practice {
	m := &Practice{
		registry: prometheus.NewRegistry(),
		queuesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queues_built_total",
			Help:      "Practice queues built, by kind.",
		}, []string{"kind"}),
		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "queue_build_duration_seconds",
			Help:      "Time spent resolving scope, loading mastery and ordering a queue.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"kind"}),
		queueItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_items_total",
			Help:      "Items placed in practice queues, by kind and source.",
		}, []string{"kind", "source"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_recorded_total",
			Help:      "Practice results recorded, by kind and outcome.",
		}, []string{"kind", "easy", "retired"}),
		settingsRepairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_repairs_total",
			Help:      "Stored settings replaced with defaults because they were empty or invalid.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.queuesBuilt,
		m.buildDuration,
		m.queueItems,
		m.results,
		m.settingsRepairs,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Practice) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Practice) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Practice) QueueBuilt(kind domain.PracticeKind, took time.Duration, items []domain.PracticeItem) {
	k := kind.String()
	m.queuesBuilt.WithLabelValues(k).Inc()
	m.buildDuration.WithLabelValues(k).Observe(took.Seconds())

	var fresh, review int
	for _, it := range items {
		if it.Source == domain.PracticeSourceNew {
			fresh++
		} else {
			review++
		}
	}
	m.queueItems.WithLabelValues(k, domain.PracticeSourceNew.String()).Add(float64(fresh))
	m.queueItems.WithLabelValues(k, domain.PracticeSourceReview.String()).Add(float64(review))
}

func (m *Practice) ResultRecorded(kind domain.PracticeKind, wasEasy, retired bool) {
	m.results.WithLabelValues(kind.String(), strconv.FormatBool(wasEasy), strconv.FormatBool(retired)).Inc()
}

func (m *Practice) SettingsRepaired(kind domain.PracticeKind) {
	m.settingsRepairs.WithLabelValues(kind.String()).Inc()
}
