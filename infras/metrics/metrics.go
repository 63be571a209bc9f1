// Package metrics records store operations as Prometheus series.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tourbook/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tourbook"

// Recorder observes the outcome of one operation against an entity store.
type Recorder interface {
	Observe(ctx context.Context, entity, operation string, success bool, duration time.Duration)
	SetEntities(entity string, count int)
	Handler() http.Handler
}

type prometheusRecorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	entities   *prometheus.GaugeVec
}

// NewWithRegistry registers the collectors on registry.
func NewWithRegistry(registry *prometheus.Registry) Recorder {
	rec := &prometheusRecorder{
		registry: registry,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Store operations by entity, kind and outcome.",
		}, []string{"entity", "operation", "success"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of store operations including simulated latency.",
			Buckets:   []float64{.05, .1, .25, .5, .8, 1, 2, 5},
		}, []string{"entity", "operation"}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_entities",
			Help:      "Current number of entities held by each store.",
		}, []string{"entity"}),
	}

	registry.MustRegister(rec.operations, rec.durations, rec.entities)

	return rec
}

// New builds the recorder on a fresh registry with the Go and process collectors.
func New(_ *config.Config) Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewWithRegistry(registry)
}

func (r *prometheusRecorder) Observe(_ context.Context, entity, operation string, success bool, duration time.Duration) {
	r.operations.WithLabelValues(entity, operation, strconv.FormatBool(success)).Inc()
	r.durations.WithLabelValues(entity, operation).Observe(duration.Seconds())
}

func (r *prometheusRecorder) SetEntities(entity string, count int) {
	r.entities.WithLabelValues(entity).Set(float64(count))
}

func (r *prometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
