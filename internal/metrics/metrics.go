// Package metrics содержит счетчики Prometheus движка срабатываний.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geo_content"

// Результаты обработки отсчета позиции
const (
	ResultEvaluated = "evaluated"
	ResultRejected  = "rejected"
	ResultFailed    = "failed"
)

// Metrics набор метрик на собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	PositionsProcessed *prometheus.CounterVec
	TriggersFired      *prometheus.CounterVec
	NarrationCommands  *prometheus.CounterVec
	ActiveSessions     prometheus.Gauge
	CatalogPlaces      prometheus.Gauge
	CooldownWrites     *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PositionsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "positions_processed_total",
			Help:      "Position samples received, by processing result.",
		}, []string{"result"}),
		TriggersFired: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triggers_fired_total",
			Help:      "Places triggered, by place id.",
		}, []string{"place_id"}),
		NarrationCommands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "narration_commands_total",
			Help:      "Narration commands issued to devices.",
		}, []string{"command"}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Device sessions currently open.",
		}),
		CatalogPlaces: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_places",
			Help:      "Places in the active catalog.",
		}),
		CooldownWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cooldown_writes_total",
			Help:      "Cooldown stamp persistence attempts, by result.",
		}, []string{"result"}),
	}
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry реестр для тестов и дополнительных коллекторов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
