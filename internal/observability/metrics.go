package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/cubepop/internal/games/cubepop/core"
)

const namespace = "cubepop"

// Metrics counts session events. Each instance owns its registry so several
// servers (or tests) can run in one process.
type Metrics struct {
	registry *prometheus.Registry

	events        *prometheus.CounterVec
	blocksRemoved prometheus.Counter
	rotations     *prometheus.CounterVec
	finished      *prometheus.CounterVec
	activePlayers prometheus.Gauge
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Session events by kind.",
		}, []string{"kind"}),
		blocksRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_removed_total",
			Help:      "Blocks removed by pops.",
		}),
		rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotations_total",
			Help:      "Committed slice rotations by axis.",
		}, []string{"axis"}),
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_finished_total",
			Help:      "Finished puzzles by result.",
		}, []string{"result"}),
		activePlayers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_players",
			Help:      "Connected players.",
		}),
	}
	m.registry.MustRegister(m.events, m.blocksRemoved, m.rotations, m.finished, m.activePlayers)
	return m
}

// OnEvent implements core.Listener.
func (m *Metrics) OnEvent(ev core.Event) {
	m.events.WithLabelValues(ev.Kind()).Inc()
	switch ev := ev.(type) {
	case core.BlockRemovedEvent:
		m.blocksRemoved.Inc()
	case core.SliceRotatedEvent:
		m.rotations.WithLabelValues(ev.Axis.String()).Inc()
	case core.SessionWonEvent:
		m.finished.WithLabelValues("won").Inc()
	case core.SessionLostEvent:
		m.finished.WithLabelValues("lost").Inc()
	}
}

// PlayerConnected bumps the active player gauge.
func (m *Metrics) PlayerConnected() { m.activePlayers.Inc() }

// PlayerDisconnected lowers the active player gauge.
func (m *Metrics) PlayerDisconnected() { m.activePlayers.Dec() }

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
