package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the live boards and
// their socket sessions.
type Metrics struct {
	TicksApplied prometheus.Counter
	TicksDropped prometheus.Counter
	Toggles      *prometheus.CounterVec // labels: state={live,paused}

	BoardsMounted prometheus.Gauge
	BoardsLive    prometheus.Gauge
	MountsTotal   *prometheus.CounterVec // labels: outcome={ok,rejected}

	// Socket metrics.
	SocketMessages   *prometheus.CounterVec // labels: direction={in,out}
	SocketErrors     prometheus.Counter
	RenderDuration   prometheus.Histogram
	SnapshotsDropped prometheus.Counter
}

// NewMetrics creates and registers all board metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.TicksApplied,
		m.TicksDropped,
		m.Toggles,
		m.BoardsMounted,
		m.BoardsLive,
		m.MountsTotal,
		m.SocketMessages,
		m.SocketErrors,
		m.RenderDuration,
		m.SnapshotsDropped,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		TicksApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seismowatch",
			Name:      "board_ticks_applied_total",
			Help:      "Simulated update steps committed to a board.",
		}),
		TicksDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seismowatch",
			Name:      "board_ticks_dropped_total",
			Help:      "Ticks that arrived after their schedule was cancelled and were ignored.",
		}),
		Toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seismowatch",
			Name:      "board_toggles_total",
			Help:      "Live flag changes by resulting state.",
		}, []string{"state"}),
		BoardsMounted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seismowatch",
			Name:      "boards_mounted",
			Help:      "Boards currently mounted.",
		}),
		BoardsLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seismowatch",
			Name:      "boards_live",
			Help:      "Mounted boards with the live flag set.",
		}),
		MountsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seismowatch",
			Name:      "board_mounts_total",
			Help:      "Board mount attempts by outcome.",
		}, []string{"outcome"}),
		SocketMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seismowatch",
			Name:      "socket_messages_total",
			Help:      "Board socket messages by direction.",
		}, []string{"direction"}),
		SocketErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seismowatch",
			Name:      "socket_errors_total",
			Help:      "Board socket read or write failures.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "seismowatch",
			Name:      "board_render_duration_seconds",
			Help:      "Time to render a board fragment for a socket push.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		SnapshotsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seismowatch",
			Name:      "socket_snapshots_dropped_total",
			Help:      "Snapshots skipped because a slow socket's queue was full or they were stale.",
		}),
	}
}
