package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rickicode/mikrotik-billing/internal/entities"
)

const namespace = "billing_router"

var connectionStates = []entities.ConnectionState{
	entities.ConnectionStateDisconnected,
	entities.ConnectionStateConnecting,
	entities.ConnectionStateAuthenticating,
	entities.ConnectionStateConnected,
}

// MetricsObserver exports events as Prometheus metrics.
type MetricsObserver struct {
	commands          *prometheus.CounterVec
	commandDuration   *prometheus.HistogramVec
	connectionState   *prometheus.GaugeVec
	offline           prometheus.Gauge
	reconnectAttempts prometheus.Gauge
	syncRuns          *prometheus.CounterVec
	syncWrites        *prometheus.CounterVec
	syncFailures      *prometheus.CounterVec
	syncDuration      prometheus.Histogram
}

func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	o := &MetricsObserver{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Device commands by kind and outcome.",
		}, []string{"kind", "outcome"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Device command duration in seconds.",
			Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"kind"}),
		connectionState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connection_state",
			Help:      "Current device connection state, 1 for the active state.",
		}, []string{"state"}),
		offline: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "offline",
			Help:      "1 when the device is in offline mode.",
		}),
		reconnectAttempts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reconnect_attempts",
			Help:      "Reconnect attempts since the last successful connection.",
		}),
		syncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Reconciliation runs by result.",
		}, []string{"result"}),
		syncWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_writes_total",
			Help:      "Device writes issued by reconciliation, by step.",
		}, []string{"step"}),
		syncFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_failures_total",
			Help:      "Per-entity reconciliation failures, by step.",
		}, []string{"step"}),
		syncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Reconciliation run duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}

	collectors := []prometheus.Collector{
		o.commands, o.commandDuration, o.connectionState, o.offline, o.reconnectAttempts,
		o.syncRuns, o.syncWrites, o.syncFailures, o.syncDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (o *MetricsObserver) OnStateChanged(info entities.ConnectionInfo) {
	for _, state := range connectionStates {
		value := 0.0
		if state == info.State {
			value = 1
		}
		o.connectionState.WithLabelValues(state.String()).Set(value)
	}

	o.offline.Set(boolToFloat(info.IsOffline))
	o.reconnectAttempts.Set(float64(info.ReconnectAttempts))
}

func (o *MetricsObserver) OnCommand(event entities.CommandEvent) {
	o.commands.WithLabelValues(event.Kind.String(), string(event.Outcome)).Inc()
	if event.Outcome != entities.CommandOutcomeRejected {
		o.commandDuration.WithLabelValues(event.Kind.String()).Observe(event.Duration.Seconds())
	}
}

func (o *MetricsObserver) OnSyncFinished(report entities.SyncReport, err error) {
	if err != nil {
		o.syncRuns.WithLabelValues("error").Inc()
		return
	}

	o.syncRuns.WithLabelValues("ok").Inc()
	o.syncDuration.Observe(report.Duration.Seconds())
	for _, step := range []entities.SyncStep{report.Restore, report.Expire, report.FirstLogin} {
		o.syncWrites.WithLabelValues(step.Name).Add(float64(step.Written))
		o.syncFailures.WithLabelValues(step.Name).Add(float64(step.Failed))
	}
}

func boolToFloat(value bool) float64 {
	if value {
		return 1
	}

	return 0
}
