package telemetry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/domains/telemetry"
	"github.com/rickicode/mikrotik-billing/internal/domains/telemetry/telemetry_mocks"
	"github.com/rickicode/mikrotik-billing/internal/entities"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}

		for _, metric := range family.GetMetric() {
			if !hasLabels(metric, labels) {
				continue
			}

			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				return float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	return 0
}

func hasLabels(metric *dto.Metric, labels map[string]string) bool {
	matched := 0
	for _, pair := range metric.GetLabel() {
		if value, ok := labels[pair.GetName()]; ok && value == pair.GetValue() {
			matched++
		}
	}

	return matched == len(labels)
}

func Test_MetricsObserver(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	o, err := telemetry.NewMetricsObserver(reg)
	require.NoError(t, err)

	o.OnCommand(entities.CommandEvent{Path: "/ip/hotspot/user/print", Kind: entities.CommandKindRead, Outcome: entities.CommandOutcomeOK, Duration: 20 * time.Millisecond})
	o.OnCommand(entities.CommandEvent{Path: "/ip/hotspot/user/print", Kind: entities.CommandKindRead, Outcome: entities.CommandOutcomeCached})
	o.OnCommand(entities.CommandEvent{Path: "/system/reboot", Kind: entities.CommandKindMutate, Outcome: entities.CommandOutcomeRejected})

	require.InDelta(t, 1, gatherValue(t, reg, "billing_router_commands_total", map[string]string{"kind": "read", "outcome": "ok"}), 0)
	require.InDelta(t, 1, gatherValue(t, reg, "billing_router_commands_total", map[string]string{"kind": "read", "outcome": "cached"}), 0)
	require.InDelta(t, 2, gatherValue(t, reg, "billing_router_command_duration_seconds", map[string]string{"kind": "read"}), 0)
	require.InDelta(t, 0, gatherValue(t, reg, "billing_router_command_duration_seconds", map[string]string{"kind": "mutate"}), 0)

	o.OnStateChanged(entities.ConnectionInfo{State: entities.ConnectionStateConnecting, ReconnectAttempts: 2})
	o.OnStateChanged(entities.ConnectionInfo{State: entities.ConnectionStateDisconnected, IsOffline: true, ReconnectAttempts: 3})

	require.InDelta(t, 1, gatherValue(t, reg, "billing_router_connection_state", map[string]string{"state": "disconnected"}), 0)
	require.InDelta(t, 0, gatherValue(t, reg, "billing_router_connection_state", map[string]string{"state": "connecting"}), 0)
	require.InDelta(t, 1, gatherValue(t, reg, "billing_router_offline", nil), 0)
	require.InDelta(t, 3, gatherValue(t, reg, "billing_router_reconnect_attempts", nil), 0)

	o.OnSyncFinished(entities.SyncReport{
		Restore: entities.SyncStep{Name: "restore", Written: 2},
		Expire:  entities.SyncStep{Name: "expire", Written: 1, Failed: 1},
	}, nil)
	o.OnSyncFinished(entities.SyncReport{}, errors.New("store down"))

	require.InDelta(t, 1, gatherValue(t, reg, "billing_router_sync_runs_total", map[string]string{"result": "ok"}), 0)
	require.InDelta(t, 1, gatherValue(t, reg, "billing_router_sync_runs_total", map[string]string{"result": "error"}), 0)
	require.InDelta(t, 2, gatherValue(t, reg, "billing_router_sync_writes_total", map[string]string{"step": "restore"}), 0)
	require.InDelta(t, 1, gatherValue(t, reg, "billing_router_sync_failures_total", map[string]string{"step": "expire"}), 0)
}

func Test_MetricsObserver_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := telemetry.NewMetricsObserver(reg)
	require.NoError(t, err)

	_, err = telemetry.NewMetricsObserver(reg)
	require.Error(t, err)
}

func Test_EventPublisher(t *testing.T) {
	t.Parallel()

	publisher := telemetry_mocks.NewMockIPublisher(t)
	publisher.EXPECT().Subject(constants.MQEventStateChanged).Return("billing.router." + constants.MQEventStateChanged).Times(1)
	publisher.EXPECT().Publish("billing.router."+constants.MQEventStateChanged, mock.MatchedBy(func(event entities.StateChangedEvent) bool {
		return event.Info.State == entities.ConnectionStateConnected && !event.At.IsZero()
	})).Return(nil).Times(1)

	publisher.EXPECT().Subject(constants.MQEventSyncFinished).Return("billing.router." + constants.MQEventSyncFinished).Times(1)
	publisher.EXPECT().Publish("billing.router."+constants.MQEventSyncFinished, mock.MatchedBy(func(event entities.SyncFinishedEvent) bool {
		return event.Error == "store down"
	})).Return(errors.New("not connected")).Times(1)

	p := telemetry.NewEventPublisher(publisher)
	p.OnStateChanged(entities.ConnectionInfo{State: entities.ConnectionStateConnected})
	p.OnCommand(entities.CommandEvent{Path: "/ip/hotspot/user/print"})
	p.OnSyncFinished(entities.SyncReport{}, errors.New("store down"))
}

func Test_Multi(t *testing.T) {
	t.Parallel()

	first := telemetry_mocks.NewMockObserver(t)
	second := telemetry_mocks.NewMockObserver(t)

	info := entities.ConnectionInfo{State: entities.ConnectionStateConnected}
	event := entities.CommandEvent{Path: "/ppp/secret/print"}
	report := entities.SyncReport{Restore: entities.SyncStep{Name: "restore"}}

	for _, o := range []*telemetry_mocks.MockObserver{first, second} {
		o.EXPECT().OnStateChanged(info).Times(1)
		o.EXPECT().OnCommand(event).Times(1)
		o.EXPECT().OnSyncFinished(report, nil).Times(1)
	}

	m := telemetry.Multi{first, second, telemetry.NewLogObserver()}
	m.OnStateChanged(info)
	m.OnCommand(event)
	m.OnSyncFinished(report, nil)
}
