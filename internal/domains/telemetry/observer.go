package telemetry

import (
	"github.com/rickicode/mikrotik-billing/internal/entities"
)

// Observer receives device and reconciliation events.
type Observer interface {
	OnStateChanged(info entities.ConnectionInfo)
	OnCommand(event entities.CommandEvent)
	OnSyncFinished(report entities.SyncReport, err error)
}

// Multi fans events out to every observer in order.
type Multi []Observer

func (m Multi) OnStateChanged(info entities.ConnectionInfo) {
	for _, o := range m {
		o.OnStateChanged(info)
	}
}

func (m Multi) OnCommand(event entities.CommandEvent) {
	for _, o := range m {
		o.OnCommand(event)
	}
}

func (m Multi) OnSyncFinished(report entities.SyncReport, err error) {
	for _, o := range m {
		o.OnSyncFinished(report, err)
	}
}
