package entities

import (
	"time"
)

type CommandOutcome string

const (
	CommandOutcomeOK       CommandOutcome = "ok"
	CommandOutcomeCached   CommandOutcome = "cached"
	CommandOutcomeOffline  CommandOutcome = "offline"
	CommandOutcomeDegraded CommandOutcome = "degraded"
	CommandOutcomeRejected CommandOutcome = "rejected"
)

// CommandEvent describes a finished command for observers.
type CommandEvent struct {
	Path     string         `json:"path"`
	Kind     CommandKind    `json:"kind"`
	Outcome  CommandOutcome `json:"outcome"`
	Duration time.Duration  `json:"duration"`
	Retried  bool           `json:"retried,omitempty"`
	Err      error          `json:"-"`
}

// StateChangedEvent is published when the device connection changes state.
type StateChangedEvent struct {
	Info ConnectionInfo `json:"info"`
	At   time.Time      `json:"at"`
}

// SyncFinishedEvent is published after every reconciliation run.
type SyncFinishedEvent struct {
	Report SyncReport `json:"report"`
	Error  string     `json:"error,omitempty"`
	At     time.Time  `json:"at"`
}
