package telemetry

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rickicode/mikrotik-billing/internal/entities"
)

// LogObserver writes events to the global logger.
type LogObserver struct{}

func NewLogObserver() *LogObserver {
	return &LogObserver{}
}

func (o *LogObserver) OnStateChanged(info entities.ConnectionInfo) {
	event := log.Info()
	if info.IsOffline {
		event = log.Warn()
	}

	event.
		Str("state", info.State.String()).
		Bool("offline", info.IsOffline).
		Str("host", info.Host).
		Int("reconnect attempts", info.ReconnectAttempts).
		Str("last error", info.LastError).
		Msg("OnStateChanged: device connection state changed")
}

func (o *LogObserver) OnCommand(event entities.CommandEvent) {
	var e *zerolog.Event
	switch event.Outcome {
	case entities.CommandOutcomeOK, entities.CommandOutcomeCached:
		e = log.Debug()
	default:
		e = log.Warn().Err(event.Err)
	}

	e.
		Str("path", event.Path).
		Str("kind", event.Kind.String()).
		Str("outcome", string(event.Outcome)).
		Dur("duration", event.Duration).
		Bool("retried", event.Retried).
		Msg("OnCommand: command finished")
}

func (o *LogObserver) OnSyncFinished(report entities.SyncReport, err error) {
	if err != nil {
		log.Error().Err(err).Msg("OnSyncFinished: sync failed")
		return
	}

	e := log.Info()
	if report.Failures() > 0 {
		e = log.Warn().Strs("failures", failureMessages(report))
	}

	e.
		Int("restored", report.Restore.Written).
		Int("expired", report.Expire.Written).
		Int("first logins", report.FirstLogin.Written).
		Dur("duration", report.Duration).
		Msg("OnSyncFinished: sync finished")
}

func failureMessages(report entities.SyncReport) (messages []string) {
	for _, step := range []entities.SyncStep{report.Restore, report.Expire, report.FirstLogin} {
		messages = append(messages, step.Messages...)
	}

	return messages
}
