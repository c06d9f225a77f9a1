package telemetry

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/entities"
)

type (
	IPublisher interface {
		Publish(subject string, message any) (err error)
		Subject(name string) string
	}
)

// EventPublisher publishes state changes and sync results to the message broker.
// Command events are not published.
type EventPublisher struct {
	publisher IPublisher
	now       func() time.Time
}

func NewEventPublisher(publisher IPublisher) *EventPublisher {
	return &EventPublisher{
		publisher: publisher,
		now:       time.Now,
	}
}

func (p *EventPublisher) OnStateChanged(info entities.ConnectionInfo) {
	p.publish(constants.MQEventStateChanged, entities.StateChangedEvent{
		Info: info,
		At:   p.now(),
	})
}

func (p *EventPublisher) OnCommand(entities.CommandEvent) {}

func (p *EventPublisher) OnSyncFinished(report entities.SyncReport, err error) {
	event := entities.SyncFinishedEvent{
		Report: report,
		At:     p.now(),
	}
	if err != nil {
		event.Error = err.Error()
	}

	p.publish(constants.MQEventSyncFinished, event)
}

func (p *EventPublisher) publish(name string, message any) {
	subject := p.publisher.Subject(name)
	if err := p.publisher.Publish(subject, message); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("publish: event not published")
	}
}
