package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/metrics"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

// EventReceivers holds the receiver of each event category. A nil receiver
// means events of that category are acknowledged without handling.
type EventReceivers struct {
	Conversation  EventReceiver
	User          EventReceiver
	Team          EventReceiver
	FeatureConfig EventReceiver
}

func (r EventReceivers) forCategory(c models.EventCategory) EventReceiver {
	switch c {
	case models.EventCategoryConversation:
		return r.Conversation
	case models.EventCategoryUser:
		return r.User
	case models.EventCategoryTeam:
		return r.Team
	case models.EventCategoryFeatureConfig:
		return r.FeatureConfig
	default:
		return nil
	}
}

type eventProcessor struct {
	events    store.EventRepository
	receivers EventReceivers
	logger    *logger.Logger
}

func NewEventProcessor(events store.EventRepository, receivers EventReceivers, logger *logger.Logger) EventProcessor {
	return &eventProcessor{events: events, receivers: receivers, logger: logger.WithComponent("incremental_sync")}
}

// ProcessEvent dispatches event to the receiver of its category and, unless
// the event is transient, stores it as the last processed event. A failed
// dispatch leaves the cursor where it was.
func (p *eventProcessor) ProcessEvent(ctx context.Context, event models.Event) error {
	category := event.Category.String()

	if receiver := p.receivers.forCategory(event.Category); receiver != nil {
		err := receiver.OnEvent(ctx, event)
		switch {
		case errors.Is(err, ErrUnknownEventType):
			p.logger.Debug().Str("event_id", string(event.ID)).Str("type", event.Type).Msg("ignoring unknown event type")
		case err != nil:
			metrics.IncrementalEventsProcessed.WithLabelValues(category, metrics.OutcomeFailure).Inc()
			return fmt.Errorf("process event %s (%s): %w", event.ID, event.Type, err)
		}
	} else {
		p.logger.Debug().Str("event_id", string(event.ID)).Str("type", event.Type).Msg("no receiver for event")
	}
	metrics.IncrementalEventsProcessed.WithLabelValues(category, metrics.OutcomeSuccess).Inc()

	if event.Transient {
		return nil
	}
	if err := p.events.UpdateLastProcessedEventID(ctx, event.ID); err != nil {
		return fmt.Errorf("persist event cursor: %w", err)
	}
	return nil
}
