package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/models"
)

type eventRepository struct {
	remote RemoteEventSource
	meta   MetadataRepository
	logger *logger.Logger
}

// NewEventRepository combines the remote event source with the locally
// persisted processed-event cursor.
func NewEventRepository(remote RemoteEventSource, meta MetadataRepository, logger *logger.Logger) EventRepository {
	return &eventRepository{remote: remote, meta: meta, logger: logger}
}

func (r *eventRepository) MostRecentEventID(ctx context.Context) (models.EventID, error) {
	id, err := r.remote.MostRecentEventID(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch most recent event id: %w", err)
	}
	return id, nil
}

func (r *eventRepository) LastProcessedEventID(ctx context.Context) (models.EventID, error) {
	raw, err := r.meta.Value(ctx, keyLastProcessedEventID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Err(err).Str("func", "eventRepository.LastProcessedEventID").Msg("failed to read event cursor")
		}
		return "", err
	}
	return models.EventID(raw), nil
}

func (r *eventRepository) UpdateLastProcessedEventID(ctx context.Context, id models.EventID) error {
	if err := r.meta.SetValue(ctx, keyLastProcessedEventID, string(id)); err != nil {
		return fmt.Errorf("persist last processed event id: %w", err)
	}
	return nil
}

func (r *eventRepository) ClearLastProcessedEventID(ctx context.Context) error {
	if err := r.meta.DeleteValue(ctx, keyLastProcessedEventID); err != nil {
		return fmt.Errorf("clear last processed event id: %w", err)
	}
	return nil
}

func (r *eventRepository) PendingEvents(ctx context.Context, since models.EventID) ([]models.Event, error) {
	events, err := r.remote.PendingEvents(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("fetch pending events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) LiveEvents(ctx context.Context) (<-chan models.LiveEvent, error) {
	ch, err := r.remote.LiveEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("open live events: %w", err)
	}
	return ch, nil
}
