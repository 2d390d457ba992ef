// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

type eventGatherer struct {
	events store.EventRepository
	policy store.IncrementalSyncRepository
	logger *logger.Logger
}

func NewEventGatherer(events store.EventRepository, policy store.IncrementalSyncRepository, logger *logger.Logger) EventGatherer {
	return &eventGatherer{events: events, policy: policy, logger: logger.WithComponent("incremental_sync")}
}

// GatherEvents connects to the live stream first and only then reads the
// backlog, so nothing sent in between is lost. Live events already seen in
// the backlog are dropped.
func (g *eventGatherer) GatherEvents(ctx context.Context, onLive func(), handle func(context.Context, models.Event) error) error {
	cursor, err := g.events.LastProcessedEventID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return ErrMissingEventCursor
	}
	if err != nil {
		return fmt.Errorf("read event cursor: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	live, err := g.events.LiveEvents(ctx)
	if err != nil {
		return fmt.Errorf("open live events: %w", err)
	}
	if err := waitForOpen(ctx, live); err != nil {
		return err
	}

	pending, err := g.events.PendingEvents(ctx, cursor)
	if err != nil {
		return fmt.Errorf("fetch pending events: %w", err)
	}
	g.logger.Info().Int("events", len(pending)).Msg("processing pending events")

	seen := make(map[models.EventID]struct{}, len(pending))
	for _, event := range pending {
		seen[event.ID] = struct{}{}
		if err := handle(ctx, event); err != nil {
			return err
		}
	}

	onLive()
	if g.policy.ConnectionPolicy() == models.DisconnectAfterPendingEvents {
		g.logger.Info().Msg("pending events processed, disconnecting")
		return nil
	}

	policies := g.policy.ObserveConnectionPolicy(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case policy, ok := <-policies:
			if ok && policy == models.DisconnectAfterPendingEvents {
				g.logger.Info().Msg("connection policy changed, disconnecting")
				return nil
			}
			if !ok {
				policies = nil
			}
		case item, ok := <-live:
			if !ok {
				return adapter.ErrLiveStreamClosed
			}
			switch item.Kind {
			case models.LiveEventClosed:
				return closedError(item)
			case models.LiveEventReceived:
				if _, dup := seen[item.Event.ID]; dup {
					delete(seen, item.Event.ID)
					continue
				}
				if err := handle(ctx, item.Event); err != nil {
					return err
				}
			}
		}
	}
}

func waitForOpen(ctx context.Context, live <-chan models.LiveEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case item, ok := <-live:
			if !ok {
				return adapter.ErrLiveStreamClosed
			}
			switch item.Kind {
			case models.LiveEventOpen:
				return nil
			case models.LiveEventClosed:
				return closedError(item)
			}
		}
	}
}

func closedError(item models.LiveEvent) error {
	if item.Err != nil {
		return item.Err
	}
	return adapter.ErrLiveStreamClosed
}
