// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/metrics"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

// SlowSyncUseCases holds one use case per slow sync step after the
// migrations.
type SlowSyncUseCases struct {
	SyncSelfUser             UseCase
	SyncFeatureConfigs       UseCase
	UpdateSupportedProtocols UseCase
	SyncConversations        UseCase
	SyncConnections          UseCase
	SyncSelfTeam             UseCase
	SyncLegalHold            UseCase
	SyncContacts             UseCase
	JoinMLSConversations     UseCase
}

func (u SlowSyncUseCases) forStep(step models.SlowSyncStep) UseCase {
	switch step {
	case models.SlowSyncStepSelfUser:
		return u.SyncSelfUser
	case models.SlowSyncStepFeatureFlags:
		return u.SyncFeatureConfigs
	case models.SlowSyncStepUpdateSupportedProtocols:
		return u.UpdateSupportedProtocols
	case models.SlowSyncStepConversations:
		return u.SyncConversations
	case models.SlowSyncStepConnections:
		return u.SyncConnections
	case models.SlowSyncStepSelfTeam:
		return u.SyncSelfTeam
	case models.SlowSyncStepLegalHold:
		return u.SyncLegalHold
	case models.SlowSyncStepContacts:
		return u.SyncContacts
	case models.SlowSyncStepJoiningMLSConversations:
		return u.JoinMLSConversations
	default:
		return nil
	}
}

type slowSyncWorker struct {
	events   store.EventRepository
	useCases SlowSyncUseCases
	oneOnOne OneOnOneResolver
	logger   *logger.Logger
}

func NewSlowSyncWorker(events store.EventRepository, useCases SlowSyncUseCases, oneOnOne OneOnOneResolver, logger *logger.Logger) SlowSyncWorker {
	return &slowSyncWorker{
		events:   events,
		useCases: useCases,
		oneOnOne: oneOnOne,
		logger:   logger.WithComponent("slow_sync"),
	}
}

func (w *slowSyncWorker) PerformSlowSyncSteps(ctx context.Context, migrations []SyncMigrationStep, emit func(models.SlowSyncStep)) error {
	emit(models.SlowSyncStepMigration)
	for _, m := range migrations {
		w.logger.Info().Int("version", m.Version).Str("name", m.Name).Msg("running sync migration")
		if err := m.Run(ctx); err != nil {
			return &SyncError{
				Step: models.SlowSyncStepMigration,
				Err:  fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err),
			}
		}
	}

	// The cursor is held in memory until every step succeeds, so a failed
	// run never leaves a starting point behind for incremental sync.
	cursor, persistCursor, err := w.initialEventCursor(ctx)
	if err != nil {
		return err
	}

	for _, step := range models.SlowSyncSteps {
		if step == models.SlowSyncStepMigration {
			continue
		}
		useCase := w.useCases.forStep(step)
		if useCase == nil {
			return &SyncError{Step: step, Err: errors.New("no use case configured")}
		}

		emit(step)
		started := time.Now()
		err := useCase.Run(ctx)
		metrics.SlowSyncStepDuration.WithLabelValues(step.String()).Observe(time.Since(started).Seconds())
		if err != nil {
			return &SyncError{Step: step, Err: err}
		}

		if step == models.SlowSyncStepJoiningMLSConversations {
			if err := w.oneOnOne.ResolveAllOneOnOneConversations(ctx, true); err != nil {
				return &SyncError{Step: step, Err: fmt.Errorf("resolve one-on-one conversations: %w", err)}
			}
		}
	}

	if persistCursor {
		if err := w.events.UpdateLastProcessedEventID(ctx, cursor); err != nil {
			return fmt.Errorf("persist event cursor: %w", err)
		}
		w.logger.Info().Str("event_id", string(cursor)).Msg("event cursor initialised")
	}
	return nil
}

// initialEventCursor returns the most recent server event id when no
// cursor is stored yet. persist is false when a cursor already exists.
func (w *slowSyncWorker) initialEventCursor(ctx context.Context) (id models.EventID, persist bool, err error) {
	_, err = w.events.LastProcessedEventID(ctx)
	if err == nil {
		return "", false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", false, fmt.Errorf("read event cursor: %w", err)
	}

	id, err = w.events.MostRecentEventID(ctx)
	if err != nil {
		return "", false, fmt.Errorf("fetch most recent event id: %w", err)
	}
	return id, true, nil
}
