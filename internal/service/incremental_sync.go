// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/metrics"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/internal/workers"
	"github.com/MKhiriev/go-msg-sync/models"
)

type incrementalSyncWorker struct {
	gatherer  EventGatherer
	processor EventProcessor
}

func NewIncrementalSyncWorker(gatherer EventGatherer, processor EventProcessor) IncrementalSyncWorker {
	return &incrementalSyncWorker{gatherer: gatherer, processor: processor}
}

// ProcessEvents reports FetchingPendingEvents, then Live once the backlog
// is drained, and feeds every gathered event to the processor in order.
func (w *incrementalSyncWorker) ProcessEvents(ctx context.Context, emit func(models.IncrementalSyncState)) error {
	emit(models.IncrementalSyncFetchingPendingEvents)
	return w.gatherer.GatherEvents(ctx,
		func() { emit(models.IncrementalSyncLive) },
		w.processor.ProcessEvent,
	)
}

// IncrementalSyncManager runs incremental sync while the criteria are ready
// and slow sync is complete.
type IncrementalSyncManager struct {
	criteria   SyncCriteriaProvider
	slow       store.SlowSyncRepository
	repo       store.IncrementalSyncRepository
	worker     IncrementalSyncWorker
	supervisor *workers.Supervisor[models.IncrementalSyncState]
	logger     *logger.Logger
}

func NewIncrementalSyncManager(
	criteria SyncCriteriaProvider,
	slow store.SlowSyncRepository,
	repo store.IncrementalSyncRepository,
	worker IncrementalSyncWorker,
	recovery workers.Recovery,
	backoff workers.BackoffFactory,
	logger *logger.Logger,
) *IncrementalSyncManager {
	m := &IncrementalSyncManager{
		criteria: criteria,
		slow:     slow,
		repo:     repo,
		worker:   worker,
		logger:   logger.WithComponent("incremental_sync"),
	}
	m.supervisor = workers.NewSupervisor("incremental_sync", m.gate, m.worker.ProcessEvents, workers.Hooks[models.IncrementalSyncState]{
		OnItem:     m.onState,
		OnComplete: m.onComplete,
		OnFailure:  m.onFailure,
		OnCancel:   m.onCancel,
	}, recovery, backoff, logger)
	return m
}

func (m *IncrementalSyncManager) Run(ctx context.Context) error {
	return m.supervisor.Run(ctx)
}

func (m *IncrementalSyncManager) Status() models.IncrementalSyncStatus {
	return m.repo.IncrementalSyncStatus()
}

// gate is open while the criteria are ready and slow sync is complete.
// Switching the connection policy back to KeepAlive reopens the gate so a
// run that stopped after catching up connects again.
func (m *IncrementalSyncManager) gate(ctx context.Context) <-chan bool {
	out := make(chan bool)

	go func() {
		defer close(out)

		criteria := m.criteria.Criteria(ctx)
		slow := m.slow.ObserveSlowSyncStatus(ctx)
		policies := m.repo.ObserveConnectionPolicy(ctx)

		var (
			ready    bool
			complete bool
			policy   = m.repo.ConnectionPolicy()
		)

		send := func(v bool) bool {
			select {
			case out <- v:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case c, ok := <-criteria:
				if !ok {
					return
				}
				ready = c.Ready
			case s, ok := <-slow:
				if !ok {
					return
				}
				complete = s.State == models.SlowSyncComplete
			case p, ok := <-policies:
				if !ok {
					policies = nil
					continue
				}
				reconnect := policy == models.DisconnectAfterPendingEvents && p == models.KeepAlive
				policy = p
				if reconnect && ready && complete && !send(false) {
					return
				}
			}

			if !send(ready && complete) {
				return
			}
		}
	}()

	return out
}

func (m *IncrementalSyncManager) onState(state models.IncrementalSyncState) {
	m.logger.Debug().Str("state", state.String()).Msg("incremental sync state changed")
	m.repo.UpdateIncrementalSyncStatus(models.IncrementalSyncStatus{State: state})
}

func (m *IncrementalSyncManager) onComplete() {
	metrics.IncrementalSyncRuns.WithLabelValues(metrics.OutcomeSuccess).Inc()
	m.repo.UpdateIncrementalSyncStatus(models.IncrementalSyncStatus{State: models.IncrementalSyncPending})
}

func (m *IncrementalSyncManager) onFailure(f workers.Failure) {
	metrics.IncrementalSyncRuns.WithLabelValues(metrics.OutcomeFailure).Inc()
	m.repo.UpdateIncrementalSyncStatus(models.IncrementalSyncStatus{
		State:   models.IncrementalSyncFailed,
		Err:     f.Err,
		RetryIn: f.RetryIn,
	})
}

func (m *IncrementalSyncManager) onCancel() {
	metrics.IncrementalSyncRuns.WithLabelValues(metrics.OutcomeCanceled).Inc()
	m.repo.UpdateIncrementalSyncStatus(models.IncrementalSyncStatus{State: models.IncrementalSyncPending})
}

// NewIncrementalSyncRecoveryHandler handles failures the event loop cannot
// retry its way out of. A cursor the server no longer knows (or none at all)
// means events were lost: the cursor is dropped and slow sync is forced to
// run again. The run gives up; the gate closes while slow sync is ongoing
// and opens again once it completes.
func NewIncrementalSyncRecoveryHandler(events store.EventRepository, slow SlowSyncRestarter, logout LogoutRequester, logger *logger.Logger) workers.Recovery {
	log := logger.WithComponent("incremental_sync")
	return func(ctx context.Context, err error) workers.Decision {
		switch {
		case errors.Is(err, ErrSelfUserDeleted), errors.Is(err, ErrClientRemoved):
			log.Warn().Err(err).Msg("incremental sync cannot recover, logging out")
			logout.Logout(err.Error())
			return workers.GiveUp
		case errors.Is(err, adapter.ErrEventNotFound), errors.Is(err, ErrMissingEventCursor):
			log.Warn().Err(err).Msg("event cursor lost, restarting slow sync")
			if cerr := events.ClearLastProcessedEventID(ctx); cerr != nil {
				log.Error().Err(cerr).Msg("failed to clear event cursor")
			}
			if rerr := slow.ForceRestart(ctx); rerr != nil {
				log.Error().Err(rerr).Msg("failed to restart slow sync")
				return workers.Retry
			}
			return workers.GiveUp
		default:
			return workers.Retry
		}
	}
}
