// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/metrics"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/internal/workers"
	"github.com/MKhiriev/go-msg-sync/models"
)

const persistTimeout = 5 * time.Second

// SlowSyncManager runs slow sync whenever the criteria are ready and the
// last complete run is missing, too old or from an older version.
type SlowSyncManager struct {
	criteria    SyncCriteriaProvider
	repo        store.SlowSyncRepository
	worker      SlowSyncWorker
	migrations  SyncMigrationStepsProvider
	minInterval time.Duration
	now         func() time.Time

	supervisor *workers.Supervisor[models.SlowSyncStep]
	logger     *logger.Logger
}

func NewSlowSyncManager(
	criteria SyncCriteriaProvider,
	repo store.SlowSyncRepository,
	worker SlowSyncWorker,
	migrations SyncMigrationStepsProvider,
	recovery workers.Recovery,
	backoff workers.BackoffFactory,
	minInterval time.Duration,
	logger *logger.Logger,
) *SlowSyncManager {
	m := &SlowSyncManager{
		criteria:    criteria,
		repo:        repo,
		worker:      worker,
		migrations:  migrations,
		minInterval: minInterval,
		now:         time.Now,
		logger:      logger.WithComponent("slow_sync"),
	}
	m.supervisor = workers.NewSupervisor("slow_sync", m.gate, m.produce, workers.Hooks[models.SlowSyncStep]{
		OnItem:     m.onStep,
		OnComplete: m.onComplete,
		OnFailure:  m.onFailure,
		OnCancel:   m.onCancel,
	}, recovery, backoff, logger)
	return m
}

// Run follows the criteria until ctx is done.
func (m *SlowSyncManager) Run(ctx context.Context) error {
	return m.supervisor.Run(ctx)
}

// Status returns the current slow sync status.
func (m *SlowSyncManager) Status() models.SlowSyncStatus {
	return m.repo.SlowSyncStatus()
}

// ForceRestart forgets the last completion and starts a fresh run, canceling
// one in progress. The gate sees the cleared completion and does the rest.
func (m *SlowSyncManager) ForceRestart(ctx context.Context) error {
	if err := m.repo.ClearLastSlowSyncCompletion(ctx); err != nil {
		return err
	}
	m.logger.Info().Msg("slow sync restart requested")
	return nil
}

func (m *SlowSyncManager) produce(ctx context.Context, emit func(models.SlowSyncStep)) error {
	migrations, err := m.migrations.Steps(ctx)
	if err != nil {
		return &SyncError{Step: models.SlowSyncStepMigration, Err: err}
	}
	return m.worker.PerformSlowSyncSteps(ctx, migrations, emit)
}

// gate emits true while slow sync should run. A completion cleared while the
// gate is open is sent as false followed by true so the running run starts
// over.
func (m *SlowSyncManager) gate(ctx context.Context) <-chan bool {
	out := make(chan bool)

	go func() {
		defer close(out)

		criteria := m.criteria.Criteria(ctx)
		completions, err := m.repo.ObserveLastSlowSyncCompletion(ctx)
		if err != nil {
			m.logger.Error().Err(err).Msg("cannot observe slow sync completion, treating as never completed")
			completions = nil
		}

		var (
			ready   bool
			opened  bool
			last    time.Time
			timer   *time.Timer
			expired <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

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
			case at, ok := <-completions:
				if !ok {
					completions = nil
					continue
				}
				last = at
				if at.IsZero() && opened {
					if !send(false) {
						return
					}
					opened = false
				}
			case <-expired:
				expired = nil
			}

			if timer != nil {
				timer.Stop()
				timer, expired = nil, nil
			}

			open := false
			switch {
			case !ready:
				m.repo.UpdateSlowSyncStatus(models.SlowSyncStatus{State: models.SlowSyncNotStarted})
			case m.needed(ctx, last):
				open = true
			default:
				if m.repo.SlowSyncStatus().State != models.SlowSyncComplete {
					m.repo.UpdateSlowSyncStatus(models.SlowSyncStatusComplete())
				}
				timer = time.NewTimer(time.Until(last.Add(m.minInterval)))
				expired = timer.C
			}

			if !send(open) {
				return
			}
			opened = open
		}
	}()

	return out
}

func (m *SlowSyncManager) needed(ctx context.Context, last time.Time) bool {
	if last.IsZero() || !m.now().Before(last.Add(m.minInterval)) {
		return true
	}
	stored, err := m.repo.SlowSyncVersion(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("cannot read slow sync version, running slow sync")
		return true
	}
	return stored < m.migrations.CurrentVersion()
}

func (m *SlowSyncManager) onStep(step models.SlowSyncStep) {
	m.logger.Debug().Str("step", step.String()).Msg("slow sync step started")
	m.repo.UpdateSlowSyncStatus(models.SlowSyncStatusOngoing(step))
}

func (m *SlowSyncManager) onComplete() {
	metrics.SlowSyncRuns.WithLabelValues(metrics.OutcomeSuccess).Inc()
	m.repo.UpdateSlowSyncStatus(models.SlowSyncStatusComplete())

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	// The version goes first: the completion instant wakes up the gate,
	// which reads the version.
	if err := m.repo.SetSlowSyncVersion(ctx, m.migrations.CurrentVersion()); err != nil {
		m.logger.Error().Err(err).Msg("failed to persist slow sync version")
	}
	if err := m.repo.SetLastSlowSyncCompletion(ctx, m.now().UTC()); err != nil {
		m.logger.Error().Err(err).Msg("failed to persist slow sync completion")
	}
}

func (m *SlowSyncManager) onFailure(f workers.Failure) {
	metrics.SlowSyncRuns.WithLabelValues(metrics.OutcomeFailure).Inc()
	m.repo.UpdateSlowSyncStatus(models.SlowSyncStatusFailed(f.Err, f.RetryIn))
}

func (m *SlowSyncManager) onCancel() {
	metrics.SlowSyncRuns.WithLabelValues(metrics.OutcomeCanceled).Inc()
	m.repo.UpdateSlowSyncStatus(models.SlowSyncStatus{State: models.SlowSyncNotStarted})
}

// NewSlowSyncRecoveryHandler gives up and logs out when the account or this
// device is gone, and when no crypto backend exists. Anything else is
// retried.
func NewSlowSyncRecoveryHandler(logout LogoutRequester, logger *logger.Logger) workers.Recovery {
	log := logger.WithComponent("slow_sync")
	return func(ctx context.Context, err error) workers.Decision {
		switch {
		case errors.Is(err, ErrSelfUserDeleted), errors.Is(err, ErrClientRemoved):
			log.Warn().Err(err).Msg("slow sync cannot recover, logging out")
			logout.Logout(err.Error())
			return workers.GiveUp
		case errors.Is(err, crypto.ErrNoCryptoBackend):
			log.Error().Err(err).Msg("slow sync cannot run without a crypto backend")
			return workers.GiveUp
		default:
			return workers.Retry
		}
	}
}
