package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/internal/workers"
	"github.com/MKhiriev/go-msg-sync/models"
)

// ErrSyncGaveUp is returned by WaitUntilLive when incremental sync failed
// for good.
var ErrSyncGaveUp = errors.New("sync gave up")

// SyncStatus is a snapshot of both engines and the criteria.
type SyncStatus struct {
	Criteria    models.SyncCriteriaResolution
	Slow        models.SlowSyncStatus
	Incremental models.IncrementalSyncStatus
}

// SyncExecutor owns the criteria provider and both sync engines.
type SyncExecutor struct {
	criteria     *CriteriaProvider
	slow         *SlowSyncManager
	incremental  *IncrementalSyncManager
	verification GroupVerificationStatusChecker
	epochs       *EpochForwarder

	slowRepo        store.SlowSyncRepository
	incrementalRepo store.IncrementalSyncRepository

	logger *logger.Logger
}

// NewSyncExecutor returns an executor. verification and epochs may be nil.
func NewSyncExecutor(
	criteria *CriteriaProvider,
	slow *SlowSyncManager,
	incremental *IncrementalSyncManager,
	verification GroupVerificationStatusChecker,
	epochs *EpochForwarder,
	slowRepo store.SlowSyncRepository,
	incrementalRepo store.IncrementalSyncRepository,
	logger *logger.Logger,
) *SyncExecutor {
	return &SyncExecutor{
		criteria:        criteria,
		slow:            slow,
		incremental:     incremental,
		verification:    verification,
		epochs:          epochs,
		slowRepo:        slowRepo,
		incrementalRepo: incrementalRepo,
		logger:          logger,
	}
}

// Start runs the criteria provider, both engines, the verification checker
// and the MLS epoch forwarder until ctx is done or one of them fails.
func (e *SyncExecutor) Start(ctx context.Context) error {
	group := workers.NewWorkers(e.criteria, e.slow, e.incremental)
	if e.verification != nil {
		group.Add(e.verification)
	}
	if e.epochs != nil {
		group.Add(e.epochs)
	}
	e.logger.Info().Msg("sync started")
	err := group.Run(ctx)
	e.logger.Info().Err(err).Msg("sync stopped")
	return err
}

func (e *SyncExecutor) Criteria(ctx context.Context) <-chan models.SyncCriteriaResolution {
	return e.criteria.Criteria(ctx)
}

func (e *SyncExecutor) SlowSyncStatus(ctx context.Context) <-chan models.SlowSyncStatus {
	return e.slowRepo.ObserveSlowSyncStatus(ctx)
}

func (e *SyncExecutor) IncrementalStatus(ctx context.Context) <-chan models.IncrementalSyncStatus {
	return e.incrementalRepo.ObserveIncrementalSyncStatus(ctx)
}

// Status returns the current snapshot.
func (e *SyncExecutor) Status() SyncStatus {
	return SyncStatus{
		Criteria:    e.criteria.Current(),
		Slow:        e.slowRepo.SlowSyncStatus(),
		Incremental: e.incrementalRepo.IncrementalSyncStatus(),
	}
}

// ForceSlowSync discards the last slow sync completion and runs it again.
func (e *SyncExecutor) ForceSlowSync(ctx context.Context) error {
	return e.slow.ForceRestart(ctx)
}

// WaitUntilLive blocks until incremental sync is live. A failure without a
// retry while the criteria are blocked (a logout) ends the wait with
// ErrSyncGaveUp.
func (e *SyncExecutor) WaitUntilLive(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	statuses := e.incrementalRepo.ObserveIncrementalSyncStatus(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s, ok := <-statuses:
			if !ok {
				return ctx.Err()
			}
			switch {
			case s.State == models.IncrementalSyncLive:
				return nil
			case s.State == models.IncrementalSyncFailed && s.RetryIn == 0 && s.Err != nil && !e.criteria.Current().Ready:
				return errors.Join(ErrSyncGaveUp, s.Err)
			}
		}
	}
}
