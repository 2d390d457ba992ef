// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
	"github.com/MKhiriev/go-msg-sync/models"
)

// syncStateRepository keeps slow and incremental sync state. Statuses live
// in memory; the completion instant, the version and the event cursor are
// persisted in sync_metadata.
type syncStateRepository struct {
	meta   MetadataRepository
	logger *logger.Logger

	slowStatus        *utils.Observable[models.SlowSyncStatus]
	incrementalStatus *utils.Observable[models.IncrementalSyncStatus]
	policy            *utils.Observable[models.ConnectionPolicy]

	loadOnce   sync.Once
	loadErr    error
	completion *utils.Observable[time.Time]
}

// SyncStateRepository is implemented by the repository returned from
// NewSyncStateRepository.
type SyncStateRepository interface {
	SlowSyncRepository
	IncrementalSyncRepository
}

func NewSyncStateRepository(meta MetadataRepository, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		meta:              meta,
		logger:            logger,
		slowStatus:        utils.NewObservable(models.SlowSyncStatus{}),
		incrementalStatus: utils.NewObservable(models.IncrementalSyncStatus{}),
		policy:            utils.NewObservable(models.KeepAlive),
		completion:        utils.NewObservable(time.Time{}),
	}
}

// ── slow sync ────────────────────────────────────────────────────────────────

func (r *syncStateRepository) SlowSyncStatus() models.SlowSyncStatus {
	return r.slowStatus.Value()
}

func (r *syncStateRepository) ObserveSlowSyncStatus(ctx context.Context) <-chan models.SlowSyncStatus {
	return r.slowStatus.Subscribe(ctx)
}

func (r *syncStateRepository) UpdateSlowSyncStatus(status models.SlowSyncStatus) {
	r.slowStatus.Set(status)
}

func (r *syncStateRepository) loadCompletion(ctx context.Context) error {
	r.loadOnce.Do(func() {
		raw, err := r.meta.Value(ctx, keyLastSlowSyncCompleted)
		if errors.Is(err, ErrNotFound) {
			return
		}
		if err != nil {
			r.loadErr = err
			return
		}
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			r.logger.Warn().Err(err).Str("func", "syncStateRepository.loadCompletion").Msg("ignoring malformed completion instant")
			return
		}
		r.completion.Set(at)
	})
	return r.loadErr
}

func (r *syncStateRepository) ObserveLastSlowSyncCompletion(ctx context.Context) (<-chan time.Time, error) {
	if err := r.loadCompletion(ctx); err != nil {
		return nil, fmt.Errorf("load last slow sync completion: %w", err)
	}
	return r.completion.Subscribe(ctx), nil
}

func (r *syncStateRepository) SetLastSlowSyncCompletion(ctx context.Context, at time.Time) error {
	if err := r.meta.SetValue(ctx, keyLastSlowSyncCompleted, at.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("persist last slow sync completion: %w", err)
	}
	r.completion.Set(at)
	return nil
}

func (r *syncStateRepository) ClearLastSlowSyncCompletion(ctx context.Context) error {
	if err := r.meta.DeleteValue(ctx, keyLastSlowSyncCompleted); err != nil {
		return fmt.Errorf("clear last slow sync completion: %w", err)
	}
	r.completion.Set(time.Time{})
	return nil
}

func (r *syncStateRepository) SlowSyncVersion(ctx context.Context) (int, error) {
	raw, err := r.meta.Value(ctx, keySlowSyncVersion)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read slow sync version: %w", err)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse slow sync version %q: %w", raw, err)
	}
	return v, nil
}

func (r *syncStateRepository) SetSlowSyncVersion(ctx context.Context, version int) error {
	if err := r.meta.SetValue(ctx, keySlowSyncVersion, strconv.Itoa(version)); err != nil {
		return fmt.Errorf("persist slow sync version: %w", err)
	}
	return nil
}

// ── incremental sync ─────────────────────────────────────────────────────────

func (r *syncStateRepository) IncrementalSyncStatus() models.IncrementalSyncStatus {
	return r.incrementalStatus.Value()
}

func (r *syncStateRepository) ObserveIncrementalSyncStatus(ctx context.Context) <-chan models.IncrementalSyncStatus {
	return r.incrementalStatus.Subscribe(ctx)
}

func (r *syncStateRepository) UpdateIncrementalSyncStatus(status models.IncrementalSyncStatus) {
	r.incrementalStatus.Set(status)
}

func (r *syncStateRepository) ConnectionPolicy() models.ConnectionPolicy {
	return r.policy.Value()
}

func (r *syncStateRepository) ObserveConnectionPolicy(ctx context.Context) <-chan models.ConnectionPolicy {
	return r.policy.Subscribe(ctx)
}

func (r *syncStateRepository) SetConnectionPolicy(policy models.ConnectionPolicy) {
	r.policy.Set(policy)
}
