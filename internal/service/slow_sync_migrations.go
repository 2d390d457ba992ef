package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

// SyncMigrationStep is a one-time local data migration run at the start of
// slow sync. Run must be idempotent: a failed slow sync runs it again.
type SyncMigrationStep struct {
	Version int
	Name    string
	Run     func(ctx context.Context) error
}

type syncMigrationStepsProvider struct {
	steps   []SyncMigrationStep
	repo    store.SlowSyncRepository
	version int
	logger  *logger.Logger
}

// NewSyncMigrationStepsProvider returns a provider over steps. The current
// slow sync version is the highest step version, or minVersion when that is
// higher.
func NewSyncMigrationStepsProvider(steps []SyncMigrationStep, minVersion int, repo store.SlowSyncRepository, logger *logger.Logger) SyncMigrationStepsProvider {
	sorted := append([]SyncMigrationStep(nil), steps...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Version < sorted[j].Version })

	version := minVersion
	for _, s := range sorted {
		if s.Version > version {
			version = s.Version
		}
	}
	return &syncMigrationStepsProvider{steps: sorted, repo: repo, version: version, logger: logger}
}

// Steps returns the steps newer than the version of the last complete slow
// sync, oldest first.
func (p *syncMigrationStepsProvider) Steps(ctx context.Context) ([]SyncMigrationStep, error) {
	stored, err := p.repo.SlowSyncVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("read slow sync version: %w", err)
	}

	var pending []SyncMigrationStep
	for _, s := range p.steps {
		if s.Version > stored {
			pending = append(pending, s)
		}
	}
	p.logger.Debug().Int("stored_version", stored).Int("pending", len(pending)).Msg("sync migrations selected")
	return pending, nil
}

func (p *syncMigrationStepsProvider) CurrentVersion() int {
	return p.version
}

// DefaultSyncMigrationSteps returns the built-in migrations.
func DefaultSyncMigrationSteps(conversations store.ConversationRepository, coordinator *crypto.Coordinator, logger *logger.Logger) []SyncMigrationStep {
	return []SyncMigrationStep{
		{
			Version: 1,
			Name:    "recover_lost_mls_groups",
			Run: func(ctx context.Context) error {
				return recoverLostMLSGroups(ctx, conversations, coordinator, logger)
			},
		},
	}
}

// recoverLostMLSGroups marks established groups the MLS backend no longer
// knows as pending, so the join step rejoins them by external commit.
func recoverLostMLSGroups(ctx context.Context, conversations store.ConversationRepository, coordinator *crypto.Coordinator, logger *logger.Logger) error {
	established, err := conversations.ConversationsByGroupState(ctx, models.GroupStateEstablished)
	if err != nil {
		return fmt.Errorf("list established groups: %w", err)
	}
	if len(established) == 0 {
		return nil
	}

	var lost []models.GroupID
	err = coordinator.Transaction(ctx, "recover_lost_mls_groups", func(ctx context.Context, tx crypto.TransactionContext) error {
		mls, ok := tx.MLS()
		if !ok {
			return nil
		}
		for _, c := range established {
			if !c.ProtocolInfo.IsMLS() {
				continue
			}
			exists, err := mls.ConversationExists(ctx, c.ProtocolInfo.MLS.GroupID)
			if err != nil {
				return err
			}
			if !exists {
				lost = append(lost, c.ProtocolInfo.MLS.GroupID)
			}
		}
		return nil
	})
	if errors.Is(err, crypto.ErrNoCryptoBackend) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, groupID := range lost {
		if err := conversations.UpdateGroupState(ctx, groupID, models.GroupStatePending, 0); err != nil {
			return fmt.Errorf("mark group %s pending: %w", groupID, err)
		}
	}
	if len(lost) > 0 {
		logger.Warn().Int("groups", len(lost)).Msg("mls groups missing locally, scheduled for rejoin")
	}
	return nil
}
