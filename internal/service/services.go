package service

import (
	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
	"github.com/MKhiriev/go-msg-sync/internal/workers"
	"github.com/MKhiriev/go-msg-sync/models"
)

// ClientServicesDeps are the collaborators the services are built from.
type ClientServicesDeps struct {
	Config   *config.ClientConfig
	Storages *store.ClientStorages
	Events   store.EventRepository
	Backend  adapter.BackendAdapter
	Session  *adapter.SessionWatcher

	MLS         *crypto.MLSClientProvider
	Coordinator *crypto.Coordinator
	Epochs      *crypto.EpochBus

	ClientID          *utils.Observable[models.ClientID]
	EnrollmentBlocked *utils.Observable[bool]
}

type ClientServices struct {
	Criteria     *CriteriaProvider
	Sync         *SyncExecutor
	OneOnOne     OneOnOneResolver
	Refresher    UserRefresher
	Joiner       MLSConversationJoiner
	Verification GroupVerificationStatusChecker
}

func NewClientServices(deps ClientServicesDeps, logger *logger.Logger) *ClientServices {
	cfg := deps.Config
	storages := deps.Storages
	selfUserID := models.UserID{Value: cfg.App.SelfUserID, Domain: cfg.App.SelfDomain}
	backoff := workers.ExponentialBackoff(cfg.Workers.RetryBaseDelay, cfg.Workers.RetryMaxDelay)

	var logouts <-chan string
	if deps.Session != nil {
		logouts = deps.Session.Logouts()
	}
	criteria := NewSyncCriteriaProvider(deps.ClientID, deps.EnrollmentBlocked, logouts, logger)

	refresher := NewUserRefresher(storages.Users, deps.Backend, logger)
	joiner := NewMLSConversationJoiner(deps.Coordinator, deps.Backend, storages.Conversations, deps.Epochs, logger)
	selector := NewProtocolSelector(storages.Users, storages.FeatureConfig, logger)
	mlsResolver := NewMLSOneOnOneConversationResolver(storages.Conversations, deps.Backend, joiner, logger)
	migrator := NewOneOnOneMigrator(selfUserID, mlsResolver, storages.Conversations, storages.Users, storages.Messages, deps.Backend, logger)
	oneOnOne := NewOneOnOneResolver(storages.Users, refresher, selector, migrator, logger)
	verification := NewGroupVerificationStatusChecker(selfUserID, deps.MLS, deps.Epochs, storages.Conversations, storages.Messages, refresher, logger)

	useCases := NewSlowSyncUseCases(SlowSyncStepDeps{
		Backend:       deps.Backend,
		Users:         storages.Users,
		Conversations: storages.Conversations,
		FeatureConfig: storages.FeatureConfig,
		Metadata:      storages.Metadata,
		MLS:           deps.MLS,
		Joiner:        joiner,
		Refresher:     refresher,
	}, logger)
	migrations := NewSyncMigrationStepsProvider(
		DefaultSyncMigrationSteps(storages.Conversations, deps.Coordinator, logger),
		cfg.Workers.SlowSyncVersion,
		storages.SyncState,
		logger,
	)
	slow := NewSlowSyncManager(
		criteria,
		storages.SyncState,
		NewSlowSyncWorker(deps.Events, useCases, oneOnOne, logger),
		migrations,
		NewSlowSyncRecoveryHandler(criteria, logger),
		backoff,
		cfg.Workers.MinSlowSyncInterval,
		logger,
	)

	processor := NewEventProcessor(deps.Events, EventReceivers{
		Conversation:  NewConversationEventReceiver(storages.Conversations, joiner, deps.Epochs, logger),
		User:          NewUserEventReceiver(selfUserID, deps.ClientID.Value, storages.Users, refresher, oneOnOne, logger),
		Team:          NewTeamEventReceiver(storages.Users, storages.Metadata),
		FeatureConfig: NewFeatureConfigEventReceiver(storages.FeatureConfig),
	}, logger)
	incremental := NewIncrementalSyncManager(
		criteria,
		storages.SyncState,
		storages.SyncState,
		NewIncrementalSyncWorker(NewEventGatherer(deps.Events, storages.SyncState, logger), processor),
		NewIncrementalSyncRecoveryHandler(deps.Events, slow, criteria, logger),
		backoff,
		logger,
	)

	epochs := NewEpochForwarder(criteria, deps.MLS, deps.Epochs, logger)

	return &ClientServices{
		Criteria:     criteria,
		Sync:         NewSyncExecutor(criteria, slow, incremental, verification, epochs, storages.SyncState, storages.SyncState, logger),
		OneOnOne:     oneOnOne,
		Refresher:    refresher,
		Joiner:       joiner,
		Verification: verification,
	}
}
