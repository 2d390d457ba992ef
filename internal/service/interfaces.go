// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-msg-sync/models"
)

// SyncCriteriaProvider publishes whether sync may run. The stream is
// level-triggered: every subscriber gets the current resolution first.
type SyncCriteriaProvider interface {
	// Criteria returns a channel of resolutions that is closed when ctx is
	// done. Consecutive duplicates are never sent.
	Criteria(ctx context.Context) <-chan models.SyncCriteriaResolution

	// Current returns the latest resolution.
	Current() models.SyncCriteriaResolution
}

// LogoutRequester is told when sync hits a failure only a logout can
// resolve, such as the account or the device being removed.
type LogoutRequester interface {
	Logout(reason string)
}

// UseCase is one unit of slow sync work.
type UseCase interface {
	Run(ctx context.Context) error
}

// UseCaseFunc adapts a function to UseCase.
type UseCaseFunc func(ctx context.Context) error

// Run implements UseCase.
func (f UseCaseFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// SlowSyncWorker runs the ordered slow sync pipeline once.
type SlowSyncWorker interface {
	// PerformSlowSyncSteps runs migrations, then every step in order,
	// calling emit when a step starts. The event cursor is persisted only
	// when every step succeeded.
	PerformSlowSyncSteps(ctx context.Context, migrations []SyncMigrationStep, emit func(models.SlowSyncStep)) error
}

// SyncMigrationStepsProvider returns the local migrations a slow sync must
// run before its steps.
type SyncMigrationStepsProvider interface {
	Steps(ctx context.Context) ([]SyncMigrationStep, error)

	// CurrentVersion is the version a completed slow sync is recorded with.
	CurrentVersion() int
}

// SlowSyncRestarter forces a full slow sync re-run.
type SlowSyncRestarter interface {
	ForceRestart(ctx context.Context) error
}

// EventReceiver handles the events of one category.
type EventReceiver interface {
	OnEvent(ctx context.Context, event models.Event) error
}

// EventProcessor dispatches one event and moves the cursor past it.
type EventProcessor interface {
	ProcessEvent(ctx context.Context, event models.Event) error
}

// EventGatherer delivers pending and then live events in order.
type EventGatherer interface {
	// GatherEvents calls handle for every event, one at a time, and
	// onLive once the backlog is drained. It returns nil when the
	// connection policy says to stop after the backlog.
	GatherEvents(ctx context.Context, onLive func(), handle func(context.Context, models.Event) error) error
}

// IncrementalSyncWorker runs one incremental sync session.
type IncrementalSyncWorker interface {
	ProcessEvents(ctx context.Context, emit func(models.IncrementalSyncState)) error
}

// ProtocolSelector picks the protocol for a one-on-one conversation.
type ProtocolSelector interface {
	// ProtocolForUser returns ErrNoCommonProtocol when the self user and
	// user share no protocol.
	ProtocolForUser(ctx context.Context, user models.OtherUser) (models.SupportedProtocol, error)
}

// MLSOneOnOneConversationResolver finds or establishes the MLS one-on-one
// conversation with a user.
type MLSOneOnOneConversationResolver interface {
	Resolve(ctx context.Context, user models.UserID) (models.ConversationID, error)
}

// OneOnOneMigrator moves the active one-on-one conversation of a user to a
// protocol.
type OneOnOneMigrator interface {
	MigrateToProteus(ctx context.Context, user models.OtherUser) (models.ConversationID, error)
	MigrateToMLS(ctx context.Context, user models.OtherUser) (models.ConversationID, error)

	// MigrateExistingProteus adopts an existing Proteus one-on-one without
	// creating one. It returns ErrNoProteusOneOnOne when there is none.
	MigrateExistingProteus(ctx context.Context, user models.OtherUser) (models.ConversationID, error)
}

// OneOnOneResolver decides and applies the protocol of one-on-one
// conversations.
type OneOnOneResolver interface {
	ResolveOneOnOneConversationWithUser(ctx context.Context, user models.UserID, synchronizeUser bool) (models.ConversationID, error)
	ResolveAllOneOnOneConversations(ctx context.Context, synchronizeUsers bool) error
}

// UserRefresher pulls user profiles from the backend into local storage.
type UserRefresher interface {
	RefreshUser(ctx context.Context, id models.UserID) error
	RefreshUsers(ctx context.Context, ids []models.UserID) error
	RefreshAllUsers(ctx context.Context) error
}

// MLSConversationJoiner makes this device a member of an MLS group the
// backend already knows.
type MLSConversationJoiner interface {
	Join(ctx context.Context, conversation models.Conversation) error
}

// GroupVerificationStatusChecker recomputes conversation verification
// status on epoch changes.
type GroupVerificationStatusChecker interface {
	Run(ctx context.Context) error
	Check(ctx context.Context, groupID models.GroupID) error
}
