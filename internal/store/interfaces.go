package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-msg-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MetadataRepository is a small durable key-value store for client state
// that has no table of its own (cursors, feature flags, team, legal hold).
type MetadataRepository interface {
	// Value returns the value stored under key or ErrNotFound.
	Value(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}

// SlowSyncRepository holds the slow sync status and its durable markers.
type SlowSyncRepository interface {
	SlowSyncStatus() models.SlowSyncStatus
	ObserveSlowSyncStatus(ctx context.Context) <-chan models.SlowSyncStatus
	UpdateSlowSyncStatus(status models.SlowSyncStatus)

	// ObserveLastSlowSyncCompletion yields the instant of the last complete
	// slow sync, or the zero time when none is recorded.
	ObserveLastSlowSyncCompletion(ctx context.Context) (<-chan time.Time, error)
	SetLastSlowSyncCompletion(ctx context.Context, at time.Time) error
	ClearLastSlowSyncCompletion(ctx context.Context) error

	// SlowSyncVersion returns the version of the last complete slow sync,
	// or 0 when none is recorded.
	SlowSyncVersion(ctx context.Context) (int, error)
	SetSlowSyncVersion(ctx context.Context, version int) error
}

// IncrementalSyncRepository holds the in-memory incremental sync state.
type IncrementalSyncRepository interface {
	IncrementalSyncStatus() models.IncrementalSyncStatus
	ObserveIncrementalSyncStatus(ctx context.Context) <-chan models.IncrementalSyncStatus
	UpdateIncrementalSyncStatus(status models.IncrementalSyncStatus)

	ConnectionPolicy() models.ConnectionPolicy
	ObserveConnectionPolicy(ctx context.Context) <-chan models.ConnectionPolicy
	SetConnectionPolicy(policy models.ConnectionPolicy)
}

// RemoteEventSource is the server side of the event stream.
type RemoteEventSource interface {
	MostRecentEventID(ctx context.Context) (models.EventID, error)
	PendingEvents(ctx context.Context, since models.EventID) ([]models.Event, error)
	LiveEvents(ctx context.Context) (<-chan models.LiveEvent, error)
}

// EventRepository combines the remote event stream with the durable
// processed-event cursor.
type EventRepository interface {
	MostRecentEventID(ctx context.Context) (models.EventID, error)

	// LastProcessedEventID returns ErrNotFound when no cursor is stored.
	LastProcessedEventID(ctx context.Context) (models.EventID, error)
	UpdateLastProcessedEventID(ctx context.Context, id models.EventID) error
	ClearLastProcessedEventID(ctx context.Context) error

	PendingEvents(ctx context.Context, since models.EventID) ([]models.Event, error)
	LiveEvents(ctx context.Context) (<-chan models.LiveEvent, error)
}

// ConversationRepository stores conversations and their members.
type ConversationRepository interface {
	ConversationByID(ctx context.Context, id models.ConversationID) (models.Conversation, error)
	ConversationByGroupID(ctx context.Context, groupID models.GroupID) (models.Conversation, error)

	// ConversationsForUser lists every conversation user is a member of.
	ConversationsForUser(ctx context.Context, user models.UserID) ([]models.Conversation, error)

	// OneOnOneConversationsWithUser lists one-on-one conversations with
	// user that use protocol, oldest first.
	OneOnOneConversationsWithUser(ctx context.Context, user models.UserID, protocol models.Protocol) ([]models.ConversationID, error)

	// ConversationsByGroupState lists MLS conversations in state.
	ConversationsByGroupState(ctx context.Context, state models.GroupState) ([]models.Conversation, error)

	UpsertConversations(ctx context.Context, conversations []models.Conversation) error
	DeleteConversation(ctx context.Context, id models.ConversationID) error

	// SetMembers replaces the member list of a conversation.
	SetMembers(ctx context.Context, id models.ConversationID, members []models.UserID) error
	AddMembers(ctx context.Context, id models.ConversationID, members []models.UserID) error
	RemoveMembers(ctx context.Context, id models.ConversationID, members []models.UserID) error

	UpdateGroupState(ctx context.Context, groupID models.GroupID, state models.GroupState, epoch uint64) error
	UpdateLastModifiedDate(ctx context.Context, id models.ConversationID, date time.Time) error
	UpdateVerificationStatus(ctx context.Context, id models.ConversationID, status models.VerificationStatus) error
	SetDegradedNotified(ctx context.Context, id models.ConversationID, notified bool) error

	// GroupVerificationData returns the persisted verification state of the
	// conversation backing groupID and the local profiles of its members.
	GroupVerificationData(ctx context.Context, groupID models.GroupID) (models.GroupVerificationData, error)
}

// UserRepository stores the self user and other users.
type UserRepository interface {
	SelfUser(ctx context.Context) (models.SelfUser, error)
	UpsertSelfUser(ctx context.Context, user models.SelfUser) error

	UserByID(ctx context.Context, id models.UserID) (models.OtherUser, error)
	UpsertUsers(ctx context.Context, users []models.OtherUser) error
	MarkUserDeleted(ctx context.Context, id models.UserID) error

	// OtherUserIDs lists every known user except the self user.
	OtherUserIDs(ctx context.Context) ([]models.UserID, error)

	// UsersWithOneOnOneConversation lists users that either have an active
	// one-on-one conversation or are a member of a one-on-one conversation.
	UsersWithOneOnOneConversation(ctx context.Context) ([]models.OtherUser, error)

	UpdateActiveOneOnOneConversation(ctx context.Context, user models.UserID, conversation models.ConversationID) error
}

// MessageRepository stores conversation messages.
type MessageRepository interface {
	// MoveMessagesToConversation re-homes every message of from into to.
	MoveMessagesToConversation(ctx context.Context, from, to models.ConversationID) error
	InsertSystemMessage(ctx context.Context, message models.SystemMessage) error
	SystemMessages(ctx context.Context, conversation models.ConversationID) ([]models.SystemMessage, error)
}

// FeatureConfigRepository stores the last synced team feature flags.
type FeatureConfigRepository interface {
	// FeatureConfig returns models.DefaultFeatureConfig when nothing was
	// synced yet.
	FeatureConfig(ctx context.Context) (models.FeatureConfig, error)
	UpdateFeatureConfig(ctx context.Context, config models.FeatureConfig) error
}
