// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the messaging backend.
//
// The REST side ([NewHTTPBackendAdapter]) covers notifications, users,
// conversations and feature configs. The live event stream is a websocket
// ([NewWebSocketEventStream]). [EventSource] joins both into the remote half
// of the store's event repository.
//
// HTTP status codes are mapped by mapHTTPError to the sentinel errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrEventNotFound] when the backend no longer knows the event cursor).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-msg-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotificationsAdapter reads the persisted notification backlog.
type NotificationsAdapter interface {
	// MostRecentEventID returns the id of the newest notification of this
	// client.
	MostRecentEventID(ctx context.Context) (models.EventID, error)

	// PendingEvents returns every notification after since, oldest first.
	// An empty since means from the beginning. Returns [ErrEventNotFound]
	// when since is unknown to the backend.
	PendingEvents(ctx context.Context, since models.EventID) ([]models.Event, error)
}

// LiveEventStream delivers notifications as they happen.
type LiveEventStream interface {
	// LiveEvents connects and returns a channel that yields LiveEventOpen,
	// then received events, then exactly one LiveEventClosed before it is
	// closed.
	LiveEvents(ctx context.Context) (<-chan models.LiveEvent, error)
}

// UsersAdapter reads and updates user profiles.
type UsersAdapter interface {
	FetchSelf(ctx context.Context) (models.SelfUser, error)
	FetchUser(ctx context.Context, id models.UserID) (models.OtherUser, error)

	// FetchUsers fetches many users in one request. Unknown ids are
	// omitted from the result.
	FetchUsers(ctx context.Context, ids []models.UserID) ([]models.OtherUser, error)

	UpdateSupportedProtocols(ctx context.Context, protocols []models.SupportedProtocol) error
	FetchConnections(ctx context.Context) ([]models.Connection, error)
}

// TeamsAdapter reads team level data of the self user.
type TeamsAdapter interface {
	FetchTeam(ctx context.Context, id models.TeamID) (models.Team, error)
	FetchLegalHoldStatus(ctx context.Context, team models.TeamID, user models.UserID) (string, error)
	FetchFeatureConfig(ctx context.Context) (models.FeatureConfig, error)
}

// ConversationsAdapter reads and creates conversations.
type ConversationsAdapter interface {
	// FetchConversations lists every conversation the self user is a
	// member of, with Members set.
	FetchConversations(ctx context.Context) ([]models.Conversation, error)

	// FetchMLSOneOnOne returns the canonical MLS one-on-one conversation
	// with user, provisioning it on the backend if needed.
	FetchMLSOneOnOne(ctx context.Context, user models.UserID) (models.Conversation, error)

	// CreateGroupConversation creates a conversation containing members.
	CreateGroupConversation(ctx context.Context, members []models.UserID, opts models.ConversationOptions) (models.Conversation, error)

	// FetchGroupInfo returns the MLS group info used for an external
	// commit into the group of conversation.
	FetchGroupInfo(ctx context.Context, conversation models.ConversationID) ([]byte, error)

	// FetchWelcome returns a pending welcome message for the group of
	// conversation, or [ErrNotFound].
	FetchWelcome(ctx context.Context, conversation models.ConversationID) ([]byte, error)
}

// BackendAdapter is everything the REST client implements.
type BackendAdapter interface {
	NotificationsAdapter
	UsersAdapter
	TeamsAdapter
	ConversationsAdapter

	SetToken(token string)
	Token() string
}
