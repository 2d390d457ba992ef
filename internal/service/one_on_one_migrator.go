// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

type oneOnOneMigrator struct {
	selfUserID    models.UserID
	mlsResolver   MLSOneOnOneConversationResolver
	conversations store.ConversationRepository
	users         store.UserRepository
	messages      store.MessageRepository
	remote        adapter.ConversationsAdapter
	now           func() time.Time
	logger        *logger.Logger
}

func NewOneOnOneMigrator(
	selfUserID models.UserID,
	mlsResolver MLSOneOnOneConversationResolver,
	conversations store.ConversationRepository,
	users store.UserRepository,
	messages store.MessageRepository,
	remote adapter.ConversationsAdapter,
	logger *logger.Logger,
) OneOnOneMigrator {
	return &oneOnOneMigrator{
		selfUserID:    selfUserID,
		mlsResolver:   mlsResolver,
		conversations: conversations,
		users:         users,
		messages:      messages,
		remote:        remote,
		now:           time.Now,
		logger:        logger.WithComponent("one_on_one"),
	}
}

// MigrateToProteus trusts an already set active conversation and does not
// check its protocol. Otherwise the first Proteus one-on-one is adopted, or
// a new conversation with user is created.
func (m *oneOnOneMigrator) MigrateToProteus(ctx context.Context, user models.OtherUser) (models.ConversationID, error) {
	if user.ActiveOneOnOneConversationID != nil {
		return *user.ActiveOneOnOneConversationID, nil
	}

	existing, err := m.conversations.OneOnOneConversationsWithUser(ctx, user.ID, models.ProtocolProteus)
	if err != nil {
		return models.ConversationID{}, fmt.Errorf("list proteus one-on-ones: %w", err)
	}

	var target models.ConversationID
	if len(existing) > 0 {
		target = existing[0]
	} else {
		created, err := m.remote.CreateGroupConversation(ctx, []models.UserID{user.ID}, models.DefaultConversationOptions())
		if err != nil {
			return models.ConversationID{}, fmt.Errorf("create conversation: %w", err)
		}
		if err := m.conversations.UpsertConversations(ctx, []models.Conversation{created}); err != nil {
			return models.ConversationID{}, fmt.Errorf("store created conversation: %w", err)
		}
		if err := m.conversations.SetMembers(ctx, created.ID, []models.UserID{user.ID}); err != nil {
			return models.ConversationID{}, fmt.Errorf("store created conversation members: %w", err)
		}
		target = created.ID
	}

	if err := m.users.UpdateActiveOneOnOneConversation(ctx, user.ID, target); err != nil {
		return models.ConversationID{}, fmt.Errorf("update active one-on-one: %w", err)
	}
	m.logger.Info().
		Str("user_id", user.ID.LogString()).
		Str("conversation_id", target.LogString()).
		Msg("one-on-one uses proteus")
	return target, nil
}

// MigrateToMLS points user at the MLS one-on-one. History of every other
// one-on-one with user is moved there first; the pointer is only touched
// once all history is in place.
func (m *oneOnOneMigrator) MigrateToMLS(ctx context.Context, user models.OtherUser) (models.ConversationID, error) {
	target, err := m.mlsResolver.Resolve(ctx, user.ID)
	if err != nil {
		return models.ConversationID{}, &MigrationError{Stage: MigrationStageResolve, User: user.ID, Err: err}
	}

	active := user.ActiveOneOnOneConversationID
	if active != nil && *active == target {
		return target, nil
	}

	sources, err := m.conversations.OneOnOneConversationsWithUser(ctx, user.ID, models.ProtocolProteus)
	if err != nil {
		return models.ConversationID{}, &MigrationError{Stage: MigrationStageMoveMessages, User: user.ID, Err: err}
	}
	if active != nil && !containsID(sources, *active) {
		sources = append(sources, *active)
	}

	var lastModified time.Time
	for _, source := range sources {
		if source == target {
			continue
		}

		conversation, err := m.conversations.ConversationByID(ctx, source)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return models.ConversationID{}, &MigrationError{Stage: MigrationStageMoveMessages, User: user.ID, Err: err}
		case conversation.LastModifiedDate != nil && conversation.LastModifiedDate.After(lastModified):
			lastModified = *conversation.LastModifiedDate
		}

		if err := m.messages.MoveMessagesToConversation(ctx, source, target); err != nil {
			return models.ConversationID{}, &MigrationError{Stage: MigrationStageMoveMessages, User: user.ID, Err: err}
		}
	}

	if lastModified.IsZero() {
		lastModified = m.now().UTC()
	}
	if err := m.conversations.UpdateLastModifiedDate(ctx, target, lastModified); err != nil {
		return models.ConversationID{}, &MigrationError{Stage: MigrationStageMoveMessages, User: user.ID, Err: err}
	}

	if err := m.users.UpdateActiveOneOnOneConversation(ctx, user.ID, target); err != nil {
		return models.ConversationID{}, &MigrationError{Stage: MigrationStageUpdatePointer, User: user.ID, Err: err}
	}

	for _, msg := range []models.SystemMessage{
		{ConversationID: target, Kind: models.SystemMessageProtocolChanged, Protocol: models.ProtocolMLS, Sender: m.selfUserID},
		{ConversationID: target, Kind: models.SystemMessageStartedUnverified, Sender: m.selfUserID},
	} {
		if err := m.messages.InsertSystemMessage(ctx, msg); err != nil {
			return models.ConversationID{}, fmt.Errorf("insert %s message: %w", msg.Kind, err)
		}
	}

	m.logger.Info().
		Str("user_id", user.ID.LogString()).
		Str("conversation_id", target.LogString()).
		Int("moved_from", len(sources)).
		Msg("one-on-one migrated to mls")
	return target, nil
}

func (m *oneOnOneMigrator) MigrateExistingProteus(ctx context.Context, user models.OtherUser) (models.ConversationID, error) {
	if user.ActiveOneOnOneConversationID != nil {
		return *user.ActiveOneOnOneConversationID, nil
	}

	existing, err := m.conversations.OneOnOneConversationsWithUser(ctx, user.ID, models.ProtocolProteus)
	if err != nil {
		return models.ConversationID{}, fmt.Errorf("list proteus one-on-ones: %w", err)
	}
	if len(existing) == 0 {
		return models.ConversationID{}, fmt.Errorf("%w with %s", ErrNoProteusOneOnOne, user.ID.LogString())
	}

	if err := m.users.UpdateActiveOneOnOneConversation(ctx, user.ID, existing[0]); err != nil {
		return models.ConversationID{}, fmt.Errorf("update active one-on-one: %w", err)
	}
	return existing[0], nil
}

func containsID(ids []models.QualifiedID, id models.QualifiedID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
