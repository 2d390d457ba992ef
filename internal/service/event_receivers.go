// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

// Event types handled by the receivers.
const (
	EventConversationDelete      = "conversation.delete"
	EventConversationMemberJoin  = "conversation.member-join"
	EventConversationMemberLeave = "conversation.member-leave"
	EventConversationMLSWelcome  = "conversation.mls-welcome"

	EventUserUpdate          = "user.update"
	EventUserDelete          = "user.delete"
	EventUserClientRemove    = "user.client-remove"
	EventUserConnection      = "user.connection"
	EventUserProtocolsUpdate = "user.supported-protocols-update"
	EventTeamUpdate          = "team.update"
	EventTeamMemberLeave     = "team.member-leave"
	EventFeatureConfigUpdate = "feature-config.update"
)

type conversationEventPayload struct {
	Conversation models.ConversationID `json:"conversation"`
	Users        []models.UserID       `json:"users,omitempty"`
}

type userEventPayload struct {
	User   models.UserID   `json:"user"`
	Client models.ClientID `json:"client,omitempty"`
	Status string          `json:"status,omitempty"`
}

type teamEventPayload struct {
	Team models.Team   `json:"team"`
	User models.UserID `json:"user"`
}

func decodePayload(event models.Event, v any) error {
	if len(event.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(event.Payload, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedEvent, event.Type, err)
	}
	return nil
}

// ── conversation ─────────────────────────────────────────────────────────────

type conversationEventReceiver struct {
	conversations store.ConversationRepository
	joiner        MLSConversationJoiner
	epochs        *crypto.EpochBus
	logger        *logger.Logger
}

func NewConversationEventReceiver(conversations store.ConversationRepository, joiner MLSConversationJoiner, epochs *crypto.EpochBus, logger *logger.Logger) EventReceiver {
	return &conversationEventReceiver{conversations: conversations, joiner: joiner, epochs: epochs, logger: logger}
}

func (r *conversationEventReceiver) OnEvent(ctx context.Context, event models.Event) error {
	var payload conversationEventPayload
	if err := decodePayload(event, &payload); err != nil {
		return err
	}

	switch event.Type {
	case EventConversationDelete:
		return r.conversations.DeleteConversation(ctx, payload.Conversation)
	case EventConversationMemberJoin:
		if err := r.conversations.AddMembers(ctx, payload.Conversation, payload.Users); err != nil {
			return err
		}
		return r.membershipChanged(ctx, payload.Conversation)
	case EventConversationMemberLeave:
		if err := r.conversations.RemoveMembers(ctx, payload.Conversation, payload.Users); err != nil {
			return err
		}
		return r.membershipChanged(ctx, payload.Conversation)
	case EventConversationMLSWelcome:
		return r.welcome(ctx, payload.Conversation)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEventType, event.Type)
	}
}

func (r *conversationEventReceiver) welcome(ctx context.Context, id models.ConversationID) error {
	conversation, err := r.conversations.ConversationByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		r.logger.Warn().Str("conversation_id", id.LogString()).Msg("welcome for unknown conversation")
		return nil
	}
	if err != nil {
		return err
	}
	if !conversation.ProtocolInfo.IsMLS() {
		return fmt.Errorf("%w: %s", ErrNotMLSConversation, id.LogString())
	}

	conversation.ProtocolInfo.MLS.GroupState = models.GroupStateEstablishedPending
	return r.joiner.Join(ctx, conversation)
}

// membershipChanged asks for a verification re-check of MLS groups.
func (r *conversationEventReceiver) membershipChanged(ctx context.Context, id models.ConversationID) error {
	if r.epochs == nil {
		return nil
	}
	conversation, err := r.conversations.ConversationByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !conversation.ProtocolInfo.IsMLS() {
		return nil
	}
	return r.epochs.Publish(ctx, models.EpochChange{
		GroupID: conversation.ProtocolInfo.MLS.GroupID,
		Epoch:   conversation.ProtocolInfo.MLS.Epoch,
	})
}

// ── user ─────────────────────────────────────────────────────────────────────

type userEventReceiver struct {
	selfUserID models.UserID
	clientID   func() models.ClientID
	users      store.UserRepository
	refresher  UserRefresher
	oneOnOne   OneOnOneResolver
	logger     *logger.Logger
}

func NewUserEventReceiver(
	selfUserID models.UserID,
	clientID func() models.ClientID,
	users store.UserRepository,
	refresher UserRefresher,
	oneOnOne OneOnOneResolver,
	logger *logger.Logger,
) EventReceiver {
	return &userEventReceiver{
		selfUserID: selfUserID,
		clientID:   clientID,
		users:      users,
		refresher:  refresher,
		oneOnOne:   oneOnOne,
		logger:     logger,
	}
}

func (r *userEventReceiver) OnEvent(ctx context.Context, event models.Event) error {
	var payload userEventPayload
	if err := decodePayload(event, &payload); err != nil {
		return err
	}

	switch event.Type {
	case EventUserUpdate:
		return r.refresher.RefreshUser(ctx, payload.User)
	case EventUserDelete:
		if payload.User == r.selfUserID {
			return ErrSelfUserDeleted
		}
		err := r.users.MarkUserDeleted(ctx, payload.User)
		if errors.Is(err, store.ErrNothingUpdated) {
			return nil
		}
		return err
	case EventUserClientRemove:
		if payload.Client != "" && payload.Client == r.clientID() {
			return ErrClientRemoved
		}
		return nil
	case EventUserConnection:
		return r.connection(ctx, payload)
	case EventUserProtocolsUpdate:
		if err := r.refresher.RefreshUser(ctx, payload.User); err != nil {
			return err
		}
		_, err := r.oneOnOne.ResolveOneOnOneConversationWithUser(ctx, payload.User, false)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEventType, event.Type)
	}
}

func (r *userEventReceiver) connection(ctx context.Context, payload userEventPayload) error {
	if err := r.refresher.RefreshUser(ctx, payload.User); err != nil {
		return err
	}
	user, err := r.users.UserByID(ctx, payload.User)
	if err != nil {
		return err
	}
	user.Connection = models.ParseConnectionState(payload.Status)
	if err := r.users.UpsertUsers(ctx, []models.OtherUser{user}); err != nil {
		return err
	}

	if user.Connection != models.ConnectionAccepted {
		return nil
	}
	_, err = r.oneOnOne.ResolveOneOnOneConversationWithUser(ctx, payload.User, false)
	return err
}

// ── team ─────────────────────────────────────────────────────────────────────

type teamEventReceiver struct {
	users    store.UserRepository
	metadata store.MetadataRepository
}

func NewTeamEventReceiver(users store.UserRepository, metadata store.MetadataRepository) EventReceiver {
	return &teamEventReceiver{users: users, metadata: metadata}
}

func (r *teamEventReceiver) OnEvent(ctx context.Context, event models.Event) error {
	var payload teamEventPayload
	if err := decodePayload(event, &payload); err != nil {
		return err
	}

	switch event.Type {
	case EventTeamUpdate:
		raw, err := json.Marshal(payload.Team)
		if err != nil {
			return err
		}
		return r.metadata.SetValue(ctx, MetadataKeySelfTeam, string(raw))
	case EventTeamMemberLeave:
		err := r.users.MarkUserDeleted(ctx, payload.User)
		if errors.Is(err, store.ErrNothingUpdated) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEventType, event.Type)
	}
}

// ── feature config ───────────────────────────────────────────────────────────

type featureConfigEventReceiver struct {
	features store.FeatureConfigRepository
}

func NewFeatureConfigEventReceiver(features store.FeatureConfigRepository) EventReceiver {
	return &featureConfigEventReceiver{features: features}
}

func (r *featureConfigEventReceiver) OnEvent(ctx context.Context, event models.Event) error {
	if event.Type != EventFeatureConfigUpdate {
		return fmt.Errorf("%w: %s", ErrUnknownEventType, event.Type)
	}
	var cfg models.FeatureConfig
	if err := decodePayload(event, &cfg); err != nil {
		return err
	}
	return r.features.UpdateFeatureConfig(ctx, cfg)
}
