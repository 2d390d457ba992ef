package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

type mlsOneOnOneConversationResolver struct {
	conversations store.ConversationRepository
	remote        adapter.ConversationsAdapter
	joiner        MLSConversationJoiner
	logger        *logger.Logger
}

func NewMLSOneOnOneConversationResolver(
	conversations store.ConversationRepository,
	remote adapter.ConversationsAdapter,
	joiner MLSConversationJoiner,
	logger *logger.Logger,
) MLSOneOnOneConversationResolver {
	return &mlsOneOnOneConversationResolver{
		conversations: conversations,
		remote:        remote,
		joiner:        joiner,
		logger:        logger.WithComponent("one_on_one"),
	}
}

// Resolve returns the established MLS one-on-one with user. When none is
// known locally the backend descriptor is fetched and the group joined.
// There is no fallback to Proteus.
func (r *mlsOneOnOneConversationResolver) Resolve(ctx context.Context, user models.UserID) (models.ConversationID, error) {
	known, err := r.conversations.ConversationsForUser(ctx, user)
	if err != nil {
		return models.ConversationID{}, fmt.Errorf("list conversations: %w", err)
	}
	for _, c := range known {
		if c.Type == models.ConversationTypeOneOnOne &&
			c.ProtocolInfo.IsMLS() &&
			c.ProtocolInfo.MLS.GroupState == models.GroupStateEstablished {
			return c.ID, nil
		}
	}

	conversation, err := r.remote.FetchMLSOneOnOne(ctx, user)
	if err != nil {
		return models.ConversationID{}, fmt.Errorf("fetch mls one-on-one: %w", err)
	}
	if !conversation.ProtocolInfo.IsMLS() {
		return models.ConversationID{}, fmt.Errorf("%w: %s", ErrNotMLSConversation, conversation.ID.LogString())
	}

	if err := r.conversations.UpsertConversations(ctx, []models.Conversation{conversation}); err != nil {
		return models.ConversationID{}, fmt.Errorf("store mls one-on-one: %w", err)
	}
	members := conversation.Members
	if len(members) == 0 {
		members = []models.UserID{user}
	}
	if err := r.conversations.SetMembers(ctx, conversation.ID, members); err != nil {
		return models.ConversationID{}, fmt.Errorf("store mls one-on-one members: %w", err)
	}

	if err := r.joiner.Join(ctx, conversation); err != nil {
		return models.ConversationID{}, err
	}

	r.logger.Debug().
		Str("user_id", user.LogString()).
		Str("conversation_id", conversation.ID.LogString()).
		Msg("mls one-on-one established")
	return conversation.ID, nil
}
