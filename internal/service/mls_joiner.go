// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

type mlsConversationJoiner struct {
	coordinator   *crypto.Coordinator
	remote        adapter.ConversationsAdapter
	conversations store.ConversationRepository
	epochs        *crypto.EpochBus
	logger        *logger.Logger
}

// NewMLSConversationJoiner returns a joiner that processes the pending
// welcome message of a group or joins it by external commit, then marks the
// group established and announces its epoch on epochs. epochs may be nil.
func NewMLSConversationJoiner(
	coordinator *crypto.Coordinator,
	remote adapter.ConversationsAdapter,
	conversations store.ConversationRepository,
	epochs *crypto.EpochBus,
	logger *logger.Logger,
) MLSConversationJoiner {
	return &mlsConversationJoiner{
		coordinator:   coordinator,
		remote:        remote,
		conversations: conversations,
		epochs:        epochs,
		logger:        logger,
	}
}

func (j *mlsConversationJoiner) Join(ctx context.Context, conversation models.Conversation) error {
	if !conversation.ProtocolInfo.IsMLS() {
		return fmt.Errorf("%w: %s", ErrNotMLSConversation, conversation.ID.LogString())
	}
	info := *conversation.ProtocolInfo.MLS
	if info.GroupState == models.GroupStateEstablished {
		return nil
	}

	// Fetch before opening the crypto transaction so no network call runs
	// while the backends are locked.
	var (
		payload []byte
		err     error
	)
	if info.GroupState == models.GroupStateEstablishedPending {
		payload, err = j.remote.FetchWelcome(ctx, conversation.ID)
	} else {
		payload, err = j.remote.FetchGroupInfo(ctx, conversation.ID)
	}
	if err != nil {
		return fmt.Errorf("fetch join material: %w", err)
	}

	var epoch uint64
	err = j.coordinator.Transaction(ctx, "join_mls_conversation", func(ctx context.Context, tx crypto.TransactionContext) error {
		mls, ok := tx.MLS()
		if !ok {
			return ErrMLSNotAvailable
		}

		exists, err := mls.ConversationExists(ctx, info.GroupID)
		if err != nil {
			return err
		}
		if !exists {
			if info.GroupState == models.GroupStateEstablishedPending {
				_, err = mls.ProcessWelcomeMessage(ctx, payload)
			} else {
				_, err = mls.JoinByExternalCommit(ctx, payload)
			}
			if err != nil {
				return err
			}
		}

		epoch, err = mls.ConversationEpoch(ctx, info.GroupID)
		return err
	})
	if err != nil {
		return fmt.Errorf("join group %s: %w", info.GroupID, err)
	}

	if err := j.conversations.UpdateGroupState(ctx, info.GroupID, models.GroupStateEstablished, epoch); err != nil {
		return fmt.Errorf("mark group established: %w", err)
	}

	j.logger.Info().
		Str("conversation_id", conversation.ID.LogString()).
		Uint64("epoch", epoch).
		Msg("joined mls conversation")

	if j.epochs != nil {
		if err := j.epochs.Publish(ctx, models.EpochChange{GroupID: info.GroupID, Epoch: epoch}); err != nil {
			return err
		}
	}
	return nil
}
