// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/metrics"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

type groupVerificationStatusChecker struct {
	selfUserID    models.UserID
	mls           *crypto.MLSClientProvider
	epochs        *crypto.EpochBus
	conversations store.ConversationRepository
	messages      store.MessageRepository
	refresher     UserRefresher
	logger        *logger.Logger
}

func NewGroupVerificationStatusChecker(
	selfUserID models.UserID,
	mls *crypto.MLSClientProvider,
	epochs *crypto.EpochBus,
	conversations store.ConversationRepository,
	messages store.MessageRepository,
	refresher UserRefresher,
	logger *logger.Logger,
) GroupVerificationStatusChecker {
	return &groupVerificationStatusChecker{
		selfUserID:    selfUserID,
		mls:           mls,
		epochs:        epochs,
		conversations: conversations,
		messages:      messages,
		refresher:     refresher,
		logger:        logger.WithComponent("verification"),
	}
}

// Run checks every group whose epoch changes until ctx is done. A failed
// check is logged; the next epoch change retries it.
func (c *groupVerificationStatusChecker) Run(ctx context.Context) error {
	changes := c.epochs.Subscribe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if err := c.Check(ctx, change.GroupID); err != nil && ctx.Err() == nil {
				c.logger.Error().Err(err).
					Str("group_id", string(change.GroupID)).
					Uint64("epoch", change.Epoch).
					Msg("verification check failed")
			}
		}
	}
}

// Check recomputes and persists the verification status of groupID.
func (c *groupVerificationStatusChecker) Check(ctx context.Context, groupID models.GroupID) error {
	if c.mls == nil {
		return nil
	}
	client, ok, err := c.mls.Client(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	data, err := c.conversations.GroupVerificationData(ctx, groupID)
	if errors.Is(err, store.ErrNotFound) {
		c.logger.Debug().Str("group_id", string(groupID)).Msg("no local conversation for group")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read group verification data: %w", err)
	}

	raw, err := c.computeStatus(ctx, client, groupID, data)
	if err != nil {
		return err
	}

	next := applyHysteresis(data.VerificationStatus, raw)
	if next == data.VerificationStatus {
		return nil
	}

	if err := c.conversations.UpdateVerificationStatus(ctx, data.ConversationID, next); err != nil {
		return fmt.Errorf("persist verification status: %w", err)
	}
	metrics.VerificationTransitions.WithLabelValues(next.String()).Inc()
	c.logger.Info().
		Str("conversation_id", data.ConversationID.LogString()).
		Str("from", data.VerificationStatus.String()).
		Str("to", next.String()).
		Msg("verification status changed")

	var kind models.SystemMessageKind
	switch next {
	case models.Degraded:
		kind = models.SystemMessageVerificationDegraded
	case models.Verified:
		kind = models.SystemMessageVerified
	default:
		return nil
	}

	if err := c.messages.InsertSystemMessage(ctx, models.SystemMessage{
		ConversationID: data.ConversationID,
		Kind:           kind,
		Sender:         c.selfUserID,
	}); err != nil {
		return fmt.Errorf("insert %s message: %w", kind, err)
	}
	if err := c.conversations.SetDegradedNotified(ctx, data.ConversationID, next != models.Degraded); err != nil {
		return fmt.Errorf("update degraded notified flag: %w", err)
	}
	return nil
}

func (c *groupVerificationStatusChecker) computeStatus(
	ctx context.Context,
	client crypto.MLSClient,
	groupID models.GroupID,
	data models.GroupVerificationData,
) (models.VerificationStatus, error) {
	verified, err := client.IsGroupVerified(ctx, groupID)
	if err != nil {
		return 0, fmt.Errorf("query group verification: %w", err)
	}
	if !verified {
		return models.NotVerified, nil
	}

	members := memberIDs(data)
	identities, err := client.MemberIdentities(ctx, groupID, members)
	if err != nil {
		return 0, fmt.Errorf("query member identities: %w", err)
	}
	identities = onlyMembers(identities, members)

	if len(data.Missing) > 0 {
		if err := c.refresher.RefreshUsers(ctx, data.Missing); err != nil {
			return 0, fmt.Errorf("fetch missing members: %w", err)
		}
		if data, err = c.conversations.GroupVerificationData(ctx, groupID); err != nil {
			return 0, fmt.Errorf("reread group verification data: %w", err)
		}
	}

	if identitiesMatch(identities, data.Members) {
		return models.Verified, nil
	}
	return models.NotVerified, nil
}

// applyHysteresis keeps a conversation that was verified at Degraded
// instead of letting it drop silently to NotVerified.
func applyHysteresis(persisted, raw models.VerificationStatus) models.VerificationStatus {
	if raw == models.NotVerified && (persisted == models.Verified || persisted == models.Degraded) {
		return models.Degraded
	}
	return raw
}

// memberIDs lists the stored members of a group, with or without a local
// profile, in a stable order. The self user is not a stored member.
func memberIDs(data models.GroupVerificationData) []models.UserID {
	ids := make([]models.UserID, 0, len(data.Members)+len(data.Missing))
	for id := range data.Members {
		ids = append(ids, id)
	}
	for _, id := range data.Missing {
		if _, ok := data.Members[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// onlyMembers drops identities of users that were not asked for.
func onlyMembers(identities map[models.UserID][]models.MemberIdentity, members []models.UserID) map[models.UserID][]models.MemberIdentity {
	out := make(map[models.UserID][]models.MemberIdentity, len(members))
	for _, id := range members {
		if devices, ok := identities[id]; ok {
			out[id] = devices
		}
	}
	return out
}

// identitiesMatch requires every member to have at least one identity and
// every identity to be valid and to carry the member's local name and
// handle.
func identitiesMatch(identities map[models.UserID][]models.MemberIdentity, members map[models.UserID]models.MemberProfile) bool {
	if len(identities) == 0 {
		return false
	}
	for user, devices := range identities {
		profile, ok := members[user]
		if !ok || len(devices) == 0 {
			return false
		}
		for _, identity := range devices {
			if !identity.IsValid() || identity.DisplayName != profile.Name || identity.Handle != profile.Handle {
				return false
			}
		}
	}
	for user := range members {
		if _, ok := identities[user]; !ok {
			return false
		}
	}
	return true
}
