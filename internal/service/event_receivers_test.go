// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/mock"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func eventWith(t *testing.T, eventType string, payload any) models.Event {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return models.Event{
		ID:       "evt",
		Type:     eventType,
		Category: models.EventCategoryFromType(eventType),
		Payload:  raw,
	}
}

type stubJoiner struct {
	joined []models.Conversation
	err    error
}

func (j *stubJoiner) Join(_ context.Context, c models.Conversation) error {
	j.joined = append(j.joined, c)
	return j.err
}

// recordingOneOnOne запоминает, для кого запрашивалось разрешение 1:1.
type recordingOneOnOne struct {
	resolved []models.UserID
	err      error
}

func (r *recordingOneOnOne) ResolveOneOnOneConversationWithUser(_ context.Context, user models.UserID, _ bool) (models.ConversationID, error) {
	r.resolved = append(r.resolved, user)
	return models.ConversationID{}, r.err
}

func (r *recordingOneOnOne) ResolveAllOneOnOneConversations(context.Context, bool) error { return nil }

// ── conversation ─────────────────────────────────────────────────────────────

func TestConversationEventReceiver_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conversations := mock.NewMockConversationRepository(ctrl)
	conversations.EXPECT().DeleteConversation(gomock.Any(), proteusConvA).Return(nil)

	r := NewConversationEventReceiver(conversations, &stubJoiner{}, nil, logger.Nop())
	require.NoError(t, r.OnEvent(context.Background(), eventWith(t, EventConversationDelete, conversationEventPayload{Conversation: proteusConvA})))
}

func TestConversationEventReceiver_MemberJoinPublishesEpochForMLS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conversations := mock.NewMockConversationRepository(ctrl)
	bus := crypto.NewEpochBus(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := bus.Subscribe(ctx)

	gomock.InOrder(
		conversations.EXPECT().AddMembers(gomock.Any(), mlsConv, []models.UserID{aliceID}).Return(nil),
		conversations.EXPECT().ConversationByID(gomock.Any(), mlsConv).Return(models.Conversation{
			ID:           mlsConv,
			ProtocolInfo: models.MLSProtocolInfo(testGroup, models.GroupStateEstablished, 4),
		}, nil),
	)

	r := NewConversationEventReceiver(conversations, &stubJoiner{}, bus, logger.Nop())
	require.NoError(t, r.OnEvent(ctx, eventWith(t, EventConversationMemberJoin, conversationEventPayload{
		Conversation: mlsConv,
		Users:        []models.UserID{aliceID},
	})))

	select {
	case change := <-changes:
		assert.Equal(t, models.EpochChange{GroupID: testGroup, Epoch: 4}, change)
	case <-time.After(waitFor):
		t.Fatal("no epoch change published")
	}
}

func TestConversationEventReceiver_MemberLeaveOnProteusPublishesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conversations := mock.NewMockConversationRepository(ctrl)
	bus := crypto.NewEpochBus(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := bus.Subscribe(ctx)

	conversations.EXPECT().RemoveMembers(gomock.Any(), proteusConvA, []models.UserID{bobID}).Return(nil)
	conversations.EXPECT().ConversationByID(gomock.Any(), proteusConvA).Return(models.Conversation{
		ID:           proteusConvA,
		ProtocolInfo: models.ProteusProtocolInfo(),
	}, nil)

	r := NewConversationEventReceiver(conversations, &stubJoiner{}, bus, logger.Nop())
	require.NoError(t, r.OnEvent(ctx, eventWith(t, EventConversationMemberLeave, conversationEventPayload{
		Conversation: proteusConvA,
		Users:        []models.UserID{bobID},
	})))
	assert.Empty(t, changes)
}

func TestConversationEventReceiver_Welcome(t *testing.T) {
	tests := []struct {
		name       string
		stored     models.Conversation
		storeErr   error
		wantErr    error
		wantJoined bool
	}{
		{
			name:       "mls conversation is joined",
			stored:     models.Conversation{ID: mlsConv, ProtocolInfo: models.MLSProtocolInfo(testGroup, models.GroupStatePending, 0)},
			wantJoined: true,
		},
		{
			name:     "unknown conversation is ignored",
			storeErr: store.ErrNotFound,
		},
		{
			name:    "proteus conversation is rejected",
			stored:  models.Conversation{ID: mlsConv, ProtocolInfo: models.ProteusProtocolInfo()},
			wantErr: ErrNotMLSConversation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			conversations := mock.NewMockConversationRepository(ctrl)
			conversations.EXPECT().ConversationByID(gomock.Any(), mlsConv).Return(tt.stored, tt.storeErr)

			joiner := &stubJoiner{}
			r := NewConversationEventReceiver(conversations, joiner, nil, logger.Nop())
			err := r.OnEvent(context.Background(), eventWith(t, EventConversationMLSWelcome, conversationEventPayload{Conversation: mlsConv}))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if !tt.wantJoined {
				assert.Empty(t, joiner.joined)
				return
			}
			require.Len(t, joiner.joined, 1)
			assert.Equal(t, models.GroupStateEstablishedPending, joiner.joined[0].ProtocolInfo.MLS.GroupState)
		})
	}
}

func TestConversationEventReceiver_MalformedAndUnknown(t *testing.T) {
	r := NewConversationEventReceiver(nil, nil, nil, logger.Nop())

	malformed := models.Event{ID: "evt", Type: EventConversationDelete, Payload: json.RawMessage(`{"conversation":`)}
	assert.ErrorIs(t, r.OnEvent(context.Background(), malformed), ErrMalformedEvent)

	unknown := models.Event{ID: "evt", Type: "conversation.typing"}
	assert.ErrorIs(t, r.OnEvent(context.Background(), unknown), ErrUnknownEventType)
}

// ── user ─────────────────────────────────────────────────────────────────────

func newTestUserReceiver(users store.UserRepository, refresher UserRefresher, oneOnOne OneOnOneResolver) EventReceiver {
	return NewUserEventReceiver(selfID, func() models.ClientID { return "this-device" }, users, refresher, oneOnOne, logger.Nop())
}

func TestUserEventReceiver_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	r := newTestUserReceiver(users, &stubRefresher{}, &recordingOneOnOne{})
	ctx := context.Background()

	// Удаление себя — фатально для сессии.
	err := r.OnEvent(ctx, eventWith(t, EventUserDelete, userEventPayload{User: selfID}))
	assert.ErrorIs(t, err, ErrSelfUserDeleted)

	users.EXPECT().MarkUserDeleted(ctx, aliceID).Return(nil)
	require.NoError(t, r.OnEvent(ctx, eventWith(t, EventUserDelete, userEventPayload{User: aliceID})))

	users.EXPECT().MarkUserDeleted(ctx, bobID).Return(store.ErrNothingUpdated)
	require.NoError(t, r.OnEvent(ctx, eventWith(t, EventUserDelete, userEventPayload{User: bobID})))
}

func TestUserEventReceiver_ClientRemove(t *testing.T) {
	r := newTestUserReceiver(nil, &stubRefresher{}, &recordingOneOnOne{})
	ctx := context.Background()

	err := r.OnEvent(ctx, eventWith(t, EventUserClientRemove, userEventPayload{User: selfID, Client: "this-device"}))
	assert.ErrorIs(t, err, ErrClientRemoved)

	require.NoError(t, r.OnEvent(ctx, eventWith(t, EventUserClientRemove, userEventPayload{User: selfID, Client: "other-device"})))
}

func TestUserEventReceiver_UpdateRefreshesUser(t *testing.T) {
	refresher := &stubRefresher{}
	r := newTestUserReceiver(nil, refresher, &recordingOneOnOne{})

	require.NoError(t, r.OnEvent(context.Background(), eventWith(t, EventUserUpdate, userEventPayload{User: aliceID})))
	assert.Equal(t, []models.UserID{aliceID}, refresher.refreshed)
}

func TestUserEventReceiver_Connection(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		want         models.ConnectionState
		wantResolved bool
	}{
		{"accepted resolves one-on-one", "accepted", models.ConnectionAccepted, true},
		{"pending only stores state", "pending", models.ConnectionPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock.NewMockUserRepository(ctrl)
			ctx := context.Background()
			users.EXPECT().UserByID(ctx, aliceID).Return(models.OtherUser{ID: aliceID, Name: "Alice"}, nil)
			users.EXPECT().UpsertUsers(ctx, []models.OtherUser{{ID: aliceID, Name: "Alice", Connection: tt.want}}).Return(nil)

			refresher := &stubRefresher{}
			oneOnOne := &recordingOneOnOne{}
			r := newTestUserReceiver(users, refresher, oneOnOne)

			require.NoError(t, r.OnEvent(ctx, eventWith(t, EventUserConnection, userEventPayload{User: aliceID, Status: tt.status})))
			assert.Equal(t, []models.UserID{aliceID}, refresher.refreshed)
			if tt.wantResolved {
				assert.Equal(t, []models.UserID{aliceID}, oneOnOne.resolved)
			} else {
				assert.Empty(t, oneOnOne.resolved)
			}
		})
	}
}

func TestUserEventReceiver_ProtocolsUpdate(t *testing.T) {
	refresher := &stubRefresher{}
	oneOnOne := &recordingOneOnOne{}
	r := newTestUserReceiver(nil, refresher, oneOnOne)

	require.NoError(t, r.OnEvent(context.Background(), eventWith(t, EventUserProtocolsUpdate, userEventPayload{User: bobID})))
	assert.Equal(t, []models.UserID{bobID}, refresher.refreshed)
	assert.Equal(t, []models.UserID{bobID}, oneOnOne.resolved)

	// Ошибка обновления профиля не доходит до резолвера.
	refresher.err = errors.New("backend down")
	require.Error(t, r.OnEvent(context.Background(), eventWith(t, EventUserProtocolsUpdate, userEventPayload{User: aliceID})))
	assert.Equal(t, []models.UserID{bobID}, oneOnOne.resolved)
}

// ── team / feature config ────────────────────────────────────────────────────

func TestTeamEventReceiver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	metadata := newMemMetadata()
	r := NewTeamEventReceiver(users, metadata)
	ctx := context.Background()

	team := models.Team{ID: "team-1", Name: "Acme"}
	require.NoError(t, r.OnEvent(ctx, eventWith(t, EventTeamUpdate, teamEventPayload{Team: team})))

	raw, err := metadata.Value(ctx, MetadataKeySelfTeam)
	require.NoError(t, err)
	var stored models.Team
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, team, stored)

	users.EXPECT().MarkUserDeleted(ctx, aliceID).Return(store.ErrNothingUpdated)
	require.NoError(t, r.OnEvent(ctx, eventWith(t, EventTeamMemberLeave, teamEventPayload{User: aliceID})))
}

func TestFeatureConfigEventReceiver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	features := mock.NewMockFeatureConfigRepository(ctrl)
	ctx := context.Background()
	features.EXPECT().UpdateFeatureConfig(ctx, models.FeatureConfig{MLSEnabled: true, MLSMigrationEnabled: true}).Return(nil)

	r := NewFeatureConfigEventReceiver(features)
	event := models.Event{
		ID:      "evt",
		Type:    EventFeatureConfigUpdate,
		Payload: json.RawMessage(`{"mls_enabled":true,"mls_migration_enabled":true}`),
	}
	require.NoError(t, r.OnEvent(ctx, event))

	assert.ErrorIs(t, r.OnEvent(ctx, models.Event{Type: "feature-config.delete"}), ErrUnknownEventType)
}
