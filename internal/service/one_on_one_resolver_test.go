// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/metrics"
	"github.com/MKhiriev/go-msg-sync/internal/mock"
	"github.com/MKhiriev/go-msg-sync/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubMigrator records which migration ran for which user.
type stubMigrator struct {
	toMLS, toProteus, existing []models.UserID
	err                        error
}

func (s *stubMigrator) MigrateToProteus(_ context.Context, user models.OtherUser) (models.ConversationID, error) {
	s.toProteus = append(s.toProteus, user.ID)
	return proteusConvA, s.err
}

func (s *stubMigrator) MigrateToMLS(_ context.Context, user models.OtherUser) (models.ConversationID, error) {
	s.toMLS = append(s.toMLS, user.ID)
	return mlsConv, s.err
}

func (s *stubMigrator) MigrateExistingProteus(_ context.Context, user models.OtherUser) (models.ConversationID, error) {
	s.existing = append(s.existing, user.ID)
	return proteusConvB, s.err
}

// countingSelector wraps a selector and counts the calls.
type countingSelector struct {
	ProtocolSelector
	calls int
}

func (s *countingSelector) ProtocolForUser(ctx context.Context, user models.OtherUser) (models.SupportedProtocol, error) {
	s.calls++
	return s.ProtocolSelector.ProtocolForUser(ctx, user)
}

type fixedSelector struct {
	protocol models.SupportedProtocol
	err      error
}

func (s fixedSelector) ProtocolForUser(context.Context, models.OtherUser) (models.SupportedProtocol, error) {
	return s.protocol, s.err
}

var (
	bothProtocols = []models.SupportedProtocol{models.SupportedProtocolProteus, models.SupportedProtocolMLS}
	mlsOnly       = []models.SupportedProtocol{models.SupportedProtocolMLS}
)

// ── bulk resolution ──────────────────────────────────────────────────────────

func TestOneOnOneResolver_ResolveAll_FetchesOnceAndMigratesEveryone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	features := mock.NewMockFeatureConfigRepository(ctrl)
	remote := mock.NewMockUsersAdapter(ctrl)
	ctx := context.Background()

	alice := models.OtherUser{ID: aliceID, SupportedProtocols: bothProtocols}
	bob := models.OtherUser{ID: bobID, SupportedProtocols: mlsOnly}

	// Один пакетный запрос профилей на весь проход.
	users.EXPECT().OtherUserIDs(ctx).Return([]models.UserID{aliceID, bobID}, nil)
	remote.EXPECT().FetchUsers(ctx, []models.UserID{aliceID, bobID}).Return([]models.OtherUser{alice, bob}, nil).Times(1)
	users.EXPECT().UserByID(ctx, gomock.Any()).Return(models.OtherUser{}, nil).AnyTimes()
	users.EXPECT().UpsertUsers(ctx, gomock.Len(2)).Return(nil)

	users.EXPECT().UsersWithOneOnOneConversation(ctx).Return([]models.OtherUser{alice, bob}, nil)
	users.EXPECT().SelfUser(ctx).Return(models.SelfUser{ID: selfID, SupportedProtocols: bothProtocols}, nil).Times(2)
	features.EXPECT().FeatureConfig(ctx).Return(models.FeatureConfig{MLSEnabled: true, SupportedProtocols: bothProtocols}, nil).Times(2)

	selector := &countingSelector{ProtocolSelector: NewProtocolSelector(users, features, logger.Nop())}
	migrator := &stubMigrator{}
	resolver := NewOneOnOneResolver(users, NewUserRefresher(users, remote, logger.Nop()), selector, migrator, logger.Nop())

	require.NoError(t, resolver.ResolveAllOneOnOneConversations(ctx, true))

	assert.Equal(t, 2, selector.calls)
	assert.Equal(t, []models.UserID{aliceID, bobID}, migrator.toMLS)
	assert.Empty(t, migrator.toProteus)
}

func TestOneOnOneResolver_ResolveAll_RefreshFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	remote := mock.NewMockUsersAdapter(ctrl)
	ctx := context.Background()

	users.EXPECT().OtherUserIDs(ctx).Return([]models.UserID{aliceID}, nil)
	remote.EXPECT().FetchUsers(ctx, gomock.Any()).Return(nil, errors.New("backend down"))
	users.EXPECT().UsersWithOneOnOneConversation(ctx).Return([]models.OtherUser{{ID: aliceID}}, nil)

	migrator := &stubMigrator{}
	resolver := NewOneOnOneResolver(users, NewUserRefresher(users, remote, logger.Nop()),
		fixedSelector{protocol: models.SupportedProtocolProteus}, migrator, logger.Nop())

	require.NoError(t, resolver.ResolveAllOneOnOneConversations(ctx, true))
	assert.Equal(t, []models.UserID{aliceID}, migrator.toProteus)
}

func TestOneOnOneResolver_ResolveAll_FirstFailureStopsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	ctx := context.Background()
	users.EXPECT().UsersWithOneOnOneConversation(ctx).Return([]models.OtherUser{{ID: aliceID}, {ID: bobID}}, nil)

	boom := errors.New("move failed")
	migrator := &stubMigrator{err: boom}
	resolver := NewOneOnOneResolver(users, nil, fixedSelector{protocol: models.SupportedProtocolMLS}, migrator, logger.Nop())

	err := resolver.ResolveAllOneOnOneConversations(ctx, false)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []models.UserID{aliceID}, migrator.toMLS)
}

// ── single user ──────────────────────────────────────────────────────────────

func TestOneOnOneResolver_ResolveWithUser(t *testing.T) {
	tests := []struct {
		name         string
		selector     fixedSelector
		want         models.ConversationID
		wantMLS      int
		wantProteus  int
		wantExisting int
		wantErr      error
	}{
		{name: "mls", selector: fixedSelector{protocol: models.SupportedProtocolMLS}, want: mlsConv, wantMLS: 1},
		{name: "proteus", selector: fixedSelector{protocol: models.SupportedProtocolProteus}, want: proteusConvA, wantProteus: 1},
		{name: "other user needs update", selector: fixedSelector{err: ErrOtherUserNeedsUpdate}, want: proteusConvB, wantExisting: 1},
		{name: "self user needs update", selector: fixedSelector{err: ErrSelfUserNeedsUpdate}, wantErr: ErrNoCommonProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock.NewMockUserRepository(ctrl)
			ctx := context.Background()
			users.EXPECT().UserByID(ctx, aliceID).Return(models.OtherUser{ID: aliceID}, nil)

			migrator := &stubMigrator{}
			resolver := NewOneOnOneResolver(users, nil, tt.selector, migrator, logger.Nop())

			id, err := resolver.ResolveOneOnOneConversationWithUser(ctx, aliceID, false)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
			assert.Len(t, migrator.toMLS, tt.wantMLS)
			assert.Len(t, migrator.toProteus, tt.wantProteus)
			assert.Len(t, migrator.existing, tt.wantExisting)
		})
	}
}

func TestOneOnOneResolver_AdoptingExistingProteusIsCounted(t *testing.T) {
	ctx := context.Background()
	counter := func(outcome string) float64 {
		return testutil.ToFloat64(metrics.OneOnOneMigrations.WithLabelValues(existingProteusTarget, outcome))
	}

	tests := []struct {
		name        string
		err         error
		wantOutcome string
	}{
		{"success", nil, metrics.OutcomeSuccess},
		{"failure", errors.New("no proteus conversation"), metrics.OutcomeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock.NewMockUserRepository(ctrl)
			users.EXPECT().UserByID(ctx, aliceID).Return(models.OtherUser{ID: aliceID}, nil)

			migrator := &stubMigrator{err: tt.err}
			resolver := NewOneOnOneResolver(users, nil, fixedSelector{err: ErrOtherUserNeedsUpdate}, migrator, logger.Nop())

			before := counter(tt.wantOutcome)
			_, err := resolver.ResolveOneOnOneConversationWithUser(ctx, aliceID, false)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, before+1, counter(tt.wantOutcome))
			assert.Equal(t, []models.UserID{aliceID}, migrator.existing)
		})
	}
}

func TestOneOnOneResolver_ResolveWithUser_Synchronizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	remote := mock.NewMockUsersAdapter(ctrl)
	ctx := context.Background()

	fetched := models.OtherUser{ID: aliceID, Connection: models.ConnectionAccepted, SupportedProtocols: mlsOnly}
	gomock.InOrder(
		remote.EXPECT().FetchUser(ctx, aliceID).Return(fetched, nil),
		users.EXPECT().UpsertUsers(ctx, []models.OtherUser{fetched}).Return(nil),
		users.EXPECT().UserByID(ctx, aliceID).Return(fetched, nil),
	)

	migrator := &stubMigrator{}
	resolver := NewOneOnOneResolver(users, NewUserRefresher(users, remote, logger.Nop()),
		fixedSelector{protocol: models.SupportedProtocolMLS}, migrator, logger.Nop())

	_, err := resolver.ResolveOneOnOneConversationWithUser(ctx, aliceID, true)
	require.NoError(t, err)
	assert.Equal(t, []models.UserID{aliceID}, migrator.toMLS)
}

// ── ProtocolSelector ─────────────────────────────────────────────────────────

func TestProtocolSelector_ProtocolForUser(t *testing.T) {
	proteusOnly := []models.SupportedProtocol{models.SupportedProtocolProteus}

	tests := []struct {
		name    string
		self    []models.SupportedProtocol
		team    []models.SupportedProtocol
		other   []models.SupportedProtocol
		want    models.SupportedProtocol
		wantErr error
	}{
		{name: "both support mls", self: bothProtocols, team: bothProtocols, other: bothProtocols, want: models.SupportedProtocolMLS},
		{name: "other proteus only", self: bothProtocols, team: bothProtocols, other: proteusOnly, want: models.SupportedProtocolProteus},
		{name: "team forbids mls", self: bothProtocols, team: proteusOnly, other: bothProtocols, want: models.SupportedProtocolProteus},
		{name: "other never announced", self: bothProtocols, team: bothProtocols, other: nil, want: models.SupportedProtocolProteus},
		{name: "self mls only, other proteus", self: mlsOnly, team: bothProtocols, other: proteusOnly, wantErr: ErrOtherUserNeedsUpdate},
		{name: "self proteus only, other mls", self: proteusOnly, team: bothProtocols, other: mlsOnly, wantErr: ErrSelfUserNeedsUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock.NewMockUserRepository(ctrl)
			features := mock.NewMockFeatureConfigRepository(ctrl)
			ctx := context.Background()

			users.EXPECT().SelfUser(ctx).Return(models.SelfUser{ID: selfID, SupportedProtocols: tt.self}, nil)
			features.EXPECT().FeatureConfig(ctx).Return(models.FeatureConfig{SupportedProtocols: tt.team}, nil)

			got, err := NewProtocolSelector(users, features, logger.Nop()).
				ProtocolForUser(ctx, models.OtherUser{ID: aliceID, SupportedProtocols: tt.other})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrNoCommonProtocol)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── UserRefresher ────────────────────────────────────────────────────────────

func TestUserRefresher_KeepsLocalConnectionState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	remote := mock.NewMockUsersAdapter(ctrl)
	ctx := context.Background()

	remote.EXPECT().FetchUsers(ctx, []models.UserID{aliceID}).Return([]models.OtherUser{{ID: aliceID, Name: "Alice"}}, nil)
	users.EXPECT().UserByID(ctx, aliceID).Return(models.OtherUser{ID: aliceID, Connection: models.ConnectionAccepted}, nil)
	users.EXPECT().UpsertUsers(ctx, []models.OtherUser{{ID: aliceID, Name: "Alice", Connection: models.ConnectionAccepted}}).Return(nil)

	require.NoError(t, NewUserRefresher(users, remote, logger.Nop()).RefreshUsers(ctx, []models.UserID{aliceID}))
}

func TestUserRefresher_EmptyIDsDoNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	remote := mock.NewMockUsersAdapter(ctrl)

	require.NoError(t, NewUserRefresher(users, remote, logger.Nop()).RefreshUsers(context.Background(), nil))
}
