package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

// Metadata keys owned by the slow sync steps.
const (
	MetadataKeySelfTeam        = "self_team"
	MetadataKeyLegalHoldStatus = "legal_hold_status"
)

// SlowSyncStepDeps are the collaborators of the built-in slow sync steps.
type SlowSyncStepDeps struct {
	Backend       adapter.BackendAdapter
	Users         store.UserRepository
	Conversations store.ConversationRepository
	FeatureConfig store.FeatureConfigRepository
	Metadata      store.MetadataRepository
	MLS           *crypto.MLSClientProvider
	Joiner        MLSConversationJoiner
	Refresher     UserRefresher
}

type slowSyncSteps struct {
	SlowSyncStepDeps
	logger *logger.Logger
}

// NewSlowSyncUseCases wires the built-in step implementations.
func NewSlowSyncUseCases(deps SlowSyncStepDeps, logger *logger.Logger) SlowSyncUseCases {
	s := &slowSyncSteps{SlowSyncStepDeps: deps, logger: logger.WithComponent("slow_sync")}
	return SlowSyncUseCases{
		SyncSelfUser:             UseCaseFunc(s.syncSelfUser),
		SyncFeatureConfigs:       UseCaseFunc(s.syncFeatureConfigs),
		UpdateSupportedProtocols: UseCaseFunc(s.updateSupportedProtocols),
		SyncConversations:        UseCaseFunc(s.syncConversations),
		SyncConnections:          UseCaseFunc(s.syncConnections),
		SyncSelfTeam:             UseCaseFunc(s.syncSelfTeam),
		SyncLegalHold:            UseCaseFunc(s.syncLegalHold),
		SyncContacts:             UseCaseFunc(s.syncContacts),
		JoinMLSConversations:     UseCaseFunc(s.joinMLSConversations),
	}
}

func (s *slowSyncSteps) syncSelfUser(ctx context.Context) error {
	self, err := s.Backend.FetchSelf(ctx)
	if errors.Is(err, adapter.ErrNotFound) {
		return ErrSelfUserDeleted
	}
	if err != nil {
		return fmt.Errorf("fetch self user: %w", err)
	}
	return s.Users.UpsertSelfUser(ctx, self)
}

func (s *slowSyncSteps) syncFeatureConfigs(ctx context.Context) error {
	cfg, err := s.Backend.FetchFeatureConfig(ctx)
	if err != nil {
		return fmt.Errorf("fetch feature config: %w", err)
	}
	return s.FeatureConfig.UpdateFeatureConfig(ctx, cfg)
}

// updateSupportedProtocols announces what this client can talk. Proteus
// stays supported while the team allows it or has not finished migrating;
// MLS needs the team switch, team support and a local MLS backend.
func (s *slowSyncSteps) updateSupportedProtocols(ctx context.Context) error {
	self, err := s.Users.SelfUser(ctx)
	if err != nil {
		return fmt.Errorf("read self user: %w", err)
	}
	cfg, err := s.FeatureConfig.FeatureConfig(ctx)
	if err != nil {
		return fmt.Errorf("read feature config: %w", err)
	}

	hasMLS := false
	if s.MLS != nil {
		_, ok, err := s.MLS.Client(ctx)
		if err != nil {
			return err
		}
		hasMLS = ok
	}

	supported := SupportedProtocolsFor(cfg, hasMLS)
	if sameProtocols(supported, self.SupportedProtocols) {
		return nil
	}

	if err := s.Backend.UpdateSupportedProtocols(ctx, supported); err != nil {
		return fmt.Errorf("announce supported protocols: %w", err)
	}
	self.SupportedProtocols = supported
	if err := s.Users.UpsertSelfUser(ctx, self); err != nil {
		return fmt.Errorf("store supported protocols: %w", err)
	}
	s.logger.Info().Int("protocols", len(supported)).Msg("supported protocols updated")
	return nil
}

// SupportedProtocolsFor derives the protocols of the self client from the
// team feature config.
func SupportedProtocolsFor(cfg models.FeatureConfig, hasMLS bool) []models.SupportedProtocol {
	var out []models.SupportedProtocol
	if models.ContainsProtocol(cfg.SupportedProtocols, models.SupportedProtocolProteus) || cfg.MLSMigrationEnabled {
		out = append(out, models.SupportedProtocolProteus)
	}
	if hasMLS && cfg.MLSEnabled && models.ContainsProtocol(cfg.SupportedProtocols, models.SupportedProtocolMLS) {
		out = append(out, models.SupportedProtocolMLS)
	}
	if len(out) == 0 {
		out = append(out, models.SupportedProtocolProteus)
	}
	return out
}

func sameProtocols(a, b []models.SupportedProtocol) bool {
	if len(a) != len(b) {
		return false
	}
	for _, p := range a {
		if !models.ContainsProtocol(b, p) {
			return false
		}
	}
	return true
}

func (s *slowSyncSteps) syncConversations(ctx context.Context) error {
	conversations, err := s.Backend.FetchConversations(ctx)
	if err != nil {
		return fmt.Errorf("fetch conversations: %w", err)
	}
	if err := s.Conversations.UpsertConversations(ctx, conversations); err != nil {
		return fmt.Errorf("store conversations: %w", err)
	}
	for _, c := range conversations {
		if err := s.Conversations.SetMembers(ctx, c.ID, c.Members); err != nil {
			return fmt.Errorf("store members of %s: %w", c.ID.LogString(), err)
		}
	}
	s.logger.Info().Int("conversations", len(conversations)).Msg("conversations synced")
	return nil
}

func (s *slowSyncSteps) syncConnections(ctx context.Context) error {
	connections, err := s.Backend.FetchConnections(ctx)
	if err != nil {
		return fmt.Errorf("fetch connections: %w", err)
	}
	if len(connections) == 0 {
		return nil
	}

	states := make(map[models.UserID]models.ConnectionState, len(connections))
	ids := make([]models.UserID, 0, len(connections))
	for _, c := range connections {
		states[c.To] = c.State
		ids = append(ids, c.To)
	}

	users, err := s.Backend.FetchUsers(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetch connected users: %w", err)
	}
	for i := range users {
		users[i].Connection = states[users[i].ID]
	}
	return s.Users.UpsertUsers(ctx, users)
}

func (s *slowSyncSteps) syncSelfTeam(ctx context.Context) error {
	self, err := s.Users.SelfUser(ctx)
	if err != nil {
		return fmt.Errorf("read self user: %w", err)
	}
	if self.TeamID == "" {
		return nil
	}

	team, err := s.Backend.FetchTeam(ctx, self.TeamID)
	if err != nil {
		return fmt.Errorf("fetch team: %w", err)
	}
	raw, err := json.Marshal(team)
	if err != nil {
		return fmt.Errorf("encode team: %w", err)
	}
	return s.Metadata.SetValue(ctx, MetadataKeySelfTeam, string(raw))
}

func (s *slowSyncSteps) syncLegalHold(ctx context.Context) error {
	self, err := s.Users.SelfUser(ctx)
	if err != nil {
		return fmt.Errorf("read self user: %w", err)
	}
	if self.TeamID == "" {
		return nil
	}

	status, err := s.Backend.FetchLegalHoldStatus(ctx, self.TeamID, self.ID)
	if err != nil {
		return fmt.Errorf("fetch legal hold status: %w", err)
	}
	return s.Metadata.SetValue(ctx, MetadataKeyLegalHoldStatus, status)
}

func (s *slowSyncSteps) syncContacts(ctx context.Context) error {
	return s.Refresher.RefreshAllUsers(ctx)
}

// joinMLSConversations joins every group conversation this device is not a
// member of yet. One-on-ones are left to the one-on-one resolver.
func (s *slowSyncSteps) joinMLSConversations(ctx context.Context) error {
	if s.MLS == nil {
		return nil
	}
	if _, ok, err := s.MLS.Client(ctx); err != nil || !ok {
		return err
	}

	for _, state := range []models.GroupState{models.GroupStatePending, models.GroupStateEstablishedPending} {
		conversations, err := s.Conversations.ConversationsByGroupState(ctx, state)
		if err != nil {
			return fmt.Errorf("list %s groups: %w", state, err)
		}

		for _, c := range conversations {
			if c.Type == models.ConversationTypeOneOnOne {
				continue
			}
			err := s.Joiner.Join(ctx, c)
			if errors.Is(err, adapter.ErrNotFound) {
				s.logger.Warn().Str("conversation_id", c.ID.LogString()).Msg("group gone on backend, skipping join")
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
