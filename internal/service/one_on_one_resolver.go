package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/metrics"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

// existingProteusTarget labels resolutions that adopt an existing Proteus
// one-on-one instead of migrating.
const existingProteusTarget = "proteus_existing"

type oneOnOneResolver struct {
	users     store.UserRepository
	refresher UserRefresher
	selector  ProtocolSelector
	migrator  OneOnOneMigrator
	logger    *logger.Logger
}

func NewOneOnOneResolver(
	users store.UserRepository,
	refresher UserRefresher,
	selector ProtocolSelector,
	migrator OneOnOneMigrator,
	logger *logger.Logger,
) OneOnOneResolver {
	return &oneOnOneResolver{
		users:     users,
		refresher: refresher,
		selector:  selector,
		migrator:  migrator,
		logger:    logger.WithComponent("one_on_one"),
	}
}

// ResolveOneOnOneConversationWithUser picks the protocol for the
// conversation with user and migrates to it. A failed profile refresh is
// logged and ignored.
func (r *oneOnOneResolver) ResolveOneOnOneConversationWithUser(ctx context.Context, user models.UserID, synchronizeUser bool) (models.ConversationID, error) {
	if synchronizeUser {
		if err := r.refresher.RefreshUser(ctx, user); err != nil {
			r.logger.Warn().Err(err).Str("user_id", user.LogString()).Msg("profile refresh failed, resolving with local data")
		}
	}

	other, err := r.users.UserByID(ctx, user)
	if err != nil {
		return models.ConversationID{}, fmt.Errorf("read user %s: %w", user.LogString(), err)
	}
	return r.resolve(ctx, other)
}

// ResolveAllOneOnOneConversations resolves every user with a one-on-one
// relationship, one after another. The first failure fails the whole pass.
func (r *oneOnOneResolver) ResolveAllOneOnOneConversations(ctx context.Context, synchronizeUsers bool) error {
	if synchronizeUsers {
		if err := r.refresher.RefreshAllUsers(ctx); err != nil {
			r.logger.Warn().Err(err).Msg("bulk profile refresh failed, resolving with local data")
		}
	}

	users, err := r.users.UsersWithOneOnOneConversation(ctx)
	if err != nil {
		return fmt.Errorf("list one-on-one users: %w", err)
	}

	r.logger.Info().Int("users", len(users)).Msg("resolving one-on-one conversations")
	for _, user := range users {
		if _, err := r.resolve(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

func (r *oneOnOneResolver) resolve(ctx context.Context, user models.OtherUser) (models.ConversationID, error) {
	var (
		id     models.ConversationID
		target string
	)

	protocol, err := r.selector.ProtocolForUser(ctx, user)
	switch {
	case errors.Is(err, ErrOtherUserNeedsUpdate):
		// Keep the existing Proteus conversation until the other side
		// supports MLS.
		r.logger.Info().Str("user_id", user.ID.LogString()).Msg("no common protocol, adopting existing proteus one-on-one")
		target = existingProteusTarget
		id, err = r.migrator.MigrateExistingProteus(ctx, user)
	case err != nil:
		return models.ConversationID{}, fmt.Errorf("select protocol: %w", err)
	case protocol == models.SupportedProtocolMLS:
		target = protocol.String()
		id, err = r.migrator.MigrateToMLS(ctx, user)
	default:
		target = protocol.String()
		id, err = r.migrator.MigrateToProteus(ctx, user)
	}

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	metrics.OneOnOneMigrations.WithLabelValues(target, outcome).Inc()

	if err != nil {
		r.logger.Error().Err(err).Str("user_id", user.ID.LogString()).Str("protocol", target).Msg("one-on-one resolution failed")
		return models.ConversationID{}, err
	}
	return id, nil
}
