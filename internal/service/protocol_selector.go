package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
)

type protocolSelector struct {
	users    store.UserRepository
	features store.FeatureConfigRepository
	logger   *logger.Logger
}

// NewProtocolSelector returns a selector that intersects the protocols of
// the self user, the other user and the team policy, preferring MLS.
func NewProtocolSelector(users store.UserRepository, features store.FeatureConfigRepository, logger *logger.Logger) ProtocolSelector {
	return &protocolSelector{users: users, features: features, logger: logger.WithComponent("one_on_one")}
}

func (s *protocolSelector) ProtocolForUser(ctx context.Context, user models.OtherUser) (models.SupportedProtocol, error) {
	self, err := s.users.SelfUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("read self user: %w", err)
	}
	policy, err := s.features.FeatureConfig(ctx)
	if err != nil {
		return 0, fmt.Errorf("read feature config: %w", err)
	}

	selfProtocols := intersectProtocols(self.SupportedProtocols, policy.SupportedProtocols)
	// Users that never announced protocols predate MLS.
	otherProtocols := user.SupportedProtocols
	if len(otherProtocols) == 0 {
		otherProtocols = []models.SupportedProtocol{models.SupportedProtocolProteus}
	}

	common := intersectProtocols(selfProtocols, otherProtocols)
	switch {
	case models.ContainsProtocol(common, models.SupportedProtocolMLS):
		return models.SupportedProtocolMLS, nil
	case models.ContainsProtocol(common, models.SupportedProtocolProteus):
		return models.SupportedProtocolProteus, nil
	case models.ContainsProtocol(selfProtocols, models.SupportedProtocolMLS):
		return 0, fmt.Errorf("%w: %s", ErrOtherUserNeedsUpdate, user.ID.LogString())
	default:
		return 0, ErrSelfUserNeedsUpdate
	}
}

func intersectProtocols(a, b []models.SupportedProtocol) []models.SupportedProtocol {
	var out []models.SupportedProtocol
	for _, p := range a {
		if models.ContainsProtocol(b, p) && !models.ContainsProtocol(out, p) {
			out = append(out, p)
		}
	}
	return out
}
