// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
	"github.com/MKhiriev/go-msg-sync/models"
)

// Reasons reported with a missing requirement.
const (
	ReasonClientNotRegistered       = "client is not registered"
	ReasonIdentityEnrollmentPending = "identity enrollment is pending"
	reasonLoggedOutPrefix           = "logged out: "
)

// CriteriaProvider derives readiness from the registered client id,
// the identity enrollment block and logout events. A logout is sticky:
// once seen, sync stays blocked for the lifetime of the provider.
type CriteriaProvider struct {
	clientID   *utils.Observable[models.ClientID]
	enrollment *utils.Observable[bool]
	logouts    <-chan string

	mu           sync.Mutex
	currentID    models.ClientID
	blocked      bool
	logoutReason string
	out          *utils.Observable[models.SyncCriteriaResolution]

	logger *logger.Logger
}

// NewSyncCriteriaProvider returns the provider. logouts may be nil; Logout
// can be called directly as well. Run must be running for input changes to
// be picked up.
func NewSyncCriteriaProvider(
	clientID *utils.Observable[models.ClientID],
	enrollmentBlocked *utils.Observable[bool],
	logouts <-chan string,
	logger *logger.Logger,
) *CriteriaProvider {
	p := &CriteriaProvider{
		clientID:   clientID,
		enrollment: enrollmentBlocked,
		logouts:    logouts,
		currentID:  clientID.Value(),
		blocked:    enrollmentBlocked.Value(),
		logger:     logger.WithComponent("sync_criteria"),
	}
	p.out = utils.NewObservable(p.resolveLocked())
	return p
}

func (p *CriteriaProvider) Criteria(ctx context.Context) <-chan models.SyncCriteriaResolution {
	return utils.Distinct(ctx, p.out.Subscribe(ctx))
}

func (p *CriteriaProvider) Current() models.SyncCriteriaResolution {
	return p.out.Value()
}

// Logout blocks sync with the given reason. Only the first reason is kept.
func (p *CriteriaProvider) Logout(reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.logoutReason != "" {
		return
	}
	p.logger.Warn().Str("reason", reason).Msg("logout received, blocking sync")
	p.logoutReason = reason
	p.publishLocked()
}

// Run follows the inputs until ctx is done.
func (p *CriteriaProvider) Run(ctx context.Context) error {
	ids := p.clientID.Subscribe(ctx)
	blocks := p.enrollment.Subscribe(ctx)
	logouts := p.logouts

	for {
		select {
		case <-ctx.Done():
			return nil
		case id, ok := <-ids:
			if !ok {
				return nil
			}
			p.mu.Lock()
			p.currentID = id
			p.publishLocked()
			p.mu.Unlock()
		case blocked, ok := <-blocks:
			if !ok {
				return nil
			}
			p.mu.Lock()
			p.blocked = blocked
			p.publishLocked()
			p.mu.Unlock()
		case reason, ok := <-logouts:
			if !ok {
				logouts = nil
				continue
			}
			p.Logout(reason)
		}
	}
}

func (p *CriteriaProvider) publishLocked() {
	next := p.resolveLocked()
	if next == p.out.Value() {
		return
	}
	p.logger.Info().Bool("ready", next.Ready).Str("reason", next.Reason).Msg("sync criteria changed")
	p.out.Set(next)
}

func (p *CriteriaProvider) resolveLocked() models.SyncCriteriaResolution {
	switch {
	case p.logoutReason != "":
		return models.MissingRequirement(reasonLoggedOutPrefix + p.logoutReason)
	case p.currentID == "":
		return models.MissingRequirement(ReasonClientNotRegistered)
	case p.blocked:
		return models.MissingRequirement(ReasonIdentityEnrollmentPending)
	default:
		return models.SyncCriteriaReady()
	}
}
