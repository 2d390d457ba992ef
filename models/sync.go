// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// SyncCriteriaResolution tells whether sync is allowed to run right now.
// The zero value is a missing requirement with an empty reason.
type SyncCriteriaResolution struct {
	// Ready is true when every precondition for sync holds.
	Ready bool `json:"ready"`

	// Reason describes the first unmet precondition when Ready is false.
	Reason string `json:"reason,omitempty"`
}

// SyncCriteriaReady returns the resolution that allows sync to run.
func SyncCriteriaReady() SyncCriteriaResolution {
	return SyncCriteriaResolution{Ready: true}
}

// MissingRequirement returns a not-ready resolution with the given reason.
func MissingRequirement(reason string) SyncCriteriaResolution {
	return SyncCriteriaResolution{Reason: reason}
}

// SlowSyncStep is one stage of the slow sync pipeline.
// Steps run in declaration order; later steps rely on earlier ones.
type SlowSyncStep int

const (
	SlowSyncStepMigration SlowSyncStep = iota + 1
	SlowSyncStepSelfUser
	SlowSyncStepFeatureFlags
	SlowSyncStepUpdateSupportedProtocols
	SlowSyncStepConversations
	SlowSyncStepConnections
	SlowSyncStepSelfTeam
	SlowSyncStepLegalHold
	SlowSyncStepContacts
	SlowSyncStepJoiningMLSConversations
)

// SlowSyncSteps lists every step in execution order.
var SlowSyncSteps = []SlowSyncStep{
	SlowSyncStepMigration,
	SlowSyncStepSelfUser,
	SlowSyncStepFeatureFlags,
	SlowSyncStepUpdateSupportedProtocols,
	SlowSyncStepConversations,
	SlowSyncStepConnections,
	SlowSyncStepSelfTeam,
	SlowSyncStepLegalHold,
	SlowSyncStepContacts,
	SlowSyncStepJoiningMLSConversations,
}

var slowSyncStepNames = map[SlowSyncStep]string{
	SlowSyncStepMigration:                "migration",
	SlowSyncStepSelfUser:                 "self_user",
	SlowSyncStepFeatureFlags:             "feature_flags",
	SlowSyncStepUpdateSupportedProtocols: "update_supported_protocols",
	SlowSyncStepConversations:            "conversations",
	SlowSyncStepConnections:              "connections",
	SlowSyncStepSelfTeam:                 "self_team",
	SlowSyncStepLegalHold:                "legal_hold",
	SlowSyncStepContacts:                 "contacts",
	SlowSyncStepJoiningMLSConversations:  "joining_mls_conversations",
}

func (s SlowSyncStep) String() string {
	if name, ok := slowSyncStepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("slow_sync_step(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s SlowSyncStep) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SlowSyncState is the discriminator of SlowSyncStatus.
type SlowSyncState int

const (
	SlowSyncNotStarted SlowSyncState = iota
	SlowSyncOngoing
	SlowSyncComplete
	SlowSyncFailed
)

func (s SlowSyncState) String() string {
	switch s {
	case SlowSyncNotStarted:
		return "not_started"
	case SlowSyncOngoing:
		return "ongoing"
	case SlowSyncComplete:
		return "complete"
	case SlowSyncFailed:
		return "failed"
	default:
		return fmt.Sprintf("slow_sync_state(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SlowSyncState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SlowSyncStatus is the observable state of slow sync.
//
// Step is set only for SlowSyncOngoing. Err and RetryIn are set only for
// SlowSyncFailed.
type SlowSyncStatus struct {
	State   SlowSyncState
	Step    SlowSyncStep
	Err     error
	RetryIn time.Duration
}

// SlowSyncStatusOngoing returns the status for a running step.
func SlowSyncStatusOngoing(step SlowSyncStep) SlowSyncStatus {
	return SlowSyncStatus{State: SlowSyncOngoing, Step: step}
}

// SlowSyncStatusComplete returns the status of a finished slow sync.
func SlowSyncStatusComplete() SlowSyncStatus {
	return SlowSyncStatus{State: SlowSyncComplete}
}

// SlowSyncStatusFailed returns the status of a failed run that will be
// retried after retryIn.
func SlowSyncStatusFailed(err error, retryIn time.Duration) SlowSyncStatus {
	return SlowSyncStatus{State: SlowSyncFailed, Err: err, RetryIn: retryIn}
}

func (s SlowSyncStatus) String() string {
	switch s.State {
	case SlowSyncOngoing:
		return "ongoing(" + s.Step.String() + ")"
	case SlowSyncFailed:
		return fmt.Sprintf("failed(%v, retry in %s)", s.Err, s.RetryIn)
	default:
		return s.State.String()
	}
}

// IncrementalSyncState is the discriminator of IncrementalSyncStatus.
type IncrementalSyncState int

const (
	IncrementalSyncPending IncrementalSyncState = iota
	IncrementalSyncFetchingPendingEvents
	IncrementalSyncLive
	IncrementalSyncFailed
)

func (s IncrementalSyncState) String() string {
	switch s {
	case IncrementalSyncPending:
		return "pending"
	case IncrementalSyncFetchingPendingEvents:
		return "fetching_pending_events"
	case IncrementalSyncLive:
		return "live"
	case IncrementalSyncFailed:
		return "failed"
	default:
		return fmt.Sprintf("incremental_sync_state(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s IncrementalSyncState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IncrementalSyncStatus is the observable state of incremental sync.
type IncrementalSyncStatus struct {
	State   IncrementalSyncState
	Err     error
	RetryIn time.Duration
}

func (s IncrementalSyncStatus) String() string {
	if s.State == IncrementalSyncFailed {
		return fmt.Sprintf("failed(%v, retry in %s)", s.Err, s.RetryIn)
	}
	return s.State.String()
}

// ConnectionPolicy controls whether incremental sync stays connected to the
// live event stream once pending events are processed.
type ConnectionPolicy int

const (
	// KeepAlive keeps the live stream open indefinitely.
	KeepAlive ConnectionPolicy = iota
	// DisconnectAfterPendingEvents stops once the backlog is drained.
	DisconnectAfterPendingEvents
)

func (p ConnectionPolicy) String() string {
	if p == DisconnectAfterPendingEvents {
		return "disconnect_after_pending_events"
	}
	return "keep_alive"
}
