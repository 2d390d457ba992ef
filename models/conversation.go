// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// ConversationType is the kind of a conversation.
type ConversationType int

const (
	ConversationTypeGroup ConversationType = iota
	ConversationTypeOneOnOne
	ConversationTypeSelf
	ConversationTypeConnectionPending
)

func (t ConversationType) String() string {
	switch t {
	case ConversationTypeGroup:
		return "group"
	case ConversationTypeOneOnOne:
		return "one_on_one"
	case ConversationTypeSelf:
		return "self"
	case ConversationTypeConnectionPending:
		return "connection_pending"
	default:
		return fmt.Sprintf("conversation_type(%d)", int(t))
	}
}

// Protocol is the end-to-end encryption protocol backing a conversation.
type Protocol int

const (
	ProtocolProteus Protocol = iota
	ProtocolMLS
)

func (p Protocol) String() string {
	if p == ProtocolMLS {
		return "mls"
	}
	return "proteus"
}

// GroupState is the local state of an MLS group.
type GroupState int

const (
	// GroupStatePending means the group exists on the backend but the
	// device has not joined it; joining requires an external commit.
	GroupStatePending GroupState = iota
	// GroupStateEstablishedPending means a welcome message was received
	// but not processed yet.
	GroupStateEstablishedPending
	// GroupStateEstablished means the device is a member of the group.
	GroupStateEstablished
)

func (s GroupState) String() string {
	switch s {
	case GroupStatePending:
		return "pending"
	case GroupStateEstablishedPending:
		return "established_pending"
	case GroupStateEstablished:
		return "established"
	default:
		return fmt.Sprintf("group_state(%d)", int(s))
	}
}

// MLSGroupInfo holds the MLS-specific part of a conversation.
type MLSGroupInfo struct {
	GroupID    GroupID
	GroupState GroupState
	Epoch      uint64
}

// ProtocolInfo describes which protocol a conversation uses.
// MLS is nil for Proteus conversations.
type ProtocolInfo struct {
	Protocol Protocol
	MLS      *MLSGroupInfo
}

// ProteusProtocolInfo returns the protocol info of a Proteus conversation.
func ProteusProtocolInfo() ProtocolInfo {
	return ProtocolInfo{Protocol: ProtocolProteus}
}

// MLSProtocolInfo returns the protocol info of an MLS conversation.
func MLSProtocolInfo(groupID GroupID, state GroupState, epoch uint64) ProtocolInfo {
	return ProtocolInfo{
		Protocol: ProtocolMLS,
		MLS:      &MLSGroupInfo{GroupID: groupID, GroupState: state, Epoch: epoch},
	}
}

// IsMLS reports whether the conversation is backed by MLS.
func (p ProtocolInfo) IsMLS() bool {
	return p.Protocol == ProtocolMLS && p.MLS != nil
}

// VerificationStatus is the conversation-level trust indicator.
type VerificationStatus int

const (
	NotVerified VerificationStatus = iota
	Verified
	Degraded
)

func (s VerificationStatus) String() string {
	switch s {
	case Verified:
		return "verified"
	case Degraded:
		return "degraded"
	default:
		return "not_verified"
	}
}

// Conversation holds the protocol-relevant fields of a conversation.
type Conversation struct {
	ID           ConversationID
	Name         string
	Type         ConversationType
	ProtocolInfo ProtocolInfo
	TeamID       TeamID

	// VerificationStatus is the last persisted MLS verification status.
	VerificationStatus VerificationStatus

	// DegradedNotified is true once the user was told about degradation.
	DegradedNotified bool

	LastModifiedDate *time.Time

	// Members is filled by the backend adapter only. Local reads leave it
	// empty; membership is read through the conversation repository.
	Members []UserID
}

// ConversationOptions configures a newly created group-style conversation.
type ConversationOptions struct {
	Protocol Protocol
	Name     string
}

// DefaultConversationOptions returns the options used when the client
// creates a conversation on its own behalf.
func DefaultConversationOptions() ConversationOptions {
	return ConversationOptions{Protocol: ProtocolProteus}
}

// EpochChange is emitted whenever the epoch of an MLS group moves.
type EpochChange struct {
	GroupID GroupID
	Epoch   uint64
}
