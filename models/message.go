// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SystemMessageKind is the type of a locally generated conversation notice.
type SystemMessageKind int

const (
	// SystemMessageProtocolChanged announces that a conversation moved to
	// another encryption protocol.
	SystemMessageProtocolChanged SystemMessageKind = iota
	// SystemMessageStartedUnverified warns that a newly migrated
	// conversation is not verified yet.
	SystemMessageStartedUnverified
	// SystemMessageVerificationDegraded announces that a verified
	// conversation is no longer verified.
	SystemMessageVerificationDegraded
	// SystemMessageVerified announces that every member is verified.
	SystemMessageVerified
)

func (k SystemMessageKind) String() string {
	switch k {
	case SystemMessageProtocolChanged:
		return "protocol_changed"
	case SystemMessageStartedUnverified:
		return "started_unverified"
	case SystemMessageVerificationDegraded:
		return "verification_degraded"
	case SystemMessageVerified:
		return "verified"
	default:
		return "unknown"
	}
}

// SystemMessage is a message inserted by the client itself.
type SystemMessage struct {
	ID             string
	ConversationID ConversationID
	Kind           SystemMessageKind

	// Protocol is set for SystemMessageProtocolChanged.
	Protocol Protocol

	// Sender is the self user.
	Sender UserID
	Date   time.Time
}
