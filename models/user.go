// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SupportedProtocol is an end-to-end encryption protocol a user or team can
// talk.
type SupportedProtocol int

const (
	SupportedProtocolProteus SupportedProtocol = iota
	SupportedProtocolMLS
)

func (p SupportedProtocol) String() string {
	if p == SupportedProtocolMLS {
		return "mls"
	}
	return "proteus"
}

// ParseSupportedProtocol maps the backend protocol name to a value.
func ParseSupportedProtocol(s string) (SupportedProtocol, bool) {
	switch s {
	case "mls":
		return SupportedProtocolMLS, true
	case "proteus":
		return SupportedProtocolProteus, true
	default:
		return 0, false
	}
}

// ContainsProtocol reports whether p is in protocols.
func ContainsProtocol(protocols []SupportedProtocol, p SupportedProtocol) bool {
	for _, candidate := range protocols {
		if candidate == p {
			return true
		}
	}
	return false
}

// ConnectionState is the relation between the self user and another user.
type ConnectionState int

const (
	ConnectionNotConnected ConnectionState = iota
	ConnectionPending
	ConnectionSent
	ConnectionAccepted
	ConnectionBlocked
)

// ParseConnectionState maps the backend connection status. Unknown values
// mean not connected.
func ParseConnectionState(s string) ConnectionState {
	switch s {
	case "accepted":
		return ConnectionAccepted
	case "pending":
		return ConnectionPending
	case "sent":
		return ConnectionSent
	case "blocked":
		return ConnectionBlocked
	default:
		return ConnectionNotConnected
	}
}

// UserType distinguishes regular users from bots and externals.
type UserType int

const (
	UserTypeInternal UserType = iota
	UserTypeExternal
	UserTypeFederated
	UserTypeService
)

// SelfUser is the account the client is logged in as.
type SelfUser struct {
	ID                 UserID
	Name               string
	Handle             string
	TeamID             TeamID
	SupportedProtocols []SupportedProtocol
}

// OtherUser is any user other than the self user.
type OtherUser struct {
	ID                 UserID
	Name               string
	Handle             string
	TeamID             TeamID
	Type               UserType
	Connection         ConnectionState
	SupportedProtocols []SupportedProtocol
	Deleted            bool

	// ActiveOneOnOneConversationID points at the conversation currently
	// used to talk to this user one on one. Nil when none is chosen yet.
	ActiveOneOnOneConversationID *ConversationID
}

// MemberProfile is the locally known name and handle of a user.
type MemberProfile struct {
	Name   string
	Handle string
}

// Team is the team of the self user.
type Team struct {
	ID   TeamID
	Name string
}

// Connection is the relation of the self user to another user, together
// with the one-on-one conversation the backend created for it.
type Connection struct {
	To             UserID
	State          ConnectionState
	ConversationID ConversationID
}
