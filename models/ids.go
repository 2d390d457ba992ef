// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// QualifiedID identifies an entity owned by a federated backend.
// Value is unique within Domain only.
type QualifiedID struct {
	Value  string `json:"id"`
	Domain string `json:"domain"`
}

// String returns the "value@domain" form.
func (q QualifiedID) String() string {
	if q.Domain == "" {
		return q.Value
	}
	return q.Value + "@" + q.Domain
}

// LogString returns an obfuscated form suitable for logs: the first
// characters of the value are kept, the rest is masked.
func (q QualifiedID) LogString() string {
	v := q.Value
	if len(v) > 4 {
		v = v[:4] + strings.Repeat("*", 4)
	}
	if q.Domain == "" {
		return v
	}
	return v + "@" + q.Domain
}

// IsZero reports whether the id is unset.
func (q QualifiedID) IsZero() bool {
	return q.Value == ""
}

// ParseQualifiedID parses "value@domain". A missing domain is allowed.
func ParseQualifiedID(s string) (QualifiedID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return QualifiedID{}, fmt.Errorf("empty qualified id")
	}
	value, domain, _ := strings.Cut(s, "@")
	if value == "" {
		return QualifiedID{}, fmt.Errorf("qualified id %q has empty value", s)
	}
	return QualifiedID{Value: value, Domain: domain}, nil
}

// UserID identifies a user.
type UserID = QualifiedID

// ConversationID identifies a conversation.
type ConversationID = QualifiedID

// TeamID identifies a team.
type TeamID string

// ClientID identifies a registered device of the self user.
type ClientID string

// GroupID identifies an MLS group.
type GroupID string

// EventID is the server-side identifier of a notification event. Event ids
// are opaque; only the server can order them.
type EventID string
