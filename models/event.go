// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// EventCategory routes an event to the receiver that handles it.
type EventCategory int

const (
	EventCategoryConversation EventCategory = iota
	EventCategoryUser
	EventCategoryTeam
	EventCategoryFeatureConfig
	EventCategoryUnknown
)

func (c EventCategory) String() string {
	switch c {
	case EventCategoryConversation:
		return "conversation"
	case EventCategoryUser:
		return "user"
	case EventCategoryTeam:
		return "team"
	case EventCategoryFeatureConfig:
		return "feature_config"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// EventCategoryFromType derives the category from the backend event type
// prefix, e.g. "conversation.member-join" or "user.update".
func EventCategoryFromType(eventType string) EventCategory {
	prefix := eventType
	for i := 0; i < len(eventType); i++ {
		if eventType[i] == '.' {
			prefix = eventType[:i]
			break
		}
	}

	switch prefix {
	case "conversation":
		return EventCategoryConversation
	case "user":
		return EventCategoryUser
	case "team":
		return EventCategoryTeam
	case "feature-config":
		return EventCategoryFeatureConfig
	default:
		return EventCategoryUnknown
	}
}

// Event is a single server notification.
type Event struct {
	ID       EventID         `json:"id"`
	Type     string          `json:"type"`
	Category EventCategory   `json:"-"`
	Payload  json.RawMessage `json:"payload,omitempty"`

	// Transient events are delivered live only and never advance the
	// processed-event cursor.
	Transient bool `json:"transient"`

	// Live is true when the event came from the live stream rather than
	// from the pending backlog.
	Live bool `json:"-"`
}

// LiveEventKind is the discriminator of LiveEvent.
type LiveEventKind int

const (
	// LiveEventOpen is sent once the live stream is connected.
	LiveEventOpen LiveEventKind = iota
	// LiveEventReceived carries one event.
	LiveEventReceived
	// LiveEventClosed is sent when the live stream ends. Err is set when
	// the stream ended abnormally.
	LiveEventClosed
)

// LiveEvent is an item produced by the live event stream.
type LiveEvent struct {
	Kind  LiveEventKind
	Event Event
	Err   error
}
