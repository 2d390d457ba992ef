package adapter

import (
	"time"

	"github.com/MKhiriev/go-msg-sync/models"
)

type eventIDResponse struct {
	ID models.EventID `json:"id"`
}

type notificationsResponse struct {
	Notifications []models.Event `json:"notifications"`
	HasMore       bool           `json:"has_more"`
}

type selfResponse struct {
	QualifiedID        models.QualifiedID `json:"qualified_id"`
	Name               string             `json:"name"`
	Handle             string             `json:"handle"`
	TeamID             string             `json:"team,omitempty"`
	SupportedProtocols []string           `json:"supported_protocols"`
}

func (s selfResponse) toModel() models.SelfUser {
	return models.SelfUser{
		ID:                 s.QualifiedID,
		Name:               s.Name,
		Handle:             s.Handle,
		TeamID:             models.TeamID(s.TeamID),
		SupportedProtocols: parseProtocols(s.SupportedProtocols),
	}
}

type userResponse struct {
	QualifiedID        models.QualifiedID `json:"qualified_id"`
	Name               string             `json:"name"`
	Handle             string             `json:"handle"`
	TeamID             string             `json:"team,omitempty"`
	UserType           string             `json:"user_type"`
	SupportedProtocols []string           `json:"supported_protocols"`
	Deleted            bool               `json:"deleted"`
}

var userTypes = map[string]models.UserType{
	"internal":  models.UserTypeInternal,
	"external":  models.UserTypeExternal,
	"federated": models.UserTypeFederated,
	"service":   models.UserTypeService,
}

func (u userResponse) toModel() models.OtherUser {
	return models.OtherUser{
		ID:                 u.QualifiedID,
		Name:               u.Name,
		Handle:             u.Handle,
		TeamID:             models.TeamID(u.TeamID),
		Type:               userTypes[u.UserType],
		SupportedProtocols: parseProtocols(u.SupportedProtocols),
		Deleted:            u.Deleted,
	}
}

type listUsersRequest struct {
	QualifiedIDs []models.QualifiedID `json:"qualified_ids"`
}

type listUsersResponse struct {
	Found []userResponse `json:"found"`
}

type supportedProtocolsRequest struct {
	SupportedProtocols []string `json:"supported_protocols"`
}

type connectionResponse struct {
	To             models.QualifiedID `json:"qualified_to"`
	Status         string             `json:"status"`
	ConversationID models.QualifiedID `json:"qualified_conversation"`
}

type connectionsResponse struct {
	Connections []connectionResponse `json:"connections"`
}

type teamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type legalHoldResponse struct {
	Status string `json:"status"`
}

type featureConfigResponse struct {
	MLS struct {
		Status string `json:"status"`
		Config struct {
			DefaultProtocol    string   `json:"defaultProtocol"`
			SupportedProtocols []string `json:"supportedProtocols"`
		} `json:"config"`
	} `json:"mls"`
	MLSMigration struct {
		Status string `json:"status"`
	} `json:"mlsMigration"`
}

func (f featureConfigResponse) toModel() models.FeatureConfig {
	cfg := models.DefaultFeatureConfig()
	cfg.MLSEnabled = f.MLS.Status == "enabled"
	cfg.MLSMigrationEnabled = f.MLSMigration.Status == "enabled"
	if protocols := parseProtocols(f.MLS.Config.SupportedProtocols); len(protocols) > 0 {
		cfg.SupportedProtocols = protocols
	}
	if p, ok := models.ParseSupportedProtocol(f.MLS.Config.DefaultProtocol); ok {
		cfg.DefaultProtocol = p
	}
	return cfg
}

// Backend conversation type codes.
const (
	conversationTypeRegular  = 0
	conversationTypeSelf     = 1
	conversationTypeOneOnOne = 2
	conversationTypeConnect  = 3
)

type conversationMember struct {
	QualifiedID models.QualifiedID `json:"qualified_id"`
}

type conversationResponse struct {
	QualifiedID   models.QualifiedID `json:"qualified_id"`
	Name          string             `json:"name"`
	Type          int                `json:"type"`
	Protocol      string             `json:"protocol"`
	GroupID       string             `json:"group_id,omitempty"`
	Epoch         uint64             `json:"epoch"`
	TeamID        string             `json:"team,omitempty"`
	LastEventTime *time.Time         `json:"last_event_time,omitempty"`
	Members       struct {
		Others []conversationMember `json:"others"`
	} `json:"members"`
}

func (c conversationResponse) toModel() models.Conversation {
	conv := models.Conversation{
		ID:               c.QualifiedID,
		Name:             c.Name,
		TeamID:           models.TeamID(c.TeamID),
		ProtocolInfo:     models.ProteusProtocolInfo(),
		LastModifiedDate: c.LastEventTime,
	}

	switch c.Type {
	case conversationTypeSelf:
		conv.Type = models.ConversationTypeSelf
	case conversationTypeOneOnOne:
		conv.Type = models.ConversationTypeOneOnOne
	case conversationTypeConnect:
		conv.Type = models.ConversationTypeConnectionPending
	default:
		conv.Type = models.ConversationTypeGroup
	}

	// The backend cannot know the local group state; new groups start
	// pending and the join step establishes them.
	if c.Protocol == "mls" && c.GroupID != "" {
		conv.ProtocolInfo = models.MLSProtocolInfo(models.GroupID(c.GroupID), models.GroupStatePending, c.Epoch)
	}

	for _, m := range c.Members.Others {
		conv.Members = append(conv.Members, m.QualifiedID)
	}
	return conv
}

type conversationsResponse struct {
	Conversations []conversationResponse `json:"conversations"`
}

type createConversationRequest struct {
	Name           string               `json:"name,omitempty"`
	Protocol       string               `json:"protocol"`
	QualifiedUsers []models.QualifiedID `json:"qualified_users"`
}

type welcomeResponse struct {
	Welcome []byte `json:"welcome"`
}

func parseProtocols(raw []string) []models.SupportedProtocol {
	var protocols []models.SupportedProtocol
	for _, s := range raw {
		if p, ok := models.ParseSupportedProtocol(s); ok {
			protocols = append(protocols, p)
		}
	}
	return protocols
}

func formatProtocols(protocols []models.SupportedProtocol) []string {
	out := make([]string, 0, len(protocols))
	for _, p := range protocols {
		out = append(out, p.String())
	}
	return out
}

func protocolName(p models.Protocol) string {
	if p == models.ProtocolMLS {
		return "mls"
	}
	return "proteus"
}
