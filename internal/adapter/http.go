package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
	"github.com/MKhiriev/go-msg-sync/models"
)

const pendingEventsPageSize = 500

type httpBackendAdapter struct {
	client  *utils.HTTPClient
	session *SessionWatcher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the REST implementation of
// [BackendAdapter]. It normalises and validates cfg.HTTPAddress, applies
// cfg.RequestTimeout and stores cfg.Token as the initial bearer token.
//
// When session is not nil every 401 response is reported to it.
func NewHTTPBackendAdapter(cfg config.ClientAdapter, session *SessionWatcher, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	h := &httpBackendAdapter{client: client, session: session, logger: logger}
	h.SetToken(cfg.Token)

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized && h.session != nil {
			h.session.Unauthorized(resp.Request.URL)
		}
		return nil
	})

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header
// of all subsequent requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ── notifications ────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) MostRecentEventID(ctx context.Context) (models.EventID, error) {
	var res eventIDResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&res).
		Get("/notifications/last")
	if err != nil {
		return "", fmt.Errorf("most recent event request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return res.ID, nil
}

// PendingEvents pages through the notification backlog. A 404 for a non
// empty since means the cursor is gone.
func (h *httpBackendAdapter) PendingEvents(ctx context.Context, since models.EventID) ([]models.Event, error) {
	var events []models.Event
	cursor := since

	for {
		req := h.authedRequest(ctx).
			SetQueryParam("size", fmt.Sprint(pendingEventsPageSize))
		if cursor != "" {
			req.SetQueryParam("since", string(cursor))
		}

		resp, err := req.Get("/notifications")
		if err != nil {
			return nil, fmt.Errorf("pending events request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			if errors.Is(err, ErrNotFound) && cursor != "" {
				return nil, fmt.Errorf("%w: %s", ErrEventNotFound, cursor)
			}
			return nil, err
		}

		var page notificationsResponse
		if err = json.Unmarshal(resp.Body(), &page); err != nil {
			return nil, fmt.Errorf("decode notifications response: %w", err)
		}

		for _, e := range page.Notifications {
			e.Category = models.EventCategoryFromType(e.Type)
			events = append(events, e)
		}

		if !page.HasMore || len(page.Notifications) == 0 {
			return events, nil
		}
		cursor = page.Notifications[len(page.Notifications)-1].ID
	}
}

// ── users ────────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) FetchSelf(ctx context.Context) (models.SelfUser, error) {
	var res selfResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&res).
		Get("/self")
	if err != nil {
		return models.SelfUser{}, fmt.Errorf("fetch self request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SelfUser{}, err
	}
	return res.toModel(), nil
}

func (h *httpBackendAdapter) FetchUser(ctx context.Context, id models.UserID) (models.OtherUser, error) {
	var res userResponse
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"domain": id.Domain, "id": id.Value}).
		SetResult(&res).
		Get("/users/{domain}/{id}")
	if err != nil {
		return models.OtherUser{}, fmt.Errorf("fetch user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OtherUser{}, err
	}
	return res.toModel(), nil
}

func (h *httpBackendAdapter) FetchUsers(ctx context.Context, ids []models.UserID) ([]models.OtherUser, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var res listUsersResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(listUsersRequest{QualifiedIDs: ids}).
		SetResult(&res).
		Post("/list-users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	users := make([]models.OtherUser, 0, len(res.Found))
	for _, u := range res.Found {
		users = append(users, u.toModel())
	}
	return users, nil
}

func (h *httpBackendAdapter) UpdateSupportedProtocols(ctx context.Context, protocols []models.SupportedProtocol) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(supportedProtocolsRequest{SupportedProtocols: formatProtocols(protocols)}).
		Put("/self/supported-protocols")
	if err != nil {
		return fmt.Errorf("update supported protocols request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) FetchConnections(ctx context.Context) ([]models.Connection, error) {
	var res connectionsResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&res).
		Get("/list-connections")
	if err != nil {
		return nil, fmt.Errorf("list connections request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	connections := make([]models.Connection, 0, len(res.Connections))
	for _, c := range res.Connections {
		connections = append(connections, models.Connection{
			To:             c.To,
			State:          models.ParseConnectionState(c.Status),
			ConversationID: c.ConversationID,
		})
	}
	return connections, nil
}

// ── teams ────────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) FetchTeam(ctx context.Context, id models.TeamID) (models.Team, error) {
	var res teamResponse
	resp, err := h.authedRequest(ctx).
		SetPathParam("team", string(id)).
		SetResult(&res).
		Get("/teams/{team}")
	if err != nil {
		return models.Team{}, fmt.Errorf("fetch team request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Team{}, err
	}
	return models.Team{ID: models.TeamID(res.ID), Name: res.Name}, nil
}

func (h *httpBackendAdapter) FetchLegalHoldStatus(ctx context.Context, team models.TeamID, user models.UserID) (string, error) {
	var res legalHoldResponse
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"team": string(team), "user": user.Value}).
		SetResult(&res).
		Get("/teams/{team}/legalhold/{user}")
	if err != nil {
		return "", fmt.Errorf("fetch legal hold request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return res.Status, nil
}

func (h *httpBackendAdapter) FetchFeatureConfig(ctx context.Context) (models.FeatureConfig, error) {
	var res featureConfigResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&res).
		Get("/feature-configs")
	if err != nil {
		return models.FeatureConfig{}, fmt.Errorf("fetch feature configs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeatureConfig{}, err
	}
	return res.toModel(), nil
}

// ── conversations ────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) FetchConversations(ctx context.Context) ([]models.Conversation, error) {
	var res conversationsResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&res).
		Get("/conversations")
	if err != nil {
		return nil, fmt.Errorf("list conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	conversations := make([]models.Conversation, 0, len(res.Conversations))
	for _, c := range res.Conversations {
		conversations = append(conversations, c.toModel())
	}
	return conversations, nil
}

func (h *httpBackendAdapter) FetchMLSOneOnOne(ctx context.Context, user models.UserID) (models.Conversation, error) {
	var res conversationResponse
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"domain": user.Domain, "id": user.Value}).
		SetResult(&res).
		Get("/one2one-conversations/{domain}/{id}")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("fetch mls one-on-one request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversation{}, err
	}

	conv := res.toModel()
	if !conv.ProtocolInfo.IsMLS() {
		return models.Conversation{}, fmt.Errorf("one-on-one with %s is not an mls conversation", user.LogString())
	}
	return conv, nil
}

func (h *httpBackendAdapter) CreateGroupConversation(ctx context.Context, members []models.UserID, opts models.ConversationOptions) (models.Conversation, error) {
	var res conversationResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(createConversationRequest{
			Name:           opts.Name,
			Protocol:       protocolName(opts.Protocol),
			QualifiedUsers: members,
		}).
		SetResult(&res).
		Post("/conversations")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("create conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversation{}, err
	}
	return res.toModel(), nil
}

func (h *httpBackendAdapter) FetchGroupInfo(ctx context.Context, conversation models.ConversationID) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"domain": conversation.Domain, "id": conversation.Value}).
		SetHeader("Accept", "message/mls").
		Get("/conversations/{domain}/{id}/groupinfo")
	if err != nil {
		return nil, fmt.Errorf("fetch group info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (h *httpBackendAdapter) FetchWelcome(ctx context.Context, conversation models.ConversationID) ([]byte, error) {
	var res welcomeResponse
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"domain": conversation.Domain, "id": conversation.Value}).
		SetResult(&res).
		Get("/conversations/{domain}/{id}/welcome")
	if err != nil {
		return nil, fmt.Errorf("fetch welcome request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if len(res.Welcome) == 0 {
		return nil, ErrNotFound
	}
	return res.Welcome, nil
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
