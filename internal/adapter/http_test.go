// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/models"
)

// newTestAdapter создаёт httpBackendAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string, session *SessionWatcher) *httpBackendAdapter {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second, Token: "sometoken"}

	a, err := NewHTTPBackendAdapter(cfg, session, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── notifications ────────────────────────────────────────────────────────────

func TestMostRecentEventID_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notifications/last", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]string{"id": "evt-42"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	id, err := a.MostRecentEventID(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.EventID("evt-42"), id)
}

func TestMostRecentEventID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.MostRecentEventID(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingEvents_Pages(t *testing.T) {
	var sinces []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("size"))
		since := r.URL.Query().Get("since")
		sinces = append(sinces, since)

		switch since {
		case "evt-1":
			writeJSON(w, http.StatusOK, map[string]any{
				"notifications": []map[string]any{
					{"id": "evt-2", "type": "conversation.member-join"},
					{"id": "evt-3", "type": "user.update"},
				},
				"has_more": true,
			})
		case "evt-3":
			writeJSON(w, http.StatusOK, map[string]any{
				"notifications": []map[string]any{
					{"id": "evt-4", "type": "feature-config.update", "transient": true},
				},
				"has_more": false,
			})
		default:
			t.Errorf("unexpected since %q", since)
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	events, err := a.PendingEvents(context.Background(), "evt-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"evt-1", "evt-3"}, sinces)
	require.Len(t, events, 3)
	assert.Equal(t, models.EventCategoryConversation, events[0].Category)
	assert.Equal(t, models.EventCategoryUser, events[1].Category)
	assert.Equal(t, models.EventCategoryFeatureConfig, events[2].Category)
	assert.True(t, events[2].Transient)
	assert.False(t, events[0].Live)
}

func TestPendingEvents_UnknownCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.PendingEvents(context.Background(), "evt-gone")

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestPendingEvents_FromBeginning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("since"))
		writeJSON(w, http.StatusOK, map[string]any{"notifications": []any{}, "has_more": false})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	events, err := a.PendingEvents(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, events)
}

// ── users ────────────────────────────────────────────────────────────────────

func TestFetchSelf_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/self", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"qualified_id":        map[string]string{"id": "me", "domain": "wire.com"},
			"name":                "Me",
			"handle":              "me",
			"team":                "team-1",
			"supported_protocols": []string{"proteus", "mls", "unknown"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	self, err := a.FetchSelf(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.UserID{Value: "me", Domain: "wire.com"}, self.ID)
	assert.Equal(t, models.TeamID("team-1"), self.TeamID)
	assert.Equal(t, []models.SupportedProtocol{models.SupportedProtocolProteus, models.SupportedProtocolMLS}, self.SupportedProtocols)
}

func TestFetchUsers_Bulk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/list-users", r.URL.Path)

		var body listUsersRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.QualifiedIDs, 2)

		writeJSON(w, http.StatusOK, map[string]any{
			"found": []map[string]any{
				{"qualified_id": map[string]string{"id": "a", "domain": "d"}, "name": "A", "user_type": "external", "supported_protocols": []string{"mls"}},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	users, err := a.FetchUsers(context.Background(), []models.UserID{{Value: "a", Domain: "d"}, {Value: "b", Domain: "d"}})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.UserTypeExternal, users[0].Type)
	assert.Equal(t, []models.SupportedProtocol{models.SupportedProtocolMLS}, users[0].SupportedProtocols)
}

func TestFetchUsers_EmptyMakesNoRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	users, err := a.FetchUsers(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFetchUser_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/wire.com/bob", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"qualified_id": map[string]string{"id": "bob", "domain": "wire.com"}, "deleted": true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	u, err := a.FetchUser(context.Background(), models.UserID{Value: "bob", Domain: "wire.com"})

	require.NoError(t, err)
	assert.True(t, u.Deleted)
}

func TestUpdateSupportedProtocols(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body supportedProtocolsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"proteus", "mls"}, body.SupportedProtocols)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	err := a.UpdateSupportedProtocols(context.Background(),
		[]models.SupportedProtocol{models.SupportedProtocolProteus, models.SupportedProtocolMLS})
	require.NoError(t, err)
}

func TestFetchConnections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"connections": []map[string]any{{
				"qualified_to":           map[string]string{"id": "bob", "domain": "d"},
				"status":                 "accepted",
				"qualified_conversation": map[string]string{"id": "c1", "domain": "d"},
			}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	conns, err := a.FetchConnections(context.Background())

	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, models.ConnectionAccepted, conns[0].State)
	assert.Equal(t, "c1", conns[0].ConversationID.Value)
}

// ── teams ────────────────────────────────────────────────────────────────────

func TestFetchFeatureConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feature-configs", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"mls": map[string]any{
				"status": "enabled",
				"config": map[string]any{"defaultProtocol": "mls", "supportedProtocols": []string{"proteus", "mls"}},
			},
			"mlsMigration": map[string]any{"status": "disabled"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	cfg, err := a.FetchFeatureConfig(context.Background())

	require.NoError(t, err)
	assert.True(t, cfg.MLSEnabled)
	assert.False(t, cfg.MLSMigrationEnabled)
	assert.Equal(t, models.SupportedProtocolMLS, cfg.DefaultProtocol)
	assert.Len(t, cfg.SupportedProtocols, 2)
}

func TestFetchTeamAndLegalHold(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/teams/team-1":
			writeJSON(w, http.StatusOK, map[string]string{"id": "team-1", "name": "Acme"})
		case "/teams/team-1/legalhold/me":
			writeJSON(w, http.StatusOK, map[string]string{"status": "disabled"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	team, err := a.FetchTeam(context.Background(), "team-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", team.Name)

	status, err := a.FetchLegalHoldStatus(context.Background(), "team-1", models.UserID{Value: "me"})
	require.NoError(t, err)
	assert.Equal(t, "disabled", status)
}

// ── conversations ────────────────────────────────────────────────────────────

func TestFetchConversations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"conversations": []map[string]any{
				{
					"qualified_id": map[string]string{"id": "c1", "domain": "d"},
					"type":         2,
					"protocol":     "proteus",
					"members":      map[string]any{"others": []map[string]any{{"qualified_id": map[string]string{"id": "bob", "domain": "d"}}}},
				},
				{
					"qualified_id": map[string]string{"id": "c2", "domain": "d"},
					"type":         0,
					"protocol":     "mls",
					"group_id":     "g2",
					"epoch":        4,
				},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	convs, err := a.FetchConversations(context.Background())

	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, models.ConversationTypeOneOnOne, convs[0].Type)
	assert.Equal(t, []models.UserID{{Value: "bob", Domain: "d"}}, convs[0].Members)
	require.True(t, convs[1].ProtocolInfo.IsMLS())
	assert.Equal(t, models.GroupStatePending, convs[1].ProtocolInfo.MLS.GroupState)
	assert.Equal(t, uint64(4), convs[1].ProtocolInfo.MLS.Epoch)
}

func TestFetchMLSOneOnOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/one2one-conversations/d/bob", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"qualified_id": map[string]string{"id": "mls-1", "domain": "d"},
			"type":         2,
			"protocol":     "mls",
			"group_id":     "g1",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	conv, err := a.FetchMLSOneOnOne(context.Background(), models.UserID{Value: "bob", Domain: "d"})

	require.NoError(t, err)
	assert.Equal(t, models.GroupID("g1"), conv.ProtocolInfo.MLS.GroupID)
}

func TestFetchMLSOneOnOne_NotMLS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"qualified_id": map[string]string{"id": "p"}, "protocol": "proteus"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.FetchMLSOneOnOne(context.Background(), models.UserID{Value: "bob", Domain: "d"})

	assert.Error(t, err)
}

func TestCreateGroupConversation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body createConversationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "proteus", body.Protocol)
		assert.Equal(t, []models.QualifiedID{{Value: "bob", Domain: "d"}}, body.QualifiedUsers)
		writeJSON(w, http.StatusCreated, map[string]any{"qualified_id": map[string]string{"id": "new", "domain": "d"}, "protocol": "proteus"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	conv, err := a.CreateGroupConversation(context.Background(), []models.UserID{{Value: "bob", Domain: "d"}}, models.DefaultConversationOptions())

	require.NoError(t, err)
	assert.Equal(t, "new", conv.ID.Value)
	assert.Equal(t, models.ConversationTypeGroup, conv.Type)
}

func TestFetchGroupInfoAndWelcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/conversations/d/c1/groupinfo":
			w.Header().Set("Content-Type", "message/mls")
			_, _ = w.Write([]byte{1, 2, 3})
		case "/conversations/d/c1/welcome":
			writeJSON(w, http.StatusOK, map[string]any{"welcome": []byte{}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	info, err := a.FetchGroupInfo(context.Background(), models.ConversationID{Value: "c1", Domain: "d"})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, info)

	_, err = a.FetchWelcome(context.Background(), models.ConversationID{Value: "c1", Domain: "d"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── errors ───────────────────────────────────────────────────────────────────

func TestUnauthorized_ReportsToSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token is expired"))
	}))
	defer srv.Close()

	session := NewSessionWatcher("", logger.Nop())
	a := newTestAdapter(t, srv.URL, session)
	_, err := a.FetchSelf(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	select {
	case reason := <-session.Logouts():
		assert.Equal(t, LogoutReasonSessionRejected, reason)
	default:
		t.Fatal("expected a logout reason")
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, nil)
			_, err := a.FetchConnections(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
