package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/service"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Fakes ----

type fakeSync struct {
	mu         sync.Mutex
	status     service.SyncStatus
	restartErr error
	restarts   int
}

func (f *fakeSync) Status() service.SyncStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeSync) ForceSlowSync(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restarts++
	return f.restartErr
}

type resolveCall struct {
	user        models.UserID
	synchronize bool
}

type fakeOneOnOne struct {
	calls        []resolveCall
	conversation models.ConversationID
	err          error
}

func (f *fakeOneOnOne) ResolveOneOnOneConversationWithUser(_ context.Context, user models.UserID, synchronize bool) (models.ConversationID, error) {
	f.calls = append(f.calls, resolveCall{user: user, synchronize: synchronize})
	return f.conversation, f.err
}

func (f *fakeOneOnOne) ResolveAllOneOnOneConversations(context.Context, bool) error {
	return nil
}

// ---- Helpers ----

func newTestHandler() *Handler {
	return &Handler{
		sync:     &fakeSync{},
		oneOnOne: &fakeOneOnOne{},
		logger:   logger.Nop(),
	}
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ---- NewHandler ----

func TestNewHandler_UsesServices(t *testing.T) {
	services := &service.ClientServices{Sync: &service.SyncExecutor{}, OneOnOne: &fakeOneOnOne{}}
	build := models.NewBuildInfo("1.0.0", "", "")
	h := NewHandler(services, build, "secret", logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services.Sync, h.sync)
	assert.Equal(t, services.OneOnOne, h.oneOnOne)
	assert.Equal(t, "secret", h.token)
	assert.Equal(t, build, h.build)
}

// ---- Routes ----

func TestInit_RegistersAllRoutes(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/sync/status"},
		{http.MethodGet, "/api/sync/criteria"},
		{http.MethodPost, "/api/sync/slow/restart"},
		{http.MethodPost, "/api/one-on-one/resolve?user=bob@example.com"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/version"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(newTestHandler(), httptest.NewRequest(tc.method, tc.path, nil))
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteAndWrongMethod(t *testing.T) {
	h := newTestHandler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Существующий путь с чужим методом тоже даёт 404.
	rec = serve(h, httptest.NewRequest(http.MethodDelete, "/api/sync/status", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_MetricsAreExposed(t *testing.T) {
	rec := serve(newTestHandler(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestInit_CompressesJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/sync/criteria", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rec := serve(newTestHandler(), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

// ---- GET /api/version ----

func TestVersion(t *testing.T) {
	h := newTestHandler()
	h.build = models.NewBuildInfo("1.4.2", "2026-10-01", "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.4.2","date":"2026-10-01","commit":"N/A"}`, rec.Body.String())
}

// ---- GET /api/sync/status ----

func TestSyncStatus(t *testing.T) {
	tests := []struct {
		name   string
		status service.SyncStatus
		want   string
	}{
		{
			name: "live",
			status: service.SyncStatus{
				Criteria:    models.SyncCriteriaReady(),
				Slow:        models.SlowSyncStatusComplete(),
				Incremental: models.IncrementalSyncStatus{State: models.IncrementalSyncLive},
			},
			want: `{"criteria":{"ready":true},"slow_sync":{"state":"complete"},"incremental_sync":{"state":"live"}}`,
		},
		{
			name: "slow sync running",
			status: service.SyncStatus{
				Criteria: models.SyncCriteriaReady(),
				Slow:     models.SlowSyncStatusOngoing(models.SlowSyncStepContacts),
			},
			want: `{"criteria":{"ready":true},"slow_sync":{"state":"ongoing","step":"contacts"},"incremental_sync":{"state":"pending"}}`,
		},
		{
			name: "failures carry error and retry delay",
			status: service.SyncStatus{
				Criteria:    models.MissingRequirement("client not registered"),
				Slow:        models.SlowSyncStatusFailed(errors.New("offline"), 2*time.Second),
				Incremental: models.IncrementalSyncStatus{State: models.IncrementalSyncFailed, Err: errors.New("socket reset")},
			},
			want: `{"criteria":{"ready":false,"reason":"client not registered"},` +
				`"slow_sync":{"state":"failed","error":"offline","retry_in":"2s"},` +
				`"incremental_sync":{"state":"failed","error":"socket reset"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.sync = &fakeSync{status: tt.status}

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/sync/status", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestSyncCriteria(t *testing.T) {
	h := newTestHandler()
	h.sync = &fakeSync{status: service.SyncStatus{Criteria: models.MissingRequirement("logged out")}}

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/sync/criteria", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.SyncCriteriaResolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.MissingRequirement("logged out"), got)
}

// ---- POST /api/sync/slow/restart ----

func TestRestartSlowSync(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"accepted", nil, http.StatusAccepted},
		{"storage failure", fmt.Errorf("clear completion: %w", store.ErrExecutingStatement), http.StatusInternalServerError},
		{"canceled by deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			fake := &fakeSync{restartErr: tt.err}
			h.sync = fake

			rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/sync/slow/restart", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, 1, fake.restarts)
		})
	}
}

// ---- POST /api/one-on-one/resolve ----

func TestResolveOneOnOne(t *testing.T) {
	bob := models.UserID{Value: "bob", Domain: "example.com"}
	conversation := models.ConversationID{Value: "conv-1", Domain: "example.com"}

	tests := []struct {
		name       string
		target     string
		body       string
		err        error
		wantStatus int
		wantCall   *resolveCall
	}{
		{
			name:       "json body",
			target:     "/api/one-on-one/resolve",
			body:       `{"user":"bob@example.com","synchronize":true}`,
			wantStatus: http.StatusOK,
			wantCall:   &resolveCall{user: bob, synchronize: true},
		},
		{
			name:       "query parameters",
			target:     "/api/one-on-one/resolve?user=bob@example.com&synchronize=false",
			wantStatus: http.StatusOK,
			wantCall:   &resolveCall{user: bob},
		},
		{
			name:       "no user",
			target:     "/api/one-on-one/resolve",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "broken json",
			target:     "/api/one-on-one/resolve",
			body:       `{"user":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad synchronize flag",
			target:     "/api/one-on-one/resolve?user=bob@example.com&synchronize=maybe",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no common protocol",
			target:     "/api/one-on-one/resolve?user=bob@example.com",
			err:        service.ErrOtherUserNeedsUpdate,
			wantStatus: http.StatusConflict,
			wantCall:   &resolveCall{user: bob},
		},
		{
			name:       "unknown user",
			target:     "/api/one-on-one/resolve?user=bob@example.com",
			err:        fmt.Errorf("read user: %w", store.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCall:   &resolveCall{user: bob},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			resolver := &fakeOneOnOne{conversation: conversation, err: tt.err}
			h.oneOnOne = resolver

			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))
			rec := serve(h, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCall == nil {
				assert.Empty(t, resolver.calls)
				return
			}
			require.Len(t, resolver.calls, 1)
			assert.Equal(t, *tt.wantCall, resolver.calls[0])

			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"conversation":{"id":"conv-1","domain":"example.com"}}`, rec.Body.String())
			}
		})
	}
}

// ---- statusFromError ----

func TestStatusFromError_UnknownIsInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("boom")))
}
