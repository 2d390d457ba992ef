package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantSame       bool
	}{
		{name: "header is propagated", requestTraceID: "trace-abc-123", wantSame: true},
		{name: "missing header generates uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, traceID)
			if tt.wantSame {
				assert.Equal(t, tt.requestTraceID, traceID)
			} else {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			}

			assert.Equal(t, http.StatusTeapot, rec.Code)
			// Логгер из контекста несёт trace_id и компонент.
			assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
			assert.Contains(t, buf.String(), `"component":"diagnostics"`)
		})
	}
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		body      string
		wantLevel string
	}{
		{"GET 200", http.MethodGet, "/api/sync/status", http.StatusOK, "OK", "info"},
		{"POST 202 empty", http.MethodPost, "/api/sync/slow/restart", http.StatusAccepted, "", "info"},
		{"GET 502", http.MethodGet, "/api/sync/status?x=1", http.StatusBadGateway, "upstream", "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(l.WithContext(req.Context()))

			rec := httptest.NewRecorder()
			newTestHandler().withLogging(statusHandler(tt.status, tt.body)).ServeHTTP(rec, req)

			out := buf.String()
			assert.Contains(t, out, `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, out, `"method":"`+tt.method+`"`)
			assert.Contains(t, out, `"uri":"`+tt.path+`"`)
			assert.Contains(t, out, `"status":`)
			assert.Contains(t, out, `"duration":`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	// Хендлер ничего не пишет — статус по умолчанию 200.
	silent := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	newTestHandler().withLogging(silent).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":0`)
}

// ---- auth ----

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
	}{
		{name: "disabled without token", wantStatus: http.StatusOK},
		{name: "valid bearer", token: "s3cret", header: "Bearer s3cret", wantStatus: http.StatusOK},
		{name: "missing header", token: "s3cret", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", token: "s3cret", header: "s3cret", wantStatus: http.StatusUnauthorized},
		{name: "empty token", token: "s3cret", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", token: "s3cret", header: "Bearer guess", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.token = tt.token

			req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(statusHandler(http.StatusOK, "ok")).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuth_MetricsStayOpen(t *testing.T) {
	h := newTestHandler()
	h.token = "s3cret"

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/api/sync/status", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n1, err := w.Write([]byte("hello "))
	require.NoError(t, err)
	n2, err := w.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, n1+n2, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("x"))
	require.NoError(t, err)
	w.Flush()

	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, rec.Flushed)
}
