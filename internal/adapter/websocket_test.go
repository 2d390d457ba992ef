package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"

	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/models"
)

func nextLiveEvent(t *testing.T, ch <-chan models.LiveEvent) models.LiveEvent {
	t.Helper()
	select {
	case e, ok := <-ch:
		require.True(t, ok, "live events channel closed early")
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for live event")
		return models.LiveEvent{}
	}
}

func TestLiveEvents_DeliversAndCloses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/await", r.URL.Path)
		assert.Equal(t, "Bearer live-token", r.Header.Get("Authorization"))

		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		ctx := r.Context()
		_ = c.Write(ctx, websocket.MessageText, []byte(`{"id":"evt-1","type":"conversation.create"}`))
		_ = c.Write(ctx, websocket.MessageText, []byte(`not json`))
		_ = c.Write(ctx, websocket.MessageText, []byte(`{"id":"evt-2","type":"user.update","transient":true}`))
		_ = c.Close(websocket.StatusNormalClosure, "")
	}))
	defer srv.Close()

	stream, err := NewWebSocketEventStream(config.ClientAdapter{WebSocketAddress: srv.URL},
		func() string { return "live-token" }, nil, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := stream.LiveEvents(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.LiveEventOpen, nextLiveEvent(t, ch).Kind)

	first := nextLiveEvent(t, ch)
	assert.Equal(t, models.LiveEventReceived, first.Kind)
	assert.Equal(t, models.EventID("evt-1"), first.Event.ID)
	assert.Equal(t, models.EventCategoryConversation, first.Event.Category)
	assert.True(t, first.Event.Live)

	second := nextLiveEvent(t, ch)
	assert.Equal(t, models.EventID("evt-2"), second.Event.ID)
	assert.True(t, second.Event.Transient)

	closed := nextLiveEvent(t, ch)
	assert.Equal(t, models.LiveEventClosed, closed.Kind)
	assert.ErrorIs(t, closed.Err, ErrLiveStreamClosed)

	_, ok := <-ch
	assert.False(t, ok)
}

func TestLiveEvents_ContextCancelClosesChannel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer c.CloseNow()
		<-release
	}))
	defer srv.Close()
	defer close(release)

	stream, err := NewWebSocketEventStream(config.ClientAdapter{WebSocketAddress: srv.URL}, nil, nil, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := stream.LiveEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LiveEventOpen, nextLiveEvent(t, ch).Kind)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestLiveEvents_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	session := NewSessionWatcher("", logger.Nop())
	stream, err := NewWebSocketEventStream(config.ClientAdapter{WebSocketAddress: srv.URL}, nil, session, logger.Nop())
	require.NoError(t, err)

	_, err = stream.LiveEvents(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, LogoutReasonSessionRejected, <-session.Logouts())
}

func TestNewWebSocketEventStream_EmptyAddress(t *testing.T) {
	_, err := NewWebSocketEventStream(config.ClientAdapter{WebSocketAddress: "  "}, nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestNewWebSocketEventStream_DefaultScheme(t *testing.T) {
	stream, err := NewWebSocketEventStream(config.ClientAdapter{WebSocketAddress: "localhost:8081/"}, nil, nil, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8081", stream.(*webSocketEventStream).address)
}
