package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"nhooyr.io/websocket"

	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/models"
)

const (
	liveEventsBuffer    = 16
	liveEventsReadLimit = 1 << 20
)

type webSocketEventStream struct {
	address string
	token   func() string
	session *SessionWatcher

	logger *logger.Logger
}

// NewWebSocketEventStream returns a [LiveEventStream] dialing
// cfg.WebSocketAddress. token is read on every dial so a refreshed token is
// picked up on reconnect.
func NewWebSocketEventStream(cfg config.ClientAdapter, token func() string, session *SessionWatcher, logger *logger.Logger) (LiveEventStream, error) {
	address := strings.TrimSpace(cfg.WebSocketAddress)
	if address == "" {
		return nil, fmt.Errorf("empty websocket address")
	}
	if !strings.Contains(address, "://") {
		address = "ws://" + address
	}

	return &webSocketEventStream{
		address: strings.TrimRight(address, "/"),
		token:   token,
		session: session,
		logger:  logger,
	}, nil
}

func (w *webSocketEventStream) LiveEvents(ctx context.Context) (<-chan models.LiveEvent, error) {
	header := http.Header{}
	if w.token != nil {
		if token := w.token(); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	conn, resp, err := websocket.Dial(ctx, w.address+"/await", &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			if w.session != nil {
				w.session.Unauthorized(w.address)
			}
			return nil, fmt.Errorf("dial live events: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("dial live events: %w", err)
	}
	conn.SetReadLimit(liveEventsReadLimit)

	out := make(chan models.LiveEvent, liveEventsBuffer)
	go w.pump(ctx, conn, out)
	return out, nil
}

func (w *webSocketEventStream) pump(ctx context.Context, conn *websocket.Conn, out chan<- models.LiveEvent) {
	defer close(out)
	defer conn.Close(websocket.StatusNormalClosure, "")

	send := func(e models.LiveEvent) bool {
		select {
		case out <- e:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !send(models.LiveEvent{Kind: models.LiveEventOpen}) {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			closed := models.LiveEvent{Kind: models.LiveEventClosed, Err: ErrLiveStreamClosed}
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				closed.Err = fmt.Errorf("%w: %w", ErrLiveStreamClosed, err)
			}
			send(closed)
			return
		}

		var event models.Event
		if err := json.Unmarshal(data, &event); err != nil {
			w.logger.Warn().Err(err).Str("func", "webSocketEventStream.pump").Msg("dropping malformed live event")
			continue
		}
		event.Category = models.EventCategoryFromType(event.Type)
		event.Live = true

		if !send(models.LiveEvent{Kind: models.LiveEventReceived, Event: event}) {
			return
		}
	}
}

// EventSource joins the notification backlog and the live stream into the
// remote event source used by the store's event repository.
type EventSource struct {
	NotificationsAdapter
	LiveEventStream
}

func NewEventSource(notifications NotificationsAdapter, live LiveEventStream) *EventSource {
	return &EventSource{NotificationsAdapter: notifications, LiveEventStream: live}
}
