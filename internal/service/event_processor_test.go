package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/mock"
	"github.com/MKhiriev/go-msg-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// receiverFunc — EventReceiver из функции.
type receiverFunc func(ctx context.Context, event models.Event) error

func (f receiverFunc) OnEvent(ctx context.Context, event models.Event) error { return f(ctx, event) }

func TestEventProcessor_ProcessEvent(t *testing.T) {
	boom := errors.New("receiver failed")

	tests := []struct {
		name          string
		event         models.Event
		receiverErr   error
		wantCursor    bool
		wantErr       error
		wantDelivered bool
	}{
		{
			name:          "persisted event moves cursor",
			event:         userEvent("e1"),
			wantCursor:    true,
			wantDelivered: true,
		},
		{
			name:          "transient event keeps cursor",
			event:         models.Event{ID: "e2", Type: EventUserUpdate, Category: models.EventCategoryUser, Transient: true},
			wantDelivered: true,
		},
		{
			name:          "receiver failure keeps cursor",
			event:         userEvent("e3"),
			receiverErr:   boom,
			wantErr:       boom,
			wantDelivered: true,
		},
		{
			name:          "unknown type is skipped",
			event:         models.Event{ID: "e4", Type: "user.something-new", Category: models.EventCategoryUser},
			receiverErr:   fmt.Errorf("%w: user.something-new", ErrUnknownEventType),
			wantCursor:    true,
			wantDelivered: true,
		},
		{
			name:       "category without receiver",
			event:      models.Event{ID: "e5", Type: "federation.delete", Category: models.EventCategoryUnknown},
			wantCursor: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			events := mock.NewMockEventRepository(ctrl)
			ctx := context.Background()
			if tt.wantCursor {
				events.EXPECT().UpdateLastProcessedEventID(ctx, tt.event.ID).Return(nil)
			}

			delivered := false
			p := NewEventProcessor(events, EventReceivers{
				User: receiverFunc(func(_ context.Context, e models.Event) error {
					delivered = true
					assert.Equal(t, tt.event.ID, e.ID)
					return tt.receiverErr
				}),
			}, logger.Nop())

			err := p.ProcessEvent(ctx, tt.event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantDelivered, delivered)
		})
	}
}

func TestEventProcessor_CursorWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	diskFull := errors.New("disk full")
	events := mock.NewMockEventRepository(ctrl)
	events.EXPECT().UpdateLastProcessedEventID(gomock.Any(), models.EventID("e1")).Return(diskFull)

	p := NewEventProcessor(events, EventReceivers{}, logger.Nop())
	assert.ErrorIs(t, p.ProcessEvent(context.Background(), userEvent("e1")), diskFull)
}
