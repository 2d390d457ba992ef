package crypto

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/models"
)

const epochSubscriberBuffer = 64

// EpochBus fans out MLS epoch changes to in-process subscribers. It is fed
// by the MLS client epoch stream and by operations that change group
// membership.
type EpochBus struct {
	mu   sync.Mutex
	subs map[chan models.EpochChange]struct{}
	log  *logger.Logger
}

func NewEpochBus(log *logger.Logger) *EpochBus {
	return &EpochBus{
		subs: make(map[chan models.EpochChange]struct{}),
		log:  log.WithComponent("epoch_bus"),
	}
}

// Subscribe returns a channel of epoch changes that is closed when ctx is
// done.
func (b *EpochBus) Subscribe(ctx context.Context) <-chan models.EpochChange {
	ch := make(chan models.EpochChange, epochSubscriberBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		close(ch)
		b.mu.Unlock()
	}()

	return ch
}

// Publish delivers change to every live subscriber. A subscriber whose
// buffer is full misses the change.
func (b *EpochBus) Publish(ctx context.Context, change models.EpochChange) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- change:
		default:
			b.log.Warn().
				Str("group_id", string(change.GroupID)).
				Uint64("epoch", change.Epoch).
				Msg("epoch subscriber is full, change dropped")
		}
	}
	return nil
}

// Forward publishes every change read from src until src is closed or ctx
// is done.
func (b *EpochBus) Forward(ctx context.Context, src <-chan models.EpochChange) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case change, ok := <-src:
			if !ok {
				b.log.Debug().Msg("epoch source closed")
				return nil
			}
			if err := b.Publish(ctx, change); err != nil {
				return err
			}
		}
	}
}
