package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/mock"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
	"github.com/MKhiriev/go-msg-sync/models"
	"go.uber.org/mock/gomock"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

var (
	selfID  = models.UserID{Value: "self-user", Domain: "example.com"}
	aliceID = models.UserID{Value: "alice", Domain: "example.com"}
	bobID   = models.UserID{Value: "bob", Domain: "example.com"}

	proteusConvA = models.ConversationID{Value: "proteus-a", Domain: "example.com"}
	proteusConvB = models.ConversationID{Value: "proteus-b", Domain: "example.com"}
	mlsConv      = models.ConversationID{Value: "mls-1on1", Domain: "example.com"}
)

// memMetadata — in-memory MetadataRepository, чтобы использовать настоящий
// syncStateRepository без базы.
type memMetadata struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemMetadata() *memMetadata {
	return &memMetadata{values: make(map[string]string)}
}

func (m *memMetadata) Value(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m *memMetadata) SetValue(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memMetadata) DeleteValue(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func newSyncState() store.SyncStateRepository {
	return store.NewSyncStateRepository(newMemMetadata(), logger.Nop())
}

// stubCriteria — управляемый SyncCriteriaProvider.
type stubCriteria struct {
	obs *utils.Observable[models.SyncCriteriaResolution]
}

func newStubCriteria(ready bool) *stubCriteria {
	initial := models.MissingRequirement(ReasonClientNotRegistered)
	if ready {
		initial = models.SyncCriteriaReady()
	}
	return &stubCriteria{obs: utils.NewObservable(initial)}
}

func (s *stubCriteria) Criteria(ctx context.Context) <-chan models.SyncCriteriaResolution {
	return s.obs.Subscribe(ctx)
}

func (s *stubCriteria) Current() models.SyncCriteriaResolution {
	return s.obs.Value()
}

func (s *stubCriteria) setReady(ready bool) {
	if ready {
		s.obs.Set(models.SyncCriteriaReady())
		return
	}
	s.obs.Set(models.MissingRequirement(ReasonClientNotRegistered))
}

// recordingLogout запоминает причины выхода.
type recordingLogout struct {
	mu      sync.Mutex
	reasons []string
}

func (r *recordingLogout) Logout(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
}

func (r *recordingLogout) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reasons)
}

// stubRestarter считает принудительные перезапуски slow sync.
type stubRestarter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubRestarter) ForceRestart(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

// mlsProviderFor returns a provider that hands out client, or no client
// when client is nil.
func mlsProviderFor(client crypto.MLSClient) *crypto.MLSClientProvider {
	return crypto.NewProvider[crypto.MLSClient]("mls", func(context.Context) (crypto.MLSClient, error) {
		if client == nil {
			return nil, crypto.ErrClientUnavailable
		}
		return client, nil
	})
}

// mlsTransactionsInto makes every MLS transaction of client run against mlsCtx.
func mlsTransactionsInto(client *mock.MockMLSClient, mlsCtx crypto.MLSContext) {
	client.EXPECT().
		Transaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, fn func(context.Context, crypto.MLSContext) error) error {
			return fn(ctx, mlsCtx)
		}).
		AnyTimes()
}

func runInBackground(t *testing.T, run func(ctx context.Context) error) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func conversationID(c models.ConversationID) *models.ConversationID {
	return &c
}
