package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
)

// ClientStorages groups every local repository the sync core reads and
// writes. The event repository is built separately because it needs the
// remote event source from the adapter layer.
type ClientStorages struct {
	DB *DB

	Metadata      MetadataRepository
	SyncState     SyncStateRepository
	Conversations ConversationRepository
	Users         UserRepository
	Messages      MessageRepository
	FeatureConfig FeatureConfigRepository
}

// NewClientStorages opens the SQLite database at cfg.DB.DSN, runs pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db, logger), nil
}

// NewClientStoragesFromDB wires the repositories on top of an already
// migrated database.
func NewClientStoragesFromDB(db *DB, logger *logger.Logger) *ClientStorages {
	meta := NewMetadataRepository(db, logger)
	return &ClientStorages{
		DB:            db,
		Metadata:      meta,
		SyncState:     NewSyncStateRepository(meta, logger),
		Conversations: NewConversationRepository(db, logger),
		Users:         NewUserRepository(db, logger),
		Messages:      NewMessageRepository(db, logger),
		FeatureConfig: NewFeatureConfigRepository(meta, logger),
	}
}

// EventRepository binds the local cursor to remote.
func (s *ClientStorages) EventRepository(remote RemoteEventSource, logger *logger.Logger) EventRepository {
	return NewEventRepository(remote, s.Metadata, logger)
}

func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
