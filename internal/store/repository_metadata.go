package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
)

// Keys of the sync_metadata table.
const (
	keyLastProcessedEventID  = "last_processed_event_id"
	keyLastSlowSyncCompleted = "last_slow_sync_completed_at"
	keySlowSyncVersion       = "slow_sync_version"
	keyFeatureConfig         = "feature_config"

	// KeySelfTeam and KeyLegalHold are written by slow sync steps.
	KeySelfTeam  = "self_team"
	KeyLegalHold = "legal_hold_status"
)

type metadataRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMetadataRepository(db *DB, logger *logger.Logger) MetadataRepository {
	return &metadataRepository{db: db, logger: logger}
}

func (r *metadataRepository) Value(ctx context.Context, key string) (string, error) {
	stmt, args, err := r.db.builder.
		Select("value").
		From("sync_metadata").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, stmt, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "metadataRepository.Value").Str("key", key).Msg("failed to read metadata")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, nil
}

func (r *metadataRepository) SetValue(ctx context.Context, key, value string) error {
	_, err := r.db.exec(ctx, r.db.builder.
		Insert("sync_metadata").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP"))
	if err != nil {
		r.logger.Err(err).Str("func", "metadataRepository.SetValue").Str("key", key).Msg("failed to write metadata")
		return err
	}
	return nil
}

func (r *metadataRepository) DeleteValue(ctx context.Context, key string) error {
	_, err := r.db.exec(ctx, r.db.builder.
		Delete("sync_metadata").
		Where(sq.Eq{"key": key}))
	if err != nil {
		r.logger.Err(err).Str("func", "metadataRepository.DeleteValue").Str("key", key).Msg("failed to delete metadata")
		return err
	}
	return nil
}
