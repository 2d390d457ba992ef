package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/models"
)

// featureConfigRepository keeps the feature flags as one JSON document in
// sync_metadata.
type featureConfigRepository struct {
	meta   MetadataRepository
	logger *logger.Logger
}

func NewFeatureConfigRepository(meta MetadataRepository, logger *logger.Logger) FeatureConfigRepository {
	return &featureConfigRepository{meta: meta, logger: logger}
}

func (r *featureConfigRepository) FeatureConfig(ctx context.Context) (models.FeatureConfig, error) {
	raw, err := r.meta.Value(ctx, keyFeatureConfig)
	if errors.Is(err, ErrNotFound) {
		return models.DefaultFeatureConfig(), nil
	}
	if err != nil {
		return models.FeatureConfig{}, fmt.Errorf("read feature config: %w", err)
	}

	var cfg models.FeatureConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		r.logger.Err(err).Str("func", "featureConfigRepository.FeatureConfig").Msg("malformed feature config, using defaults")
		return models.DefaultFeatureConfig(), nil
	}
	return cfg, nil
}

func (r *featureConfigRepository) UpdateFeatureConfig(ctx context.Context, cfg models.FeatureConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode feature config: %w", err)
	}
	if err := r.meta.SetValue(ctx, keyFeatureConfig, string(raw)); err != nil {
		return fmt.Errorf("persist feature config: %w", err)
	}
	return nil
}
