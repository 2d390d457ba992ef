package service

import (
	"context"

	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
)

// EpochForwarder feeds the epoch changes reported by the MLS backend into
// the epoch bus. The MLS client is resolved once sync criteria are ready,
// since the backend only exists after client registration.
type EpochForwarder struct {
	criteria SyncCriteriaProvider
	mls      *crypto.MLSClientProvider
	epochs   *crypto.EpochBus
	logger   *logger.Logger
}

func NewEpochForwarder(criteria SyncCriteriaProvider, mls *crypto.MLSClientProvider, epochs *crypto.EpochBus, logger *logger.Logger) *EpochForwarder {
	return &EpochForwarder{
		criteria: criteria,
		mls:      mls,
		epochs:   epochs,
		logger:   logger.WithComponent("epoch_forwarder"),
	}
}

// Run forwards the backend epoch stream until ctx is done. A missing MLS
// backend is not an error.
func (f *EpochForwarder) Run(ctx context.Context) error {
	if f.mls == nil || f.epochs == nil {
		return nil
	}

	for resolution := range f.criteria.Criteria(ctx) {
		if !resolution.Ready {
			continue
		}

		client, ok, err := f.mls.Client(ctx)
		if err != nil {
			f.logger.Warn().Err(err).Msg("resolve mls client")
			continue
		}
		if !ok {
			f.logger.Debug().Msg("no mls backend, epoch stream not forwarded")
			continue
		}

		changes, err := client.EpochChanges(ctx)
		if err != nil {
			f.logger.Warn().Err(err).Msg("open mls epoch stream")
			continue
		}

		f.logger.Info().Msg("forwarding mls epoch changes")
		_ = f.epochs.Forward(ctx, changes)
		if ctx.Err() != nil {
			return nil
		}
		f.logger.Warn().Msg("mls epoch stream closed")
	}
	return nil
}
