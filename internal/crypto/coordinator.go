// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/metrics"
)

// TransactionContext is handed to a transaction function. A side is only
// present when its backend is available; callers must check the ok result.
type TransactionContext struct {
	mls     MLSContext
	proteus ProteusContext
}

// MLS returns the MLS sub-context.
func (t TransactionContext) MLS() (MLSContext, bool) {
	return t.mls, t.mls != nil
}

// Proteus returns the Proteus sub-context.
func (t TransactionContext) Proteus() (ProteusContext, bool) {
	return t.proteus, t.proteus != nil
}

// TransactionFunc is the unit of work run by Coordinator.Transaction.
type TransactionFunc func(ctx context.Context, tx TransactionContext) error

type txPhase int

const (
	phaseNeitherOpen txPhase = iota
	phaseMLSOpen
	phaseProteusOpen
	phaseBothOpen
)

func (p txPhase) String() string {
	switch p {
	case phaseMLSOpen:
		return "mls_open"
	case phaseProteusOpen:
		return "proteus_open"
	case phaseBothOpen:
		return "both_open"
	default:
		return "neither_open"
	}
}

// transaction tracks which backend transactions are open. MLS is always
// opened first; Proteus is nested inside it.
type transaction struct {
	name    string
	phase   txPhase
	context TransactionContext
}

func (t *transaction) openMLS(mls MLSContext) error {
	if t.phase != phaseNeitherOpen {
		return fmt.Errorf("%w: open mls in phase %s", errInvalidPhase, t.phase)
	}
	t.context.mls = mls
	t.phase = phaseMLSOpen
	return nil
}

func (t *transaction) openProteus(proteus ProteusContext) error {
	switch t.phase {
	case phaseNeitherOpen:
		t.phase = phaseProteusOpen
	case phaseMLSOpen:
		t.phase = phaseBothOpen
	default:
		return fmt.Errorf("%w: open proteus in phase %s", errInvalidPhase, t.phase)
	}
	t.context.proteus = proteus
	return nil
}

type txContextKey struct{}

// Coordinator runs units of work across the MLS and Proteus backends as one
// transaction. Only one transaction runs at a time; a transaction function
// that calls Transaction again with its own context reuses the open
// transaction.
type Coordinator struct {
	mls     *MLSClientProvider
	proteus *ProteusClientProvider
	slot    chan struct{}
	log     *logger.Logger
}

// NewCoordinator returns a coordinator over the given providers. A nil
// provider means that backend is never available.
func NewCoordinator(mls *MLSClientProvider, proteus *ProteusClientProvider, log *logger.Logger) *Coordinator {
	return &Coordinator{
		mls:     mls,
		proteus: proteus,
		slot:    make(chan struct{}, 1),
		log:     log.WithComponent("crypto_tx"),
	}
}

// Transaction runs fn with the available backends. With both backends the
// MLS transaction is opened first and the Proteus transaction inside it, so
// an error from fn or from the Proteus commit fails the MLS transaction too.
// name is used for logging only.
func (c *Coordinator) Transaction(ctx context.Context, name string, fn TransactionFunc) error {
	if open, ok := ctx.Value(txContextKey{}).(*transaction); ok {
		c.log.Debug().Str("name", name).Str("outer", open.name).Msg("reusing open crypto transaction")
		return fn(ctx, open.context)
	}

	mlsClient, hasMLS, err := c.mlsClient(ctx)
	if err != nil {
		return err
	}
	proteusClient, hasProteus, err := c.proteusClient(ctx)
	if err != nil {
		return err
	}
	if !hasMLS && !hasProteus {
		c.log.Error().Str("name", name).Err(ErrNoCryptoBackend).Msg("cannot open crypto transaction")
		return ErrNoCryptoBackend
	}

	select {
	case c.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-c.slot }()

	tx := &transaction{name: name}
	err = c.run(ctx, tx, mlsClient, proteusClient, fn)

	backends := backendsLabel(hasMLS, hasProteus)
	switch {
	case err == nil:
		metrics.CryptoTransactions.WithLabelValues(backends, metrics.OutcomeSuccess).Inc()
	case errors.Is(err, context.Canceled):
		metrics.CryptoTransactions.WithLabelValues(backends, metrics.OutcomeCanceled).Inc()
	default:
		metrics.CryptoTransactions.WithLabelValues(backends, metrics.OutcomeFailure).Inc()
		c.log.Warn().Err(err).Str("name", name).Str("backends", backends).Msg("crypto transaction failed")
	}
	return err
}

func (c *Coordinator) run(ctx context.Context, tx *transaction, mls MLSClient, proteus ProteusClient, fn TransactionFunc) error {
	invoke := func(ctx context.Context) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx), tx.context)
	}

	withProteus := func(ctx context.Context) error {
		if proteus == nil {
			return invoke(ctx)
		}
		return proteus.Transaction(ctx, tx.name, func(ctx context.Context, pctx ProteusContext) error {
			if err := tx.openProteus(pctx); err != nil {
				return err
			}
			return invoke(ctx)
		})
	}

	if mls == nil {
		return withProteus(ctx)
	}
	return mls.Transaction(ctx, tx.name, func(ctx context.Context, mctx MLSContext) error {
		if err := tx.openMLS(mctx); err != nil {
			return err
		}
		return withProteus(ctx)
	})
}

func (c *Coordinator) mlsClient(ctx context.Context) (MLSClient, bool, error) {
	if c.mls == nil {
		return nil, false, nil
	}
	return c.mls.Client(ctx)
}

func (c *Coordinator) proteusClient(ctx context.Context) (ProteusClient, bool, error) {
	if c.proteus == nil {
		return nil, false, nil
	}
	return c.proteus.Client(ctx)
}

func backendsLabel(mls, proteus bool) string {
	switch {
	case mls && proteus:
		return "mls+proteus"
	case mls:
		return "mls"
	default:
		return "proteus"
	}
}
