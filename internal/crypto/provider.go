// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ClientFactory builds a backend client. It returns ErrClientUnavailable
// when the backend does not exist on this device.
type ClientFactory[C any] func(ctx context.Context) (C, error)

// Provider owns a lazily built, cached backend client. The first successful
// factory call is cached until Clear; failures are not cached.
type Provider[C any] struct {
	name    string
	factory ClientFactory[C]

	mu     sync.Mutex
	client C
	built  bool
}

// MLSClientProvider provides the MLS client.
type MLSClientProvider = Provider[MLSClient]

// ProteusClientProvider provides the Proteus client.
type ProteusClientProvider = Provider[ProteusClient]

// NewProvider returns a provider for the named backend.
func NewProvider[C any](name string, factory ClientFactory[C]) *Provider[C] {
	return &Provider[C]{name: name, factory: factory}
}

// Client returns the cached client, building it on first use.
// ok is false when the backend is unavailable.
func (p *Provider[C]) Client(ctx context.Context) (client C, ok bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.built {
		return p.client, true, nil
	}

	var zero C
	if p.factory == nil {
		return zero, false, nil
	}

	c, err := p.factory(ctx)
	if errors.Is(err, ErrClientUnavailable) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("build %s client: %w", p.name, err)
	}

	p.client, p.built = c, true
	return c, true, nil
}

// Clear drops the cached client so the next call rebuilds it. Called on
// logout.
func (p *Provider[C]) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	var zero C
	p.client, p.built = zero, false
}
