// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared across the client: the
// Observable state holder, id generation, JWT inspection, the resty client
// wrapper and JSON response writing.
package utils

import (
	"context"
	"sync"
)

// Observable holds a value and pushes it to subscribers. It is
// level-triggered: a new subscriber always receives the current value
// first, and a slow subscriber only ever sees the latest value (older
// values are conflated, never queued).
type Observable[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[chan T]struct{}
}

// NewObservable returns an Observable holding initial.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value: initial,
		subs:  make(map[chan T]struct{}),
	}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores v and notifies every subscriber.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.setLocked(v)
}

// Update atomically replaces the value with fn(current).
func (o *Observable[T]) Update(fn func(T) T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.setLocked(fn(o.value))
}

func (o *Observable[T]) setLocked(v T) {
	o.value = v
	for ch := range o.subs {
		offerLatest(ch, v)
	}
}

// Subscribe returns a channel that yields the current value and then every
// later value. The channel is closed once ctx is done.
func (o *Observable[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	o.mu.Lock()
	ch <- o.value
	o.subs[ch] = struct{}{}
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		o.mu.Lock()
		delete(o.subs, ch)
		close(ch)
		o.mu.Unlock()
	}()

	return ch
}

// offerLatest replaces whatever is buffered in ch with v. ch must have a
// buffer of one and the caller must be its only sender.
func offerLatest[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

// Distinct forwards values from in, dropping consecutive duplicates. The
// returned channel conflates like an Observable subscription and is closed
// when in is closed or ctx is done.
func Distinct[T comparable](ctx context.Context, in <-chan T) <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)
		var (
			last    T
			hasLast bool
		)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				if hasLast && v == last {
					continue
				}
				last, hasLast = v, true
				offerLatest(out, v)
			}
		}
	}()

	return out
}
