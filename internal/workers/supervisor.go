// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/metrics"
)

// Producer produces items by calling emit and returns when the sequence is
// finished. A nil return means the sequence completed normally.
type Producer[T any] func(ctx context.Context, emit func(T)) error

// GateFunc subscribes to the level-triggered gate of a supervisor. The
// channel yields true while the producer may run.
type GateFunc func(ctx context.Context) <-chan bool

// Decision is what a Recovery wants the supervisor to do with a failure.
type Decision int

const (
	Retry Decision = iota
	GiveUp
)

// Recovery inspects a failed run. It may trigger side effects such as a
// logout before returning its decision.
type Recovery func(ctx context.Context, err error) Decision

// Failure describes a failed run.
type Failure struct {
	Err error

	// RetryIn is the delay before the next attempt. Zero when GaveUp.
	RetryIn time.Duration
	GaveUp  bool
}

// Hooks are called from the run goroutine, one at a time.
type Hooks[T any] struct {
	OnItem     func(T)
	OnComplete func()
	OnFailure  func(Failure)
	OnCancel   func()
}

// Supervisor runs a Producer while its gate is open.
//
// When the gate opens a run starts; when it closes the run is canceled and
// awaited. A run that fails with anything but cancellation is retried from
// scratch after a backoff delay unless Recovery gives up. Cancellation is
// never retried. A run that completes is not restarted until the gate closes
// and opens again.
type Supervisor[T any] struct {
	name       string
	gate       GateFunc
	produce    Producer[T]
	hooks      Hooks[T]
	recovery   Recovery
	newBackoff BackoffFactory
	log        *logger.Logger

	mu     sync.Mutex
	active *activeRun
}

type activeRun struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSupervisor returns a supervisor. recovery may be nil, meaning always
// retry.
func NewSupervisor[T any](name string, gate GateFunc, produce Producer[T], hooks Hooks[T], recovery Recovery, backoff BackoffFactory, log *logger.Logger) *Supervisor[T] {
	if recovery == nil {
		recovery = func(context.Context, error) Decision { return Retry }
	}
	return &Supervisor[T]{
		name:       name,
		gate:       gate,
		produce:    produce,
		hooks:      hooks,
		recovery:   recovery,
		newBackoff: backoff,
		log:        log.WithComponent(name),
	}
}

// Run follows the gate until ctx is done or the gate channel is closed.
func (s *Supervisor[T]) Run(ctx context.Context) error {
	defer s.stop()

	open := false
	gate := s.gate(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case v, ok := <-gate:
			if !ok {
				return nil
			}
			if v == open {
				continue
			}
			open = v
			if open {
				s.log.Debug().Msg("gate opened, starting run")
				s.start(ctx)
			} else {
				s.log.Debug().Msg("gate closed, canceling run")
				s.stop()
			}
		}
	}
}

// Running reports whether a run is in progress.
func (s *Supervisor[T]) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return false
	}
	select {
	case <-s.active.done:
		return false
	default:
		return true
	}
}

func (s *Supervisor[T]) start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	run := &activeRun{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.active = run
	s.mu.Unlock()

	go func() {
		defer close(run.done)
		s.loop(ctx)
	}()
}

func (s *Supervisor[T]) stop() {
	s.mu.Lock()
	run := s.active
	s.active = nil
	s.mu.Unlock()

	if run == nil {
		return
	}
	run.cancel()
	<-run.done
}

func (s *Supervisor[T]) loop(ctx context.Context) {
	backoff := s.newBackoff()
	emit := func(item T) {
		if s.hooks.OnItem != nil {
			s.hooks.OnItem(item)
		}
	}

	for {
		err := s.produce(ctx, emit)
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			s.log.Debug().Msg("run canceled")
			if s.hooks.OnCancel != nil {
				s.hooks.OnCancel()
			}
			return
		}

		if err == nil {
			s.log.Info().Msg("run completed")
			if s.hooks.OnComplete != nil {
				s.hooks.OnComplete()
			}
			return
		}

		delay, exhausted := backoff.Next()
		if s.recovery(ctx, err) == GiveUp || exhausted {
			s.log.Error().Err(err).Msg("run failed, giving up")
			if s.hooks.OnFailure != nil {
				s.hooks.OnFailure(Failure{Err: err, GaveUp: true})
			}
			return
		}

		metrics.SupervisorRetries.WithLabelValues(s.name).Inc()
		s.log.Warn().Err(err).Dur("retry_in", delay).Msg("run failed, retrying")
		if s.hooks.OnFailure != nil {
			s.hooks.OnFailure(Failure{Err: err, RetryIn: delay})
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			if s.hooks.OnCancel != nil {
				s.hooks.OnCancel()
			}
			return
		case <-timer.C:
		}
	}
}
