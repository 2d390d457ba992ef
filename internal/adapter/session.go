package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
)

// Logout reasons published by SessionWatcher.
const (
	LogoutReasonSessionExpired  = "session expired"
	LogoutReasonSessionRejected = "session rejected by backend"
)

// SessionWatcher turns an expiring access token or a 401 from the backend
// into a logout reason. Only the first reason is kept until it is read.
type SessionWatcher struct {
	mu     sync.Mutex
	token  string
	reset  chan struct{}
	logout chan string

	logger *logger.Logger
}

func NewSessionWatcher(token string, logger *logger.Logger) *SessionWatcher {
	return &SessionWatcher{
		token:  token,
		reset:  make(chan struct{}, 1),
		logout: make(chan string, 1),
		logger: logger,
	}
}

// Logouts yields logout reasons.
func (s *SessionWatcher) Logouts() <-chan string {
	return s.logout
}

// SetToken replaces the watched token and restarts the expiry timer.
func (s *SessionWatcher) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	select {
	case s.reset <- struct{}{}:
	default:
	}
}

// Unauthorized reports a request rejected with 401.
func (s *SessionWatcher) Unauthorized(url string) {
	s.logger.Warn().Str("url", url).Msg("backend rejected the session")
	s.publish(LogoutReasonSessionRejected)
}

// Logout publishes an explicit logout reason, e.g. from a recovery
// handler that gave up.
func (s *SessionWatcher) Logout(reason string) {
	s.publish(reason)
}

func (s *SessionWatcher) publish(reason string) {
	select {
	case s.logout <- reason:
	default:
	}
}

func (s *SessionWatcher) expiry() (time.Time, bool) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return time.Time{}, false
	}
	claims, err := utils.InspectJWTToken(token)
	if err != nil {
		s.logger.Warn().Err(err).Msg("access token is not a JWT, expiry is not watched")
		return time.Time{}, false
	}
	if claims.ExpiresAt.IsZero() {
		return time.Time{}, false
	}
	return claims.ExpiresAt, true
}

// Run waits for the token to expire and publishes LogoutReasonSessionExpired.
// It returns nil when ctx ends.
func (s *SessionWatcher) Run(ctx context.Context) error {
	for {
		var (
			timer   *time.Timer
			expired <-chan time.Time
		)
		if at, ok := s.expiry(); ok {
			timer = time.NewTimer(time.Until(at))
			expired = timer.C
		}
		stop := func() {
			if timer != nil {
				timer.Stop()
			}
		}

		select {
		case <-ctx.Done():
			stop()
			return nil
		case <-s.reset:
			stop()
		case <-expired:
			s.logger.Info().Msg("access token expired")
			s.publish(LogoutReasonSessionExpired)
			select {
			case <-ctx.Done():
				return nil
			case <-s.reset:
			}
		}
	}
}
