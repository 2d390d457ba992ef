package crypto

import "errors"

var (
	// ErrNoCryptoBackend is returned by Coordinator.Transaction when
	// neither the MLS nor the Proteus backend is available. It signals a
	// broken environment and is never retried silently.
	ErrNoCryptoBackend = errors.New("no crypto backend available")

	// ErrClientUnavailable is returned by a client factory when its backend
	// is absent on this device. Providers treat it as "no client" rather
	// than as a failure.
	ErrClientUnavailable = errors.New("crypto client unavailable")

	errInvalidPhase = errors.New("invalid transaction phase transition")
)
