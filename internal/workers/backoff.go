package workers

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// BackoffFactory returns a fresh backoff sequence. The supervisor asks for
// a new one at the start of every run, so a success resets the delay.
type BackoffFactory func() retry.Backoff

// ExponentialBackoff doubles the delay from base on every failure, with 10%
// jitter, never exceeding max.
func ExponentialBackoff(base, max time.Duration) BackoffFactory {
	return func() retry.Backoff {
		b := retry.NewExponential(base)
		b = retry.WithJitterPercent(10, b)
		return retry.WithCappedDuration(max, b)
	}
}

// ConstantBackoff always waits d.
func ConstantBackoff(d time.Duration) BackoffFactory {
	return func() retry.Backoff {
		return retry.NewConstant(d)
	}
}
