package journal

import (
	"math/rand"
	"time"
)

// Backoff bounds produced by retryDelay: bounded backoff with full jitter,
// start 100ms, cap 3s, per spec §4.1.
const (
	backoffStart = 100 * time.Millisecond
	backoffCap   = 3 * time.Second
)

// retryDelay returns a full-jitter backoff duration for the given retry
// attempt (0-indexed): a uniformly random duration between 0 and
// min(cap, start*2^attempt).
func retryDelay(attempt int, rng *rand.Rand) time.Duration {
	max := backoffStart
	for i := 0; i < attempt; i++ {
		max *= 2
		if max >= backoffCap {
			max = backoffCap
			break
		}
	}
	if max <= 0 {
		return 0
	}
	return time.Duration(rng.Int63n(int64(max)))
}
