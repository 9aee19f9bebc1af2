package service

import (
	"math"
	"math/rand"
	"time"
)

// Backoff is the delay before restarting a worker slot that keeps crashing.
// The n-th consecutive crash waits Min*Factor^(n-1), capped at Max. With
// Jitter the wait is drawn from the upper half of that value.
type Backoff struct {
	Min    time.Duration
	Max    time.Duration
	Factor float64
	Jitter bool
}

func NewBackoff(min, max time.Duration, factor float64) *Backoff {
	return &Backoff{Min: min, Max: max, Factor: factor, Jitter: true}
}

// Duration returns the delay after the given number of consecutive crashes.
func (b *Backoff) Duration(crashes int) time.Duration {
	if b.Min <= 0 {
		return 0
	}

	delay := b.nominal(crashes)
	if !b.Jitter {
		return delay
	}
	half := int64(delay) / 2
	return time.Duration(half + rand.Int63n(int64(delay)-half+1))
}

func (b *Backoff) nominal(crashes int) time.Duration {
	limit := b.Max
	if limit < b.Min {
		limit = b.Min
	}
	if crashes <= 1 {
		return b.Min
	}

	scaled := float64(b.Min) * math.Pow(b.Factor, float64(crashes-1))
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) || scaled >= float64(limit) {
		return limit
	}
	return time.Duration(scaled)
}
