package usecase

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttler paces catalog-bound work. The batch loop calls Wait once per
// processed row; implementations decide whether a pause is due.
type Throttler interface {
	Wait(ctx context.Context) error
}

// FixedCadence pauses unconditionally after every Every rows. Not adaptive,
// no backoff on error; it exists to respect the Mouser request-rate ceiling.
type FixedCadence struct {
	Every     int
	Pause     time.Duration
	processed int
}

// NewFixedCadence returns the default throttle: one second of pause after
// every ten rows.
func NewFixedCadence() *FixedCadence {
	return &FixedCadence{Every: 10, Pause: time.Second}
}

func (f *FixedCadence) Wait(ctx context.Context) error {
	f.processed++
	if f.Every <= 0 || f.processed%f.Every != 0 {
		return nil
	}

	timer := time.NewTimer(f.Pause)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LimiterThrottle adapts a shared rate.Limiter to the Throttler interface,
// the aggregate cap used in serve mode where batches can overlap.
type LimiterThrottle struct {
	Limiter *rate.Limiter
}

func (l LimiterThrottle) Wait(ctx context.Context) error {
	return l.Limiter.Wait(ctx)
}
