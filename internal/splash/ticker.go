package splash

import (
	"context"
	"time"
)

const defaultTickInterval = time.Second

// StartTicker launches a goroutine that posts a TimerTick every interval
// until ctx is done. It returns immediately.
func StartTicker(ctx context.Context, events chan<- Event, interval time.Duration) {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !Post(ctx, events, TimerTick) {
					return
				}
			}
		}
	}()
}

// Post delivers ev unless ctx ends first. It reports whether ev was delivered.
func Post(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
