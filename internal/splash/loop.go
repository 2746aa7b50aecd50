package splash

import (
	"context"

	"go.uber.org/zap"

	"github.com/five82/bloomsplash/internal/state"
)

// DefaultMaxTicks bounds the splash at roughly one minute of one-second ticks.
const DefaultMaxTicks = 60

// Event is something that can end the splash.
type Event int

const (
	TimerTick Event = iota
	ChildExited
	CloseRequested
)

func (e Event) String() string {
	switch e {
	case TimerTick:
		return "tick"
	case ChildExited:
		return "child-exited"
	case CloseRequested:
		return "close-requested"
	default:
		return "unknown"
	}
}

// Reason says why the loop ended. Every reason is a successful launch from
// the caller's point of view.
type Reason int

const (
	ReasonReady Reason = iota
	ReasonTimeout
	ReasonChildDied
	ReasonClosed
	ReasonInterrupted
)

func (r Reason) String() string {
	switch r {
	case ReasonReady:
		return "ready"
	case ReasonTimeout:
		return "timeout"
	case ReasonChildDied:
		return "child died early"
	case ReasonClosed:
		return "window closed"
	case ReasonInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Loop consumes events until one of them ends the splash.
type Loop struct {
	// MaxTicks is the tick ceiling; zero uses DefaultMaxTicks.
	MaxTicks int
	// Pending reports whether the launch marker is still present.
	Pending func() bool
	// Store receives progress; may be nil.
	Store  *state.Store
	Logger *zap.Logger
}

// Run blocks until an event or ctx ends the splash and returns the reason.
// It must be the only consumer of events.
func (l *Loop) Run(ctx context.Context, events <-chan Event) Reason {
	maxTicks := l.MaxTicks
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reason := l.consume(ctx, events, maxTicks, logger)

	if l.Store != nil {
		l.Store.Finish(reason.String())
	}
	logger.Info("splash finished", zap.Stringer("reason", reason))
	return reason
}

func (l *Loop) consume(ctx context.Context, events <-chan Event, maxTicks int, logger *zap.Logger) Reason {
	ticks := 0
	for {
		if ctx.Err() != nil {
			return ReasonInterrupted
		}
		select {
		case <-ctx.Done():
			return ReasonInterrupted
		case ev := <-events:
			switch ev {
			case ChildExited:
				return ReasonChildDied
			case CloseRequested:
				return ReasonClosed
			case TimerTick:
				ticks++
				if l.Store != nil {
					l.Store.Tick(ticks)
				}
				if l.Pending != nil && !l.Pending() {
					logger.Debug("launch marker gone", zap.Int("tick", ticks))
					return ReasonReady
				}
				if ticks >= maxTicks {
					return ReasonTimeout
				}
			default:
				logger.Warn("ignoring unknown event", zap.Int("event", int(ev)))
			}
		}
	}
}
