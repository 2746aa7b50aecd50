package state

import (
	"sync"
	"time"
)

// Phase is where the launcher is in its lifecycle.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseRunning
	PhaseTerminating
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseRunning:
		return "running"
	case PhaseTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// Snapshot represents the latest launch status available to the splash surfaces.
type Snapshot struct {
	Phase       Phase
	Ticks       int
	MaxTicks    int
	ChildPID    int
	Reason      string
	Started     time.Time
	LastUpdated time.Time
}

// Remaining returns the ticks left before the timeout ends the splash.
func (s Snapshot) Remaining() int {
	if s.MaxTicks <= s.Ticks {
		return 0
	}
	return s.MaxTicks - s.Ticks
}

// Store coordinates updates from the splash loop with reads from the UI goroutine.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Start records the child and enters the running phase.
func (s *Store) Start(pid, maxTicks int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot = Snapshot{
		Phase:       PhaseRunning,
		MaxTicks:    maxTicks,
		ChildPID:    pid,
		Started:     now,
		LastUpdated: now,
	}
}

// Tick records the current poll counter.
func (s *Store) Tick(ticks int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Ticks = ticks
	s.snapshot.LastUpdated = time.Now()
}

// Finish enters the terminating phase with a reason for the logs and UI.
func (s *Store) Finish(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Phase = PhaseTerminating
	s.snapshot.Reason = reason
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}
