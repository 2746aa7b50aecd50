// Package state provides thread-safe launch status for bloom-splash.
//
// # Overview
//
// The splash loop runs on its own goroutine while the window surface runs on
// the main (UI) goroutine. Surfaces that render progress, such as the
// terminal splash, need to read the poll counter and phase without touching
// the loop's internals. Store is the meeting point.
//
// # Architecture
//
//	Producer (splash loop):        Consumer (surface):
//	┌────────────────┐            ┌─────────────────┐
//	│ store.Start()  │            │                 │
//	│ store.Tick(n)  │───────────→│ store.Snapshot()│
//	│ store.Finish() │  (mutex)   │      ↓          │
//	└────────────────┘            │  render splash  │
//	                              └─────────────────┘
//
// # Lifecycle
//
// The Snapshot Phase follows the launcher state machine:
//
//	PhaseInit        marker created, window built, child not yet running
//	PhaseRunning     child spawned, loop consuming events
//	PhaseTerminating loop ended; Reason says why
//
// # Concurrency Model
//
// A sync.RWMutex guards the snapshot. Snapshot contains only value fields so
// returning it by value is already a copy. The zero Store is ready to use and
// reports PhaseInit.
package state
