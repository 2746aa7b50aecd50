// Package splash runs the state machine that decides when the splash ends.
//
// # Overview
//
// Three producers feed one channel of Events:
//
//   - StartTicker posts TimerTick once per interval (1s by default)
//   - the child watcher posts ChildExited when Bloom terminates
//   - the window posts CloseRequested when the user closes the splash
//
// Loop.Run is the only consumer. On every TimerTick it bumps the poll counter
// and checks the launch marker; Bloom deletes /tmp/BloomLaunching.now once its
// own main window is up, so a missing marker means Bloom is ready.
//
// # Termination
//
// The loop returns a Reason as soon as any of these happen:
//
//	marker gone on a tick      -> ReasonReady
//	counter reaches MaxTicks   -> ReasonTimeout
//	ChildExited                -> ReasonChildDied
//	CloseRequested             -> ReasonClosed
//	ctx cancelled              -> ReasonInterrupted
//
// None of these are errors. Bloom either came up, is still coming up on its
// own, or has already gone; in every case the splash has nothing left to do.
//
// # Producers
//
// Post never blocks past the loop's lifetime: once ctx ends, pending sends
// are dropped. Producers may therefore outlive Run without leaking.
package splash
