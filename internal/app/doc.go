// Package app is the composition root of the Bloom splash launcher.
//
// # Overview
//
// Run wires configuration, the launch context, the marker file, the splash
// window and the child process together, then blocks in the splash loop until
// Bloom signals readiness or something else ends the splash.
//
// # Setup Order
//
//  1. Load ~/.config/bloom-splash/config.toml (or BLOOM_SPLASH_CONFIG)
//  2. Resolve the launch context: launcher directory, mono interpreter, launch id
//  3. Create /tmp/BloomLaunching.now exclusively
//  4. Load the splash image
//  5. Resolve the payload and build the argument vector and environment
//  6. Construct the splash window (gtk, fyne, terminal or headless)
//  7. Spawn Bloom
//
// Any failure in these steps is returned and the caller exits with status 1.
// Once the marker exists it is removed on every return path.
//
// # Splash Loop
//
//	┌──────────────┐   TimerTick      ┌──────────────┐
//	│ StartTicker  │ ───────────────> │              │
//	└──────────────┘                  │              │
//	┌──────────────┐   ChildExited    │  splash.Loop │ ──> Reason
//	│ Child.Watch  │ ───────────────> │              │
//	└──────────────┘                  │              │
//	┌──────────────┐   CloseRequested │              │
//	│ Surface.Run  │ ───────────────> │              │
//	└──────────────┘                  └──────────────┘
//
// The window runs on the calling goroutine because GTK and fyne expect the
// main thread. The loop runs on its own goroutine and cancels the window when
// it returns. Cancelling ctx (SIGINT, SIGTERM) ends the loop as well.
//
// Every Reason is a successful launch. Bloom is never killed by the launcher;
// it outlives the splash.
package app
