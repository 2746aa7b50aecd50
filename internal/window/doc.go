// Package window abstracts the splash surface.
//
// # Backends
//
// Concrete surfaces live in subpackages so the cgo toolkits stay out of
// packages that do not need them:
//
//   - gtkwin: undecorated GTK3 window (gotk3)
//   - fynewin: fyne splash window
//   - termwin: bubbletea status box on stderr
//   - Headless: nothing at all
//
// The command registers the backends it links in a Registry. With backend
// "auto", Candidates tries gtk and fyne when DISPLAY or WAYLAND_DISPLAY is
// set, the terminal when stderr is a TTY, and finally Headless. The first
// backend that opens wins; an explicitly configured backend gets no fallback.
//
// # Threading
//
// Surface.Run must be called from the main goroutine. It blocks until its
// context ends, and reports close requests through the onClose callback
// instead of tearing itself down.
package window
