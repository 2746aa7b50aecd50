// Package config handles loading the optional bloom-splash configuration file.
//
// # Overview
//
// The launcher works with no configuration at all: Bloom and the launcher
// agree on fixed paths. The config file exists so packagers (flatpak,
// alpha/beta channel builds) can move those paths or pick a window backend
// without rebuilding.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided (BLOOM_SPLASH_CONFIG), use it
//  2. Otherwise, use ~/.config/bloom-splash/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Sentinel: /tmp/BloomLaunching.now
//   - Payload: Bloom.exe (next to the launcher)
//   - Interpreter: picked from FLATPAK_ID, /opt/mono5-sil, /usr/bin/mono
//   - Image: <launcher dir>/bloom-splash.png
//   - Backend: auto
//   - Timeout: 60 ticks of 1s
//   - Debug log: /tmp/BloomSplash.log (only written when BLOOM_SPLASH_DEBUG is truthy)
//   - Child log: none, the child inherits stdout/stderr
//
// # TOML Format
//
//	sentinel = "/tmp/BloomLaunching.now"
//	payload = "Bloom.exe"
//	backend = "gtk"
//	timeout_ticks = 60
//	tick_interval = "1s"
//	child_log = "~/.cache/bloom-child.log"
//
// Paths support ~ expansion and are made absolute. Unknown backends and
// unparsable intervals are errors; empty or zero values keep the default.
package config
