// Package logging builds the launcher's zap logger.
//
// Warnings and errors go to stderr as single console lines. When
// BLOOM_SPLASH_DEBUG is "1" or starts with t or y, everything down to debug
// level is also appended to /tmp/BloomSplash.log with timestamps.
//
// Stderr is shared with other output (the child log tail), so callers wrap it
// once with Locked and hand the same writer to New and to everything else.
package logging
