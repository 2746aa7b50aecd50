// Package logtail reads the end of the captured child log.
//
// When Bloom dies during startup the splash disappears and the user is left
// with nothing. If child output is being captured (child_log in the config),
// the launcher echoes its last lines to stderr so the failure is visible.
//
// Read keeps a ring buffer of maxLines entries and scans the file once, so
// memory stays O(maxLines) regardless of file size. Missing files are not an
// error: the child may have died before writing anything.
package logtail
