// Package sentinel manages the launch marker file Bloom deletes when it is ready.
package sentinel
