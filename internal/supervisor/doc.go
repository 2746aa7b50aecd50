// Package supervisor spawns Bloom and reports when it exits.
//
// The child runs in the launcher's working directory with the environment
// built by package environ. It is never killed: the splash only watches for
// its exit, and Bloom keeps running after the launcher is gone.
package supervisor
