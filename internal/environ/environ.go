package environ

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ReadyVar marks an environment that a wrapper has already prepared.
const ReadyVar = "BLOOM_ENVIRONMENT_READY"

// Variables written by Build.
const (
	PreloadVar     = "LD_PRELOAD"
	LibraryPathVar = "LD_LIBRARY_PATH"
	RuntimeRootVar = "XULRUNNER"
	PathVar        = "PATH"
)

// runtimeDir holds the bundled browser engine relative to the launcher.
const runtimeDir = "Firefox"

// fixed are runtime settings applied verbatim.
var fixed = map[string]string{
	"MONO_WINFORMS_XIM_STYLE": "disabled",
	"MONO_MWF_SCALING":        "disable",
	"GDK_CORE_DEVICE_EVENTS":  "1",
	"MONO_TLS_PROVIDER":       "btls",
}

// Set maps variable names to values.
type Set map[string]string

// Current snapshots the process environment.
func Current() Set {
	return FromList(os.Environ())
}

// FromList parses KEY=VALUE entries. Entries without '=' are dropped and
// later duplicates win, matching how exec treats them.
func FromList(entries []string) Set {
	set := make(Set, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		set[key] = value
	}
	return set
}

// List renders the set as sorted KEY=VALUE entries for exec.
func (s Set) List() []string {
	keys := slices.Sorted(maps.Keys(s))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key+"="+s[key])
	}
	return out
}

// Build derives the child environment from current for a launcher living in
// selfDir. When ReadyVar is set the result equals current.
func Build(selfDir string, current Set) Set {
	env := maps.Clone(current)
	if env == nil {
		env = Set{}
	}
	if env[ReadyVar] != "" {
		return env
	}

	runtimeRoot := filepath.Join(selfDir, runtimeDir)

	env[PreloadVar] = filepath.Join(runtimeRoot, "libgeckofix.so")
	env[RuntimeRootVar] = runtimeRoot
	env[LibraryPathVar] = prependList(env[LibraryPathVar], selfDir, runtimeRoot)
	env[PathVar] = prependList(env[PathVar], selfDir)
	for key, value := range fixed {
		env[key] = value
	}
	return env
}

// prependList puts dirs in front of a search list. The existing list is kept
// verbatim, empty elements included; an empty list gets no separator.
func prependList(list string, dirs ...string) string {
	head := strings.Join(dirs, string(os.PathListSeparator))
	if list == "" {
		return head
	}
	return head + string(os.PathListSeparator) + list
}
