package launch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Interpreter installs, in order of preference.
const (
	FlatpakInterpreter = "/app/bin/mono"
	VendorInterpreter  = "/opt/mono5-sil/bin/mono"
	SystemInterpreter  = "/usr/bin/mono"

	// flatpakPrefix is matched against FLATPAK_ID.
	flatpakPrefix = "org.sil.Bloom"
)

// DefaultPayload is the payload file name next to the launcher.
const DefaultPayload = "Bloom.exe"

var (
	// ErrSelfPath reports that the launcher could not locate its own executable.
	ErrSelfPath = errors.New("cannot resolve launcher directory")
	// ErrPayload reports a missing or non-executable payload.
	ErrPayload = errors.New("payload is not readable and executable")
)

// ResolveSelfDirectory returns the absolute directory holding the running executable.
func ResolveSelfDirectory() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSelfPath, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSelfPath, err)
	}
	return filepath.Dir(abs), nil
}

// ResolveInterpreter picks the mono install to run the payload with.
// exists probes the filesystem; nil uses os.Stat.
func ResolveInterpreter(env map[string]string, exists func(string) bool) string {
	if exists == nil {
		exists = fileExists
	}
	if strings.HasPrefix(env["FLATPAK_ID"], flatpakPrefix) {
		return FlatpakInterpreter
	}
	if exists(VendorInterpreter) {
		return VendorInterpreter
	}
	return SystemInterpreter
}

// ResolvePayload returns selfDir/name if it is readable and executable.
func ResolvePayload(selfDir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultPayload
	}
	path := filepath.Join(selfDir, name)
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPayload, path, err)
	}
	return path, nil
}

// BuildArgumentVector returns [interpreter, payload, args[1:]...].
func BuildArgumentVector(interpreter, payload string, args []string) ([]string, error) {
	if interpreter == "" {
		return nil, fmt.Errorf("build argv: no interpreter")
	}
	if payload == "" {
		return nil, fmt.Errorf("build argv: no payload")
	}
	argv := make([]string, 0, 2+len(args))
	argv = append(argv, interpreter, payload)
	if len(args) > 1 {
		argv = append(argv, args[1:]...)
	}
	return argv, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
