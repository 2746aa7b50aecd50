package sentinel

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"golang.org/x/sys/unix"
)

// DefaultPath is the marker Bloom deletes once its own startup screen is up.
const DefaultPath = "/tmp/BloomLaunching.now"

// ErrExists reports that another launcher already owns the marker.
var ErrExists = errors.New("launch marker already exists")

// Marker is a launch marker created by this process.
type Marker struct {
	path string
	once sync.Once
}

// Create makes the marker at path, failing if it is already present.
func Create(path string) (*Marker, error) {
	if path == "" {
		return nil, fmt.Errorf("create marker: path is empty")
	}
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, 0o644)
	if err != nil {
		if errors.Is(err, unix.EEXIST) {
			return nil, fmt.Errorf("%w: %s", ErrExists, path)
		}
		return nil, fmt.Errorf("create marker %s: %w", path, err)
	}
	file := os.NewFile(uintptr(fd), path)
	defer func() { _ = file.Close() }()

	// Body is informational only; presence is all that matters.
	_, _ = file.WriteString(strconv.Itoa(os.Getpid()) + "\n")

	return &Marker{path: path}, nil
}

// Path returns the marker location.
func (m *Marker) Path() string {
	return m.path
}

// Present reports whether the marker still exists on disk. Only a confirmed
// absence counts as gone; other stat errors leave the launch pending.
func (m *Marker) Present() bool {
	_, err := os.Lstat(m.path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Remove deletes the marker. Errors are ignored and repeated calls are no-ops.
func (m *Marker) Remove() {
	if m == nil {
		return
	}
	m.once.Do(func() {
		_ = os.Remove(m.path)
	})
}
