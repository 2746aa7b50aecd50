package window

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/bloomsplash/internal/config"
	"github.com/five82/bloomsplash/internal/splashimage"
)

// Surface is an open splash window.
type Surface interface {
	// Run shows the splash and blocks until ctx is done. onClose is called,
	// possibly more than once, when the user asks for the splash to go away;
	// the surface stays up until ctx ends.
	Run(ctx context.Context, onClose func()) error
}

// Opener constructs a surface for img without showing it.
type Opener func(img splashimage.Image) (Surface, error)

// Registry maps backend names to openers.
type Registry map[string]Opener

// ErrUnknownBackend reports a backend that is not registered.
var ErrUnknownBackend = errors.New("unknown window backend")

// Display describes what the session can show.
type Display struct {
	Graphical bool // X11 or Wayland available
	Terminal  bool // stderr is a terminal
}

// DetectDisplay inspects env for a graphical session; isTerminal reports
// whether stderr is a TTY.
func DetectDisplay(env map[string]string, isTerminal bool) Display {
	graphical := strings.TrimSpace(env["WAYLAND_DISPLAY"]) != "" || strings.TrimSpace(env["DISPLAY"]) != ""
	return Display{Graphical: graphical, Terminal: isTerminal}
}

// Candidates lists the backends to try, in order, for the configured name.
func Candidates(backend string, d Display) []string {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend != "" && backend != config.BackendAuto {
		return []string{backend}
	}
	var out []string
	if d.Graphical {
		out = append(out, config.BackendGTK, config.BackendFyne)
	}
	if d.Terminal {
		out = append(out, config.BackendTerminal)
	}
	return append(out, config.BackendNone)
}

// Open constructs the first candidate surface that succeeds. With an
// explicit backend, its failure is returned as is.
func (r Registry) Open(backend string, d Display, img splashimage.Image, logger *zap.Logger) (Surface, string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	candidates := Candidates(backend, d)

	var errs []error
	for _, name := range candidates {
		open, ok := r[name]
		if !ok {
			if name == config.BackendNone {
				return Headless{}, name, nil
			}
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownBackend, name))
			continue
		}
		surface, err := open(img)
		if err != nil {
			logger.Debug("window backend unavailable", zap.String("backend", name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		return surface, name, nil
	}
	return nil, "", fmt.Errorf("open splash window: %w", errors.Join(errs...))
}

// Headless shows nothing and waits for ctx.
type Headless struct{}

// OpenHeadless is the Opener for Headless.
func OpenHeadless(splashimage.Image) (Surface, error) {
	return Headless{}, nil
}

// Run blocks until ctx is done.
func (Headless) Run(ctx context.Context, _ func()) error {
	<-ctx.Done()
	return nil
}
