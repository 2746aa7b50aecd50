package window

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/bloomsplash/internal/splashimage"
)

func TestDetectDisplay(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"x11", map[string]string{"DISPLAY": ":0"}, true},
		{"wayland", map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, true},
		{"blank values", map[string]string{"DISPLAY": " ", "WAYLAND_DISPLAY": ""}, false},
		{"nothing", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDisplay(tt.env, false).Graphical; got != tt.want {
				t.Errorf("Graphical = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		display Display
		want    []string
	}{
		{"auto graphical", "auto", Display{Graphical: true, Terminal: true}, []string{"gtk", "fyne", "terminal", "none"}},
		{"auto terminal only", "", Display{Terminal: true}, []string{"terminal", "none"}},
		{"auto headless", "auto", Display{}, []string{"none"}},
		{"explicit", " Fyne ", Display{}, []string{"fyne"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Candidates(tt.backend, tt.display); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Candidates = %v, want %v", got, tt.want)
			}
		})
	}
}

type fakeSurface struct{ name string }

func (fakeSurface) Run(ctx context.Context, _ func()) error {
	<-ctx.Done()
	return nil
}

func TestRegistryOpen_FallsBackInAutoMode(t *testing.T) {
	reg := Registry{
		"gtk":      func(splashimage.Image) (Surface, error) { return nil, errors.New("cannot open display") },
		"terminal": func(splashimage.Image) (Surface, error) { return fakeSurface{"terminal"}, nil },
	}

	surface, name, err := reg.Open("auto", Display{Graphical: true, Terminal: true}, splashimage.Image{}, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if name != "terminal" {
		t.Fatalf("backend = %q, want %q", name, "terminal")
	}
	if fs, ok := surface.(fakeSurface); !ok || fs.name != "terminal" {
		t.Fatalf("surface = %#v, want terminal fake", surface)
	}
}

func TestRegistryOpen_HeadlessWithoutRegistration(t *testing.T) {
	surface, name, err := Registry{}.Open("auto", Display{}, splashimage.Image{}, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if name != "none" {
		t.Fatalf("backend = %q, want none", name)
	}
	if _, ok := surface.(Headless); !ok {
		t.Fatalf("surface = %#v, want Headless", surface)
	}
}

func TestRegistryOpen_ExplicitFailure(t *testing.T) {
	reg := Registry{
		"gtk": func(splashimage.Image) (Surface, error) { return nil, errors.New("cannot open display") },
	}
	if _, _, err := reg.Open("gtk", Display{}, splashimage.Image{}, nil); err == nil {
		t.Fatalf("Open succeeded, want error")
	}
}

func TestRegistryOpen_UnknownBackend(t *testing.T) {
	_, _, err := Registry{}.Open("qt", Display{}, splashimage.Image{}, nil)
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestHeadless_RunReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Headless{}.Run(ctx, func() {}) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
