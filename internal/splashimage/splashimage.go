// Package splashimage loads the splash picture and reports its size so the
// window can be made to fit it exactly.
package splashimage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultName is looked up next to the launcher when no path is configured.
const DefaultName = "bloom-splash.png"

// ErrLoad reports an unreadable or undecodable splash image.
var ErrLoad = errors.New("cannot load splash image")

// Image is a decoded-enough splash picture.
type Image struct {
	Path   string
	Name   string
	Format string
	Width  int
	Height int
	Data   []byte
}

// Resolve returns path, or DefaultName inside selfDir when path is empty.
func Resolve(selfDir, path string) string {
	if strings.TrimSpace(path) == "" {
		return filepath.Join(selfDir, DefaultName)
	}
	return strings.TrimSpace(path)
}

// Load reads the image at path and decodes its header.
func Load(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Image{}, fmt.Errorf("%w: %s: empty image %dx%d", ErrLoad, path, cfg.Width, cfg.Height)
	}
	return Image{
		Path:   path,
		Name:   filepath.Base(path),
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Data:   data,
	}, nil
}
