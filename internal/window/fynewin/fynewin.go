// Package fynewin shows the splash using fyne's borderless splash window.
package fynewin

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/five82/bloomsplash/internal/splashimage"
	"github.com/five82/bloomsplash/internal/window"
)

const appID = "org.sil.bloom.splash"

// Surface is a fyne splash window.
type Surface struct {
	app fyne.App
	win fyne.Window
}

// Open builds the splash window without showing it.
func Open(img splashimage.Image) (window.Surface, error) {
	a := app.NewWithID(appID)
	drv, ok := a.Driver().(desktop.Driver)
	if !ok {
		return nil, errors.New("fyne driver has no desktop support")
	}

	size := fyne.NewSize(float32(img.Width), float32(img.Height))

	picture := canvas.NewImageFromResource(fyne.NewStaticResource(img.Name, img.Data))
	picture.FillMode = canvas.ImageFillContain
	picture.SetMinSize(size)

	win := drv.CreateSplashWindow()
	win.SetTitle("Bloom")
	win.SetContent(picture)
	win.Resize(size)
	win.SetFixedSize(true)
	win.CenterOnScreen()

	return &Surface{app: a, win: win}, nil
}

// Run shows the window and runs the fyne event loop until ctx is done.
func (s *Surface) Run(ctx context.Context, onClose func()) error {
	s.win.SetCloseIntercept(onClose)

	go func() {
		<-ctx.Done()
		fyne.Do(s.app.Quit)
	}()

	s.win.Show()
	s.app.Run()
	return nil
}
