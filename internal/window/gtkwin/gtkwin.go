// Package gtkwin shows the splash in an undecorated GTK3 window.
package gtkwin

import (
	"context"
	"fmt"
	"runtime"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/five82/bloomsplash/internal/splashimage"
	"github.com/five82/bloomsplash/internal/window"
)

// GTK must be driven from the thread that initialised it; main runs there.
func init() { runtime.LockOSThread() }

// Surface is a GTK splash window.
type Surface struct {
	win *gtk.Window
}

// Open initialises GTK and builds the splash window without showing it.
func Open(img splashimage.Image) (window.Surface, error) {
	if err := gtk.InitCheck(nil); err != nil {
		return nil, fmt.Errorf("init gtk: %w", err)
	}

	pixbuf, err := gdk.PixbufNewFromFile(img.Path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", img.Path, err)
	}
	picture, err := gtk.ImageNewFromPixbuf(pixbuf)
	if err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}

	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.SetTitle("Bloom")
	win.SetDecorated(false)
	win.SetResizable(false)
	win.SetDefaultSize(img.Width, img.Height)
	win.SetSizeRequest(img.Width, img.Height)
	win.SetPosition(gtk.WIN_POS_CENTER)
	win.SetSkipTaskbarHint(true)
	win.SetSkipPagerHint(true)
	win.SetTypeHint(gdk.WINDOW_TYPE_HINT_SPLASHSCREEN)
	win.Add(picture)

	return &Surface{win: win}, nil
}

// Run shows the window and runs the GTK main loop until ctx is done.
func (s *Surface) Run(ctx context.Context, onClose func()) error {
	s.win.Connect("delete-event", func(_ *gtk.Window, _ *gdk.Event) bool {
		onClose()
		// Keep the window; it goes away when the splash loop ends.
		return true
	})

	go func() {
		<-ctx.Done()
		glib.IdleAdd(func() {
			s.win.Destroy()
			gtk.MainQuit()
		})
	}()

	s.win.ShowAll()
	gtk.Main()
	return nil
}
