// Package drawui is a minimal event-loop host for the draw variant:
// one blocking loop over mouse, keyboard, resize, and an external
// redraw channel, with a single repaint path. Run it on Plan 9 or
// anywhere a devdraw server is available.
package drawui

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
)

// App supplies the parts of the loop that belong to the application.
// Draw must be a pure render of current state; it is called after
// every handled event.
type App struct {
	// Label is the window label.
	Label string
	// Draw renders onto screen. The screen is cleared first.
	Draw func(d *draw.Display, screen *draw.Image)
	// Click handles a left-button press at p. Optional.
	Click func(p image.Point)
	// Key handles a keyboard rune. Return true to quit. Optional.
	Key func(r rune) (quit bool)
}

// Run opens the display and blocks in the event loop until Key
// requests quit or the redraw channel closes. A nil redraw channel
// simply never fires.
func Run(app App, redraw <-chan struct{}) error {
	d, err := draw.Init(nil, "", app.Label, "")
	if err != nil {
		return fmt.Errorf("drawui: init display: %w", err)
	}
	defer d.Close()

	mc := d.InitMouse()
	kc := d.InitKeyboard()

	repaint := func() {
		screen := d.ScreenImage
		screen.Draw(screen.R, d.White, nil, image.Point{})
		if app.Draw != nil {
			app.Draw(d, screen)
		}
		d.Flush()
	}

	repaint()

	for {
		select {
		case m := <-mc.C:
			if m.Buttons&1 != 0 {
				if app.Click != nil {
					app.Click(m.Point)
				}
				// Swallow the rest of the chord so a held button
				// does not repeat the click.
				for m.Buttons != 0 {
					m = <-mc.C
				}
				repaint()
			}

		case <-mc.Resize:
			if err := d.Attach(draw.RefNone); err != nil {
				return fmt.Errorf("drawui: reattach after resize: %w", err)
			}
			repaint()

		case r := <-kc.C:
			if app.Key != nil && app.Key(r) {
				return nil
			}
			repaint()

		case _, ok := <-redraw:
			if !ok {
				return nil
			}
			repaint()
		}
	}
}
