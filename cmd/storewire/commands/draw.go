package commands

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
	"github.com/spf13/cobra"

	"github.com/elizafairlady/go-storewire/internal/drawui"
	"github.com/elizafairlady/go-storewire/internal/state"
	"github.com/elizafairlady/go-storewire/internal/state/actions"
)

const drawPad = 12

// draw is the last chapter: identical store wiring, different host.
// Store signals become redraw ticks, a left click inside the button
// rectangle dispatches. Run it on Plan 9 or under a devdraw server.
func drawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw",
		Short: "The same store behind a Plan 9 draw window",
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, cancel, err := store.Subscribe(state.FieldItems)
			if err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}
			defer cancel()

			// Coalesce signals into redraw ticks; the paint reads
			// current state, so dropped ticks lose nothing.
			redraw := make(chan struct{}, 1)
			go func() {
				for range sig {
					select {
					case redraw <- struct{}{}:
					default:
					}
				}
			}()

			// The button rectangle from the last paint. Paint and
			// click both run on the drawui loop, so no locking.
			var button image.Rectangle

			app := drawui.App{
				Label: "storewire",
				Draw: func(d *draw.Display, screen *draw.Image) {
					font := d.Font
					x := screen.R.Min.X + drawPad
					y := screen.R.Min.Y + drawPad

					screen.String(image.Pt(x, y), d.Black, image.Point{}, font, "storewire / draw")
					y += font.Height + drawPad

					count := fmt.Sprintf("items: %d", state.Current(store).Count())
					screen.String(image.Pt(x, y), d.Black, image.Point{}, font, count)
					y += font.Height + drawPad

					label := " add item "
					button = image.Rect(x, y, x+font.StringWidth(label)+8, y+font.Height+8)
					screen.Border(button, 1, d.Black, image.Point{})
					screen.String(button.Min.Add(image.Pt(4, 4)), d.Black, image.Point{}, font, label)
				},
				Click: func(p image.Point) {
					if p.In(button) {
						_ = store.Perform(actions.AddItem())
					}
				},
				Key: func(r rune) bool {
					return r == 'q' || r == 0x7f // q or DEL quits
				},
			}
			return drawui.Run(app, redraw)
		},
	}
}
