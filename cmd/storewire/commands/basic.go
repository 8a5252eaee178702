package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elizafairlady/go-storewire/internal/state"
	"github.com/elizafairlady/go-storewire/internal/state/actions"
	"github.com/elizafairlady/go-storewire/internal/state/data"
)

// basic is the first chapter: no view framework at all. The store is
// constructed, a callback loop subscribes to it, and a line of input
// dispatches. Everything later builds on exactly this shape.
func basicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basic",
		Short: "Callback subscription, no view framework",
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, cancel, err := store.Subscribe(state.FieldItems)
			if err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}
			defer cancel()

			// The "render": one line per store change, straight off
			// the signal's snapshot.
			go func() {
				for s := range sig {
					fmt.Printf("items: %d\n", s.State.Data.(data.State).Count())
				}
			}()

			fmt.Printf("items: %d\n", state.Current(store).Count())
			fmt.Println("press Enter to add an item, q to quit")

			in := bufio.NewScanner(os.Stdin)
			for in.Scan() {
				if in.Text() == "q" {
					return nil
				}
				if err := store.Perform(actions.AddItem()); err != nil {
					return fmt.Errorf("dispatch: %w", err)
				}
			}
			return in.Err()
		},
	}
}
