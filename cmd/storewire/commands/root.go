package commands

import (
	"github.com/johnsiilver/boutique"
	"github.com/spf13/cobra"

	"github.com/elizafairlady/go-storewire/internal/inspect"
	"github.com/elizafairlady/go-storewire/internal/state"
	"github.com/elizafairlady/go-storewire/internal/ui/theme"
)

var (
	inspectAddr string

	store  *boutique.Store
	detach func()
	styles theme.Theme
)

func Execute() error {
	root := &cobra.Command{
		Use:   "storewire",
		Short: "A walkthrough of wiring a state container into a view layer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			st, err := state.New()
			if err != nil {
				return err
			}
			store = st
			styles = theme.Default()

			// Best effort: no inspector reachable is never an error.
			if inspectAddr != "" {
				detach = inspect.AttachTo(store, inspectAddr)
			} else {
				detach = inspect.Attach(store)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if detach != nil {
				detach()
			}
		},
	}

	root.PersistentFlags().StringVar(&inspectAddr, "inspect", "",
		"inspector endpoint (default $"+inspect.EnvEndpoint+")")

	root.AddCommand(basicCmd(), providerCmd(), hooksCmd(), connectCmd(), drawCmd())
	return root.Execute()
}
