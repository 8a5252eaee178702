package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/elizafairlady/go-storewire/internal/connect"
	"github.com/elizafairlady/go-storewire/internal/state"
	"github.com/elizafairlady/go-storewire/internal/state/actions"
	"github.com/elizafairlady/go-storewire/internal/state/data"
)

// connect is the fourth chapter: the view is purely presentational
// and the connecting function owns all store traffic. Compare
// counterView with the models of the earlier chapters: no store, no
// channels, just props in and actions out.
func connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Higher-order connecting function around a props view",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, stop, err := connect.Connect(store, state.FieldItems,
				func(s data.State) counterProps {
					return counterProps{Count: s.Count()}
				},
				counterView{},
			)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer stop()

			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
}

type counterProps struct {
	Count int
}

type counterView struct{}

func (counterView) Update(msg tea.Msg, p counterProps, dispatch connect.Dispatch) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return tea.Quit
		case "i", "enter", " ":
			dispatch(actions.AddItem())
		}
	}
	return nil
}

func (counterView) View(p counterProps) string {
	return styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("storewire / connect"),
		"",
		styles.Count.Render(fmt.Sprintf("items: %d", p.Count)),
		"",
		styles.Help.Render("i or enter adds an item, q quits"),
	))
}
