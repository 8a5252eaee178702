package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/johnsiilver/boutique"
	"github.com/spf13/cobra"

	"github.com/elizafairlady/go-storewire/internal/state"
	"github.com/elizafairlady/go-storewire/internal/state/actions"
	"github.com/elizafairlady/go-storewire/internal/state/data"
	"github.com/elizafairlady/go-storewire/internal/watch"
)

// hooks is the third chapter: the view names what it wants with a
// selector and gets a channel of distinct derived values, plus a
// dispatch function. It never touches the store or its signals.
func hooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hooks",
		Short: "Selector watchers and a dispatch helper",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, stop, err := watch.Select(store, state.FieldItems, func(s data.State) int {
				return s.Count()
			})
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer stop()

			m := hooksModel{
				counts:   counts,
				dispatch: watch.Dispatcher(store),
				count:    state.Current(store).Count(),
			}
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
}

type countMsg int

type hooksModel struct {
	counts   <-chan int
	dispatch func(boutique.Action)
	count    int
}

func (m hooksModel) Init() tea.Cmd {
	return m.listen
}

func (m hooksModel) listen() tea.Msg {
	n, ok := <-m.counts
	if !ok {
		return nil
	}
	return countMsg(n)
}

func (m hooksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countMsg:
		m.count = int(msg)
		return m, m.listen
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "i", "enter", " ":
			m.dispatch(actions.AddItem())
		}
	}
	return m, nil
}

func (m hooksModel) View() string {
	return styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("storewire / hooks"),
		"",
		styles.Count.Render(fmt.Sprintf("items: %d", m.count)),
		"",
		styles.Help.Render("i or enter adds an item, q quits"),
	))
}
