package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/johnsiilver/boutique"
	"github.com/spf13/cobra"

	"github.com/elizafairlady/go-storewire/internal/provider"
	"github.com/elizafairlady/go-storewire/internal/state"
	"github.com/elizafairlady/go-storewire/internal/state/actions"
	"github.com/elizafairlady/go-storewire/internal/state/data"
)

// provider is the second chapter: the entry point places the store in
// a context, and the view resolves it ambiently with FromContext. No
// function between the two mentions the store at all.
func providerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provider",
		Short: "Store carried ambiently through context",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := provider.WithStore(cmd.Context(), store)

			m, err := newProviderModel(ctx)
			if err != nil {
				return err
			}
			defer m.cancel()

			_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
			return err
		},
	}
}

type signalMsg struct{ count int }

type providerModel struct {
	st     *boutique.Store
	sig    chan boutique.Signal
	cancel func()
	count  int
}

func newProviderModel(ctx context.Context) (providerModel, error) {
	st, ok := provider.FromContext(ctx)
	if !ok {
		return providerModel{}, errors.New("no store in context: wrap it with provider.WithStore")
	}
	sig, cancel, err := st.Subscribe(state.FieldItems)
	if err != nil {
		return providerModel{}, fmt.Errorf("subscribe: %w", err)
	}
	return providerModel{
		st:     st,
		sig:    sig,
		cancel: cancel,
		count:  state.Current(st).Count(),
	}, nil
}

func (m providerModel) Init() tea.Cmd {
	return m.listen
}

func (m providerModel) listen() tea.Msg {
	s, ok := <-m.sig
	if !ok {
		return nil
	}
	return signalMsg{count: s.State.Data.(data.State).Count()}
}

func (m providerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signalMsg:
		m.count = msg.count
		return m, m.listen
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "i", "enter", " ":
			_ = m.st.Perform(actions.AddItem())
		}
	}
	return m, nil
}

func (m providerModel) View() string {
	return styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("storewire / provider"),
		"",
		styles.Count.Render(fmt.Sprintf("items: %d", m.count)),
		"",
		styles.Help.Render("i or enter adds an item, q quits"),
	))
}
