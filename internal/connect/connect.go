// Package connect wires a presentational bubbletea view to a
// boutique.Store through a props-mapping function, the way a
// connecting higher-order function wraps a view in other ecosystems.
//
// The wrapped View never sees the store. It receives props computed
// by mapProps from the current state, plus a dispatch function, and
// that is its whole world. Connect owns the subscription and re-maps
// props on every store change.
package connect

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/johnsiilver/boutique"

	"github.com/elizafairlady/go-storewire/internal/watch"
)

// Dispatch submits an action to the connected store.
type Dispatch func(boutique.Action)

// View is the presentational half of a connected component. It holds
// no state of its own: everything it renders arrives in its props.
type View[P any] interface {
	// Update reacts to a framework message with the current props.
	// Returning tea.Quit ends the program.
	Update(msg tea.Msg, p P, dispatch Dispatch) tea.Cmd

	// View renders the props.
	View(p P) string
}

// CancelFunc releases the store subscription held by a connected
// model. Call it after the program finishes.
type CancelFunc = watch.CancelFunc

type propsMsg[P any] struct{ p P }

type model[S any, P comparable] struct {
	sig      chan boutique.Signal
	mapProps func(S) P
	dispatch Dispatch
	view     View[P]
	props    P
}

// Connect binds view to st. mapProps turns the store's state object
// into the props the view renders; props are plain comparable data,
// dispatch reaches the view through Update. The returned CancelFunc
// must be called once the program is done with the model.
func Connect[S any, P comparable](st *boutique.Store, field string, mapProps func(S) P, view View[P]) (tea.Model, CancelFunc, error) {
	sig, cancel, err := st.Subscribe(field)
	if err != nil {
		return nil, nil, err
	}

	m := model[S, P]{
		sig:      sig,
		mapProps: mapProps,
		dispatch: watch.Dispatcher(st),
		view:     view,
	}
	m.props = mapProps(st.State().Data.(S))

	stop := func() {
		cancel()
	}
	return m, stop, nil
}

func (m model[S, P]) Init() tea.Cmd {
	return m.listen
}

// listen blocks on the next store signal and turns it into a
// bubbletea message. It re-arms itself from Update.
func (m model[S, P]) listen() tea.Msg {
	s, ok := <-m.sig
	if !ok {
		return nil
	}
	return propsMsg[P]{p: m.mapProps(s.State.Data.(S))}
}

func (m model[S, P]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if pm, ok := msg.(propsMsg[P]); ok {
		m.props = pm.p
		return m, m.listen
	}
	return m, m.view.Update(msg, m.props, m.dispatch)
}

func (m model[S, P]) View() string {
	return m.view.View(m.props)
}
