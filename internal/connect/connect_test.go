package connect_test

import (
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elizafairlady/go-storewire/internal/connect"
	"github.com/elizafairlady/go-storewire/internal/state"
	"github.com/elizafairlady/go-storewire/internal/state/actions"
	"github.com/elizafairlady/go-storewire/internal/state/data"
)

type props struct {
	Count int
}

type countView struct{}

func (countView) Update(msg tea.Msg, p props, dispatch connect.Dispatch) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "i" {
		dispatch(actions.AddItem())
	}
	return nil
}

func (countView) View(p props) string {
	return "count: " + strconv.Itoa(p.Count)
}

func mapProps(s data.State) props {
	return props{Count: s.Count()}
}

func TestConnect_InitialProps(t *testing.T) {
	st, err := state.New()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := st.Perform(actions.AddItem()); err != nil {
		t.Fatalf("perform: %v", err)
	}

	m, stop, err := connect.Connect(st, state.FieldItems, mapProps, countView{})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer stop()

	if got := m.View(); got != "count: 1" {
		t.Fatalf("view = %q, want %q", got, "count: 1")
	}
}

func TestConnect_PropsFollowDispatch(t *testing.T) {
	st, err := state.New()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	m, stop, err := connect.Connect(st, state.FieldItems, mapProps, countView{})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer stop()

	if err := st.Perform(actions.AddItem()); err != nil {
		t.Fatalf("perform: %v", err)
	}

	// Drive the model loop by hand: Init arms the listener, the
	// listener yields a props message, Update applies it.
	listen := m.Init()
	deadline := time.Now().Add(2 * time.Second)
	for m.View() != "count: 1" {
		if time.Now().After(deadline) {
			t.Fatalf("view = %q, want %q", m.View(), "count: 1")
		}
		msg := listen()
		if msg == nil {
			t.Fatal("listener channel closed early")
		}
		m, listen = m.Update(msg)
	}
}

func TestConnect_ViewDispatches(t *testing.T) {
	st, err := state.New()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	m, stop, err := connect.Connect(st, state.FieldItems, mapProps, countView{})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer stop()

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}}
	if _, cmd := m.Update(key); cmd != nil {
		t.Fatalf("unexpected command from key update")
	}

	if n := state.Current(st).Count(); n != 1 {
		t.Fatalf("count after key dispatch = %d, want 1", n)
	}
}
