// Package modifiers holds the boutique.Modifiers (reducers) that
// produce new state from dispatched actions.
//
// Every modifier is a pure function: it never mutates the state it is
// given and has no side effects. A modifier that does not recognize
// an action must return its input unchanged, so the store can detect
// no-op dispatches cheaply.
package modifiers

import (
	"github.com/johnsiilver/boutique"

	"github.com/elizafairlady/go-storewire/internal/state/actions"
	"github.com/elizafairlady/go-storewire/internal/state/data"
)

// All is the roster of modifiers handed to boutique.New.
var All = boutique.NewModifiers(AddItem)

// AddItem handles actions.ActAddItem by appending len(Items)+1 to a
// fresh copy of Items. Any other action passes through untouched.
func AddItem(state interface{}, action boutique.Action) interface{} {
	switch action.Type {
	case actions.ActAddItem:
		s := state.(data.State)
		items := make([]int, len(s.Items), len(s.Items)+1)
		copy(items, s.Items)
		s.Items = append(items, len(items)+1)
		return s
	}
	return state
}
