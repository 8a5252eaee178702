// Package state constructs the boutique.Store used by every
// walkthrough variant.
//
// The store itself is entirely the library's: this package only
// supplies the initial data and the modifier roster. Nothing here
// knows how the store notifies subscribers or versions its fields.
package state

import (
	"github.com/johnsiilver/boutique"

	"github.com/elizafairlady/go-storewire/internal/state/data"
	"github.com/elizafairlady/go-storewire/internal/state/modifiers"
)

// Field names usable with Store.Subscribe.
const (
	// FieldItems signals whenever State.Items is replaced.
	FieldItems = "Items"
)

// New constructs a store holding an empty item list.
func New() (*boutique.Store, error) {
	return boutique.New(data.State{Items: []int{}}, modifiers.All, nil)
}

// Current returns the store's state with its concrete type restored.
func Current(st *boutique.Store) data.State {
	return st.State().Data.(data.State)
}
