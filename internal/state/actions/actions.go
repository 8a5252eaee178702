// Package actions defines the boutique.Actions the walkthrough
// applications can dispatch, and constructors for building them.
package actions

import (
	"github.com/johnsiilver/boutique"
)

const (
	// ActAddItem appends the next counter value to State.Items.
	ActAddItem = iota
)

// AddItem creates an Action that appends the next counter value.
// It carries no payload: the value is derived from the current state.
func AddItem() boutique.Action {
	return boutique.Action{Type: ActAddItem}
}
