// Package data holds the state object stored in the boutique.Store.
//
// All fields must be value types or treated as immutable: modifiers
// replace them, never edit them in place.
package data

// State is the single state object for the walkthrough applications.
type State struct {
	// Items is an ordered run of counter values. Each recognized
	// dispatch appends exactly one element equal to the previous
	// length + 1, so Items is always 1, 2, 3, ... len(Items).
	Items []int
}

// Count returns the number of items. Views render this, nothing else.
func (s State) Count() int {
	return len(s.Items)
}
