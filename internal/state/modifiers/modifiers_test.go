package modifiers

import (
	"testing"

	"github.com/johnsiilver/boutique"

	"github.com/elizafairlady/go-storewire/internal/state/actions"
	"github.com/elizafairlady/go-storewire/internal/state/data"
)

func TestAddItem_AppendsNextValue(t *testing.T) {
	s := data.State{Items: []int{1, 2}}

	got := AddItem(s, actions.AddItem()).(data.State)

	if len(got.Items) != 3 {
		t.Fatalf("items len = %d, want 3", len(got.Items))
	}
	if got.Items[2] != 3 {
		t.Errorf("last item = %d, want 3", got.Items[2])
	}
	// The previous state must be untouched.
	if len(s.Items) != 2 {
		t.Errorf("input state mutated: %v", s.Items)
	}
}

func TestAddItem_FromEmpty(t *testing.T) {
	s := data.State{Items: []int{}}
	got := AddItem(s, actions.AddItem()).(data.State)

	if len(got.Items) != 1 || got.Items[0] != 1 {
		t.Fatalf("items = %v, want [1]", got.Items)
	}
}

func TestAddItem_DoesNotShareBackingArray(t *testing.T) {
	s := data.State{Items: make([]int, 2, 8)}
	s.Items[0], s.Items[1] = 1, 2

	got := AddItem(s, actions.AddItem()).(data.State)
	got.Items[0] = 99

	if s.Items[0] != 1 {
		t.Errorf("append wrote through to the previous state's array")
	}
}

func TestAddItem_UnrecognizedActionPassesThrough(t *testing.T) {
	s := data.State{Items: []int{1, 2}}
	a := boutique.Action{Type: 999}

	got := AddItem(s, a).(data.State)

	if len(got.Items) != 2 || got.Items[0] != 1 || got.Items[1] != 2 {
		t.Fatalf("items = %v, want [1 2]", got.Items)
	}
	// Pass-through keeps the same slice, not a copy.
	if &got.Items[0] != &s.Items[0] {
		t.Errorf("default branch reallocated Items")
	}
}

func TestAddItem_DefaultBranchIdempotent(t *testing.T) {
	s := data.State{Items: []int{1}}
	a := boutique.Action{Type: 999}

	cur := interface{}(s)
	for i := 0; i < 5; i++ {
		cur = AddItem(cur, a)
	}
	got := cur.(data.State)
	if len(got.Items) != 1 || got.Items[0] != 1 {
		t.Fatalf("items after 5 no-ops = %v, want [1]", got.Items)
	}
}

func TestAddItem_Sequence(t *testing.T) {
	cur := interface{}(data.State{Items: []int{}})
	for i := 0; i < 3; i++ {
		cur = AddItem(cur, actions.AddItem())
	}
	got := cur.(data.State)

	want := []int{1, 2, 3}
	if len(got.Items) != len(want) {
		t.Fatalf("items = %v, want %v", got.Items, want)
	}
	for i := range want {
		if got.Items[i] != want[i] {
			t.Fatalf("items = %v, want %v", got.Items, want)
		}
	}
}
