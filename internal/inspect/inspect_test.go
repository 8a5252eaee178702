package inspect_test

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/elizafairlady/go-storewire/internal/inspect"
	"github.com/elizafairlady/go-storewire/internal/state"
	"github.com/elizafairlady/go-storewire/internal/state/actions"
)

// collector gathers frames from the bridge handler.
type collector struct {
	mu     sync.Mutex
	frames []inspect.Frame
}

func (c *collector) add(f inspect.Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, f)
}

func (c *collector) wait(t *testing.T, n int) []inspect.Frame {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		c.mu.Lock()
		if len(c.frames) >= n {
			out := append([]inspect.Frame(nil), c.frames...)
			c.mu.Unlock()
			return out
		}
		c.mu.Unlock()
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d frames", n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAttachTo_EmptyEndpointIsNoop(t *testing.T) {
	st, err := state.New()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	detach := inspect.AttachTo(st, "")
	detach()
	detach() // double detach must be harmless
}

func TestAttachTo_UnreachableEndpointIsNoop(t *testing.T) {
	st, err := state.New()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	// Nothing listens here; Attach must warn and carry on.
	detach := inspect.AttachTo(st, "127.0.0.1:1")
	defer detach()

	if err := st.Perform(actions.AddItem()); err != nil {
		t.Fatalf("perform with no inspector: %v", err)
	}
	if n := state.Current(st).Count(); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestAttachTo_StreamsCommits(t *testing.T) {
	c := &collector{}
	srv := httptest.NewServer(inspect.Handler(c.add))
	defer srv.Close()

	st, err := state.New()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	endpoint := "ws://" + strings.TrimPrefix(srv.URL, "http://")
	detach := inspect.AttachTo(st, endpoint)
	defer detach()

	hello := c.wait(t, 1)
	if hello[0].Event != "attach" {
		t.Fatalf("first frame event = %q, want attach", hello[0].Event)
	}
	if len(hello[0].Items) != 0 {
		t.Fatalf("hello items = %v, want empty", hello[0].Items)
	}

	if err := st.Perform(actions.AddItem()); err != nil {
		t.Fatalf("perform: %v", err)
	}

	frames := c.wait(t, 2)
	last := frames[len(frames)-1]
	if last.Event != "commit" {
		t.Fatalf("frame event = %q, want commit", last.Event)
	}
	if len(last.Items) != 1 || last.Items[0] != 1 {
		t.Fatalf("frame items = %v, want [1]", last.Items)
	}
}
