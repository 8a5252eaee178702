// Package inspect is the debugging bridge: it attaches to a store and
// streams every committed state snapshot to an external inspector
// over a websocket, one JSON frame per commit.
//
// The bridge is strictly best-effort. No inspector configured means
// no bridge; an unreachable inspector means one warning and no
// bridge. Attaching never fails the program, the same way the UI
// state server keeps running without its 9P listener.
package inspect

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/johnsiilver/boutique"

	"github.com/elizafairlady/go-storewire/internal/state/data"
)

// EnvEndpoint names the inspector endpoint, e.g. "127.0.0.1:8484" or
// a full "ws://host:port/attach" URL. Unset disables the bridge.
const EnvEndpoint = "STOREWIRE_INSPECT"

// Frame is one observation on the wire.
type Frame struct {
	// Event is "attach" for the hello frame, "commit" afterwards.
	Event string `json:"event"`
	// Version is the store version at this observation.
	Version uint64 `json:"version"`
	// Fields lists the state fields the commit replaced.
	Fields []string `json:"fields,omitempty"`
	// Items is the state snapshot.
	Items []int `json:"items"`
}

// Attach wires st to the inspector named by $STOREWIRE_INSPECT and
// returns a detach func. With the variable unset, both are no-ops.
func Attach(st *boutique.Store) (detach func()) {
	return AttachTo(st, os.Getenv(EnvEndpoint))
}

// AttachTo is Attach with an explicit endpoint.
func AttachTo(st *boutique.Store, endpoint string) (detach func()) {
	if endpoint == "" {
		return func() {}
	}
	u := wsURL(endpoint)

	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		slog.Warn("inspector unreachable, continuing without it", "endpoint", u, "err", err)
		return func() {}
	}

	sig, cancel, err := st.Subscribe(boutique.Any)
	if err != nil {
		conn.Close()
		slog.Warn("inspector subscription failed, continuing without it", "err", err)
		return func() {}
	}

	// Hello frame carries the state as of attachment.
	cur := st.State()
	hello := Frame{Event: "attach", Version: cur.Version, Items: cur.Data.(data.State).Items}
	if err := conn.WriteJSON(hello); err != nil {
		cancel()
		conn.Close()
		slog.Warn("inspector handshake failed, continuing without it", "err", err)
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer conn.Close()
		for {
			select {
			case s, ok := <-sig:
				if !ok {
					return
				}
				d := s.State.Data.(data.State)
				f := Frame{Event: "commit", Version: s.Version, Fields: s.Fields, Items: d.Items}
				if err := conn.WriteJSON(f); err != nil {
					slog.Warn("inspector send failed, detaching", "err", err)
					cancel()
					return
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			close(done)
		})
	}
}

// wsURL accepts either a bare host:port or a full ws(s) URL.
func wsURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "ws://") || strings.HasPrefix(endpoint, "wss://") {
		return endpoint
	}
	return "ws://" + endpoint + "/attach"
}

var upgrader = websocket.Upgrader{}

// Handler is the receiving end of the bridge: it upgrades the request
// and feeds every frame read off the socket to onFrame until the peer
// detaches. cmd/inspector mounts this; tests use it directly.
func Handler(onFrame func(Frame)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("inspector upgrade failed", "remote", r.RemoteAddr, "err", err)
			return
		}
		defer conn.Close()
		for {
			var f Frame
			if err := conn.ReadJSON(&f); err != nil {
				return
			}
			if onFrame != nil {
				onFrame(f)
			}
		}
	})
}
