// Inspector is the receiving end of the debugging bridge. Point a
// walkthrough program at it (flag --inspect or $STOREWIRE_INSPECT)
// and every store commit is logged here as it happens.
//
// Usage: inspector [-addr host:port]
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"

	"github.com/elizafairlady/go-storewire/internal/inspect"
)

func main() {
	if err := mainInner(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func mainInner() error {
	addrVar := flag.String("addr", "127.0.0.1:8484", "the address to listen on")
	flag.Parse()

	r := mux.NewRouter()
	r.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			m := httpsnoop.CaptureMetrics(handler, writer, request)
			slog.Info("handled", "method", request.Method, "url", request.URL, "duration", m.Duration, "status", m.Code)
		})
	})

	r.Methods(http.MethodGet).Path("/attach").Handler(inspect.Handler(func(f inspect.Frame) {
		slog.Info("observed", "event", f.Event, "version", f.Version, "fields", f.Fields, "items", f.Items)
	}))

	slog.Info("inspector listening", "addr", *addrVar)
	return http.ListenAndServe(*addrVar, r)
}
