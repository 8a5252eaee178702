// Package provider carries the store through context.Context so views
// deep in a program reach it ambiently instead of taking it as a
// parameter. This is the wiring style the provider variant teaches:
// one place constructs the store, everything below just asks for it.
package provider

import (
	"context"

	"github.com/johnsiilver/boutique"
)

type ctxKey struct{}

// WithStore returns a child context carrying st.
func WithStore(ctx context.Context, st *boutique.Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext returns the ambient store, or ok=false when no
// WithStore call wrapped this context.
func FromContext(ctx context.Context) (st *boutique.Store, ok bool) {
	st, ok = ctx.Value(ctxKey{}).(*boutique.Store)
	return st, ok
}
