// Package watch provides selector-based subscriptions over a
// boutique.Store: a view names the slice of state it cares about and
// receives a value only when that slice actually changes.
//
// This is the hooks variant's machinery. Select plays the part of a
// state selector hook, Dispatcher the part of a dispatch hook.
package watch

import (
	"log/slog"
	"sync"

	"github.com/johnsiilver/boutique"
)

// CancelFunc stops a watcher started by Select. Safe to call twice.
type CancelFunc func()

// Select subscribes to field on st and applies sel to every state the
// store signals. Distinct results are delivered on the returned
// channel; results equal to the previous delivery are dropped, so a
// view wakes only when its derived value moved. The channel is closed
// after cancellation or when the store shuts the subscription down.
//
// The initial value is not delivered: read it from st.State() when
// building the first frame.
func Select[S any, T comparable](st *boutique.Store, field string, sel func(S) T) (<-chan T, CancelFunc, error) {
	sig, cancel, err := st.Subscribe(field)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan T, 1)
	done := make(chan struct{})
	go func() {
		defer close(out)
		last := sel(st.State().Data.(S))
		for {
			select {
			case s, ok := <-sig:
				if !ok {
					return
				}
				v := sel(s.State.Data.(S))
				if v == last {
					continue
				}
				last = v
				select {
				case out <- v:
				case <-done:
					return
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(done)
			cancel()
		})
	}
	return out, stop, nil
}

// Dispatcher returns a dispatch function bound to st. Perform errors
// are logged and dropped: dispatch sites in views stay one-liners.
func Dispatcher(st *boutique.Store) func(boutique.Action) {
	return func(a boutique.Action) {
		if err := st.Perform(a); err != nil {
			slog.Warn("dispatch failed", "type", a.Type, "err", err)
		}
	}
}
