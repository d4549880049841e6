// Package viewmodel holds UI-agnostic state machines for the home and detail
// screens. Consumers read snapshots with State and follow transitions with
// Subscribe.
package viewmodel

import (
	"sort"
	"sync"
)

// observers is a set of state listeners
type observers[S any] struct {
	mu   sync.Mutex
	next int
	subs map[int]func(S)
}

func newObservers[S any]() *observers[S] {
	return &observers[S]{subs: make(map[int]func(S))}
}

// subscribe registers fn and returns a function that removes it
func (o *observers[S]) subscribe(fn func(S)) func() {
	o.mu.Lock()
	id := o.next
	o.next++
	o.subs[id] = fn
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			o.mu.Unlock()
		})
	}
}

// notify calls every listener with state, in subscription order.
// Must not be called with the view model's lock held.
func (o *observers[S]) notify(state S) {
	o.mu.Lock()
	ids := make([]int, 0, len(o.subs))
	for id := range o.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(S), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, o.subs[id])
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// ChannelObserver forwards state snapshots to a channel without blocking.
// When the channel is full the snapshot is dropped; consumers read State for
// the latest value.
type ChannelObserver[S any] struct {
	ch chan<- S
}

// NewChannelObserver creates a channel-backed observer
func NewChannelObserver[S any](ch chan<- S) *ChannelObserver[S] {
	return &ChannelObserver[S]{ch: ch}
}

// OnState sends state to the channel (non-blocking if full)
func (o *ChannelObserver[S]) OnState(state S) {
	select {
	case o.ch <- state:
	default:
	}
}

func strPtr(s string) *string {
	return &s
}
