// Package notify provides the widget's typed notification primitives: a
// fixed event enumeration and a generic subscriber list with one list per
// event, replacing stringly-keyed emitter dispatch while keeping
// multi-subscriber semantics.
package notify

import (
	"sync"
	"sync/atomic"
)

// EventType identifies a widget notification.
type EventType uint8

const (
	// EventStart fires when a pickup is accepted.
	EventStart EventType = iota
	// EventEnd fires when a gesture finalizes, drop or abort alike.
	EventEnd
	// EventChanged fires only when the gesture changed the order.
	EventChanged
)

// String returns a string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// Handle identifies a subscription and can detach it. The zero Handle is
// valid and detaches nothing.
type Handle struct {
	id     uint64
	detach func(uint64)
}

// Detach removes the subscription. Safe to call more than once.
func (h Handle) Detach() {
	if h.detach != nil {
		h.detach(h.id)
	}
}

// List is an ordered set of subscribers sharing one payload type. The
// zero value is ready to use.
type List[T any] struct {
	mu     sync.Mutex
	nextID atomic.Uint64
	subs   []entry[T]
}

type entry[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe adds a callback and returns its handle. Nil callbacks are
// ignored and get a zero handle.
func (l *List[T]) Subscribe(fn func(T)) Handle {
	if fn == nil {
		return Handle{}
	}
	id := l.nextID.Add(1)
	l.mu.Lock()
	l.subs = append(l.subs, entry[T]{id: id, fn: fn})
	l.mu.Unlock()
	return Handle{id: id, detach: l.remove}
}

// Emit calls every subscriber in subscription order with the payload.
func (l *List[T]) Emit(v T) {
	l.mu.Lock()
	subs := make([]entry[T], len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of live subscriptions.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

func (l *List[T]) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.subs {
		if s.id == id {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return
		}
	}
}
