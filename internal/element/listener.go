package element

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/sortlist/internal/pointer"
)

// Handler receives a dispatched pointer event. target is the deepest
// element under the pointer, or nil for events with no element target
// (such as a leave).
type Handler func(ev pointer.Event, target *Element)

// DelegateHandler receives a delegated pointer event. match is the
// element that satisfied the delegation selector; target is the deepest
// element actually hit.
type DelegateHandler func(ev pointer.Event, match, target *Element)

// Token identifies an installed listener and can detach it. The zero
// Token is valid and detaches nothing.
type Token struct {
	id  uint64
	reg *registry
}

// Detach removes the listener. Detaching an already-detached or zero
// token is a no-op.
func (t Token) Detach() {
	if t.reg != nil {
		t.reg.remove(t.id)
	}
}

// binding is one installed listener.
type binding struct {
	id       uint64
	action   pointer.Action
	scope    *Element // nil = document level
	selector string   // non-empty = delegated
	handler  Handler
	delegate DelegateHandler
}

// registry holds installed listeners in insertion order.
type registry struct {
	mu       sync.Mutex
	nextID   atomic.Uint64
	bindings []*binding
}

func newRegistry() *registry {
	return &registry{}
}

// add installs a binding and returns its token.
func (r *registry) add(b *binding) Token {
	b.id = r.nextID.Add(1)
	r.mu.Lock()
	r.bindings = append(r.bindings, b)
	r.mu.Unlock()
	return Token{id: b.id, reg: r}
}

// remove deletes the binding with the given id.
func (r *registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bindings {
		if b.id == id {
			r.bindings = append(r.bindings[:i], r.bindings[i+1:]...)
			return
		}
	}
}

// snapshot returns a copy of the current bindings for dispatch, so that
// handlers may detach listeners while a dispatch is in progress.
func (r *registry) snapshot() []*binding {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// installed reports whether the binding with the given id is still live.
func (r *registry) installed(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bindings {
		if b.id == id {
			return true
		}
	}
	return false
}
