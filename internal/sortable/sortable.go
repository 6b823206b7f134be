package sortable

import (
	"sync"

	"github.com/dshills/sortlist/internal/element"
	"github.com/dshills/sortlist/internal/notify"
	"github.com/dshills/sortlist/internal/pointer"
)

// Sortable is the controller facade bound to one container and one item
// selector. It owns the idle/dragging state machine: while idle it waits
// for a pickup on a matching item; while dragging it forwards pointer
// events to the active Interaction and refuses further pickups.
type Sortable struct {
	mu sync.Mutex

	doc       *element.Document
	container *element.Element
	cfg       Config

	itx *Interaction

	pickup   element.Token
	gestures []element.Token

	starts  notify.List[*element.Element]
	ends    notify.List[struct{}]
	changes notify.List[Change]
}

// New creates a Sortable for the container. The configuration is merged
// with defaults once and fixed for the controller's lifetime. Call Init
// to start listening.
func New(doc *element.Document, container *element.Element, cfg Config) *Sortable {
	return &Sortable{
		doc:       doc,
		container: container,
		cfg:       merged(cfg),
	}
}

// Config returns the merged configuration.
func (s *Sortable) Config() Config {
	return s.cfg
}

// OnStart subscribes to pickup notifications. The callback receives the
// dragged item.
func (s *Sortable) OnStart(fn func(item *element.Element)) notify.Handle {
	return s.starts.Subscribe(fn)
}

// OnEnd subscribes to gesture-end notifications, fired exactly once per
// gesture whether it dropped or aborted.
func (s *Sortable) OnEnd(fn func()) notify.Handle {
	return s.ends.Subscribe(func(struct{}) { fn() })
}

// OnChanged subscribes to order-change notifications, fired only when a
// gesture left the item at a different anchor than it started.
func (s *Sortable) OnChanged(fn func(Change)) notify.Handle {
	return s.changes.Subscribe(fn)
}

// Init installs the delegated pickup listener on the container. Calling
// it again tears down the previous installation first, so re-init is
// idempotent.
func (s *Sortable) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pickup.Detach()
	s.pickup = s.doc.Delegate(s.container, s.cfg.Items, pointer.ActionPress, s.onPress)
}

// Destroy aborts any active gesture, finalizing it with the usual end
// notification, and removes the pickup listener. Safe to call while
// idle.
func (s *Sortable) Destroy() {
	s.finish(true, pointer.Position{})
	s.mu.Lock()
	s.pickup.Detach()
	s.pickup = element.Token{}
	s.mu.Unlock()
}

// IsDragging returns true if a gesture is in progress.
func (s *Sortable) IsDragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itx != nil
}

// onPress handles a delegated press on an item. Presses are refused
// silently while disabled, while a gesture is active, when the item is
// not a direct child of the container, or when a configured handle was
// not under the pointer.
func (s *Sortable) onPress(ev pointer.Event, item, target *element.Element) {
	s.mu.Lock()
	if !s.cfg.Enabled || s.itx != nil || item.Parent() != s.container {
		s.mu.Unlock()
		return
	}
	if s.cfg.Handle != "" {
		h := element.Closest(target, s.cfg.Handle)
		if h == nil || !item.Contains(h) {
			s.mu.Unlock()
			return
		}
	}

	itx := newInteraction(item, s.container, ev.Position, autoscroller{
		margin: s.cfg.ScrollMargin,
		step:   s.cfg.ScrollStep,
	})
	itx.Start()
	s.itx = itx

	// Gesture listeners live at document scope: the pointer may travel
	// outside the container mid-drag.
	s.gestures = []element.Token{
		s.doc.On(pointer.ActionDrag, s.onMove),
		s.doc.On(pointer.ActionRelease, s.onRelease),
		s.doc.On(pointer.ActionScroll, s.onScroll),
		s.doc.On(pointer.ActionLeave, s.onLeave),
	}
	s.mu.Unlock()

	s.starts.Emit(item)
}

// onMove forwards drag motion to the active interaction.
func (s *Sortable) onMove(ev pointer.Event, _ *element.Element) {
	s.mu.Lock()
	itx := s.itx
	s.mu.Unlock()
	if itx == nil {
		return
	}
	itx.Move(ev.Position)
}

// onScroll re-anchors the active interaction after a scroll.
func (s *Sortable) onScroll(_ pointer.Event, _ *element.Element) {
	s.mu.Lock()
	itx := s.itx
	s.mu.Unlock()
	if itx == nil {
		return
	}
	itx.Scroll()
}

// onRelease finalizes the gesture as a drop at the release coordinates.
func (s *Sortable) onRelease(ev pointer.Event, _ *element.Element) {
	s.finish(false, ev.Position)
}

// onLeave treats the pointer leaving the surface as an abort.
func (s *Sortable) onLeave(pointer.Event, *element.Element) {
	s.finish(true, pointer.Position{})
}

// finish runs the dragging-to-idle transition: detach the document-wide
// listeners first so no stray event reaches a half-finalized
// interaction, await the finalize result, re-read the container's item
// order, clear the interaction, then notify. The end notification is
// unconditional; changed fires only when the final anchor moved.
func (s *Sortable) finish(abort bool, pos pointer.Position) {
	s.mu.Lock()
	itx := s.itx
	if itx == nil {
		s.mu.Unlock()
		return
	}
	for _, tok := range s.gestures {
		tok.Detach()
	}
	s.gestures = nil

	var done <-chan Result
	if abort {
		done = itx.Abort()
	} else {
		done = itx.Drop(pos)
	}
	res := <-done

	items := element.FindAll(s.container, s.cfg.Items)
	changed := itx.OrderHasChanged()
	s.itx = nil
	s.mu.Unlock()

	s.ends.Emit(struct{}{})
	if changed {
		s.changes.Emit(Change{Items: items, Result: res})
	}
}
