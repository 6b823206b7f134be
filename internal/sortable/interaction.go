package sortable

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/sortlist/internal/element"
	"github.com/dshills/sortlist/internal/layout"
	"github.com/dshills/sortlist/internal/pointer"
)

// DraggingClass is the class applied to an item for the duration of a
// gesture so renderers can style it.
const DraggingClass = "dragging"

// Result describes where a gesture ended. Before is the sibling the item
// now sits in front of; nil means the item is the container's last child.
type Result struct {
	Item   *element.Element
	Before *element.Element
}

// Change is the payload of a changed notification: the container's items
// in their new order plus the final placement.
type Change struct {
	Items  []*element.Element
	Result Result
}

// Interaction owns one drag gesture from pickup to release. It converts
// pointer motion into live reordering of the container's children and
// reports the final placement.
//
// The insertion anchor is recomputed against live geometry on every move;
// positions between moves are never accumulated, so the final anchor
// depends only on the last processed coordinates.
type Interaction struct {
	mu sync.Mutex

	id        string
	item      *element.Element
	container *element.Element
	scroller  autoscroller

	origin pointer.Position
	last   pointer.Position

	// originalBefore is the item's next sibling at pickup; currentBefore
	// is maintained as the item's next sibling after every accepted move.
	originalBefore *element.Element
	currentBefore  *element.Element

	started  bool
	finished bool
	result   Result
}

// newInteraction creates an interaction for one gesture.
func newInteraction(item, container *element.Element, origin pointer.Position, scroller autoscroller) *Interaction {
	return &Interaction{
		id:        uuid.NewString(),
		item:      item,
		container: container,
		scroller:  scroller,
		origin:    origin,
		last:      origin,
	}
}

// ID returns the gesture's unique identifier.
func (i *Interaction) ID() string {
	return i.id
}

// Item returns the dragged element.
func (i *Interaction) Item() *element.Element {
	return i.item
}

// Start captures the item's baseline position and marks it as dragging.
// No reorder happens until the first move.
func (i *Interaction) Start() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.started || i.finished {
		return
	}
	i.started = true
	i.originalBefore = i.item.NextSibling()
	i.currentBefore = i.originalBefore
	i.item.AddClass(DraggingClass)
}

// Move updates the gesture with new pointer coordinates, autoscrolling
// the container when the pointer sits in its edge margins and reordering
// the preview when the computed anchor changes. Calling it again with
// unchanged coordinates mutates nothing.
func (i *Interaction) Move(pos pointer.Position) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.started || i.finished {
		return
	}
	i.last = pos
	// scroll relayouts the container when it moves, so the anchor
	// recompute below sees fresh geometry.
	i.scroller.scroll(i.container, pos)
	i.applyAnchor(pos)
}

// Scroll recomputes the insertion anchor after the container's scroll
// offset changed under a stationary pointer. It performs no autoscroll
// of its own and allocates nothing on the no-op path.
func (i *Interaction) Scroll() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.started || i.finished {
		return
	}
	i.applyAnchor(i.last)
}

// Drop finalizes the gesture at the given coordinates: one last move is
// applied, the drag mark is cleared and the final placement is resolved.
// The returned channel already carries the Result; a drop never fails.
func (i *Interaction) Drop(pos pointer.Position) <-chan Result {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.finished {
		return resolved(i.result)
	}
	if i.started {
		i.last = pos
		i.applyAnchor(pos)
	}
	return i.finalize(Result{Item: i.item, Before: i.currentBefore})
}

// Abort cancels the gesture: the drag mark is cleared and the item is
// restored to its pre-drag position, undoing any preview moves.
func (i *Interaction) Abort() <-chan Result {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.finished {
		return resolved(i.result)
	}
	if i.started && i.currentBefore != i.originalBefore {
		i.container.InsertBefore(i.item, i.originalBefore)
		i.currentBefore = i.originalBefore
		layout.Apply(i.container)
	}
	return i.finalize(Result{Item: i.item, Before: i.originalBefore})
}

// OrderHasChanged reports whether the item's final anchor differs from
// its anchor at pickup, by identity. It is a pure query and stable
// across repeated calls after Drop or Abort.
func (i *Interaction) OrderHasChanged() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.currentBefore != i.originalBefore
}

// finalize records the result exactly once. Callers hold i.mu.
func (i *Interaction) finalize(res Result) <-chan Result {
	i.item.RemoveClass(DraggingClass)
	i.finished = true
	i.result = res
	return resolved(res)
}

// resolved returns a channel already carrying the result, the explicit
// completion signal the controller awaits after detaching listeners.
func resolved(res Result) <-chan Result {
	ch := make(chan Result, 1)
	ch <- res
	return ch
}

// applyAnchor recomputes the insertion anchor for the position and moves
// the item if the anchor changed. Callers hold i.mu.
func (i *Interaction) applyAnchor(pos pointer.Position) {
	anchor, ok := i.anchorAt(pos)
	if !ok || anchor == i.currentBefore {
		return
	}
	i.container.InsertBefore(i.item, anchor)
	i.currentBefore = anchor
	layout.Apply(i.container)
}

// anchorAt finds the sibling overlapped by the position and derives the
// insertion anchor from it.
//
// Anchor rule: dragging over a sibling moves the item to the sibling's
// far side relative to the item's current position. A sibling currently
// above the item yields "insert before it" (the item moves up past it);
// a sibling below yields "insert after it" (before its next sibling).
// The rule reads only the current child order and the given coordinates,
// so rapid pointer jumps still produce one consistent anchor.
//
// Returns ok=false when the position overlaps no sibling, which keeps
// the current anchor.
func (i *Interaction) anchorAt(pos pointer.Position) (*element.Element, bool) {
	beforeItem := true
	for _, sib := range i.container.Children() {
		if sib == i.item {
			beforeItem = false
			continue
		}
		r := sib.Rect()
		if r.Empty() || !r.Contains(pos) {
			continue
		}
		var anchor *element.Element
		if beforeItem {
			anchor = sib
		} else {
			anchor = sib.NextSibling()
			if anchor == i.item {
				anchor = i.item.NextSibling()
			}
		}
		return anchor, true
	}
	return nil, false
}
