package sortable

import (
	"github.com/dshills/sortlist/internal/element"
	"github.com/dshills/sortlist/internal/layout"
	"github.com/dshills/sortlist/internal/pointer"
)

// autoscroller scrolls a container while a drag holds the pointer inside
// the container's edge margins, so items beyond the visible window can be
// reached without releasing the gesture.
type autoscroller struct {
	// margin is how many rows from the content edge trigger scrolling.
	// Zero disables autoscroll.
	margin int

	// step is how many rows each tick scrolls.
	step int
}

// scroll checks the position against the container's edge margins and
// scrolls one step when inside them. Returns true if the offset moved.
func (a autoscroller) scroll(container *element.Element, pos pointer.Position) bool {
	if a.margin <= 0 || a.step <= 0 {
		return false
	}
	inner := layout.Inner(container)
	if inner.Empty() || pos.X < inner.X || pos.X >= inner.Right() {
		return false
	}
	switch {
	case pos.Y >= inner.Y && pos.Y < inner.Y+a.margin:
		return layout.ScrollBy(container, -a.step)
	case pos.Y >= inner.Bottom()-a.margin && pos.Y < inner.Bottom():
		return layout.ScrollBy(container, a.step)
	}
	return false
}
