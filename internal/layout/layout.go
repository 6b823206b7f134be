// Package layout assigns screen rectangles to an element tree. Containers
// stack their children vertically, one row per child, inside a one-cell
// frame, offset by the container's scroll position. Children scrolled out
// of the visible window get an empty rectangle so hit testing skips them.
package layout

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/sortlist/internal/element"
)

// frame is the border thickness containers reserve on every side.
const frame = 1

// Inner returns the content area of a container, inside its frame.
func Inner(container *element.Element) element.Rect {
	r := container.Rect()
	inner := element.Rect{
		X: r.X + frame,
		Y: r.Y + frame,
		W: r.W - 2*frame,
		H: r.H - 2*frame,
	}
	if inner.W < 0 {
		inner.W = 0
	}
	if inner.H < 0 {
		inner.H = 0
	}
	return inner
}

// Apply lays out the container's children. Each child occupies one row of
// the content area in child order; rows above the scroll offset or below
// the visible window are given empty rectangles.
func Apply(container *element.Element) {
	inner := Inner(container)
	top := clampScroll(container)

	row := 0
	for _, child := range container.Children() {
		visible := row >= top && row < top+inner.H
		if visible && !inner.Empty() {
			child.SetRect(element.Rect{
				X: inner.X,
				Y: inner.Y + (row - top),
				W: inner.W,
				H: 1,
			})
		} else {
			child.SetRect(element.Rect{})
		}
		row++
	}
}

// ContentHeight returns the total number of content rows in the container.
func ContentHeight(container *element.Element) int {
	return container.ChildCount()
}

// MaxScroll returns the largest useful scroll offset for the container.
func MaxScroll(container *element.Element) int {
	max := ContentHeight(container) - Inner(container).H
	if max < 0 {
		max = 0
	}
	return max
}

// ScrollBy adjusts the container's scroll offset by delta rows, clamped
// to the content range, and relayouts. Returns true if the offset moved.
func ScrollBy(container *element.Element, delta int) bool {
	return ScrollTo(container, container.ScrollTop()+delta)
}

// ScrollTo sets the container's scroll offset, clamped to the content
// range, and relayouts. Returns true if the offset moved.
func ScrollTo(container *element.Element, top int) bool {
	if top < 0 {
		top = 0
	}
	if max := MaxScroll(container); top > max {
		top = max
	}
	if top == container.ScrollTop() {
		return false
	}
	container.SetScrollTop(top)
	Apply(container)
	return true
}

// clampScroll clamps the container's stored scroll offset to the content
// range and returns it. Content may have shrunk since the offset was set.
func clampScroll(container *element.Element) int {
	top := container.ScrollTop()
	if max := MaxScroll(container); top > max {
		top = max
		container.SetScrollTop(top)
	}
	return top
}

// Measure returns the display width of a label in terminal cells,
// counting grapheme clusters so wide runes and emoji measure correctly.
func Measure(label string) int {
	return uniseg.StringWidth(label)
}

// Truncate shortens a label to at most width cells, without splitting a
// grapheme cluster.
func Truncate(label string, width int) string {
	if width <= 0 {
		return ""
	}
	if Measure(label) <= width {
		return label
	}
	var out []byte
	used := 0
	state := -1
	rest := []byte(label)
	for len(rest) > 0 {
		var cluster []byte
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeCluster(rest, state)
		if used+w > width {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out)
}
