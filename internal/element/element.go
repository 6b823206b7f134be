// Package element provides the widget element tree: ordered parent/child
// structure, cell geometry, selector matching, and pointer event routing.
//
// The tree's child order is authoritative for list order. Components that
// need "current order" read it from the tree rather than keeping their own
// order model.
package element

// Element is a node in the widget tree.
//
// An element's identity is its pointer; there is no separate key. Kind, ID
// and classes exist so selectors can address elements, and Label is the
// text a renderer shows for the element.
type Element struct {
	// Kind is the element type used by selectors, e.g. "list" or "item".
	Kind string

	// ID is an optional unique name addressable as "#id".
	ID string

	// Label is display text for renderers.
	Label string

	classes map[string]struct{}

	parent   *Element
	children []*Element

	rect      Rect
	scrollTop int
}

// New creates an element of the given kind.
func New(kind string) *Element {
	return &Element{Kind: kind}
}

// AddClass adds a class to the element.
func (e *Element) AddClass(class string) {
	if class == "" {
		return
	}
	if e.classes == nil {
		e.classes = make(map[string]struct{})
	}
	e.classes[class] = struct{}{}
}

// RemoveClass removes a class from the element.
func (e *Element) RemoveClass(class string) {
	delete(e.classes, class)
}

// HasClass returns true if the element carries the class.
func (e *Element) HasClass(class string) bool {
	_, ok := e.classes[class]
	return ok
}

// Parent returns the element's parent, or nil for a detached root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the element's children in order. The returned slice is
// the element's own backing store; callers must not mutate it.
func (e *Element) Children() []*Element {
	return e.children
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// NextSibling returns the element immediately after this one in its
// parent's child order, or nil if it is the last child or detached.
func (e *Element) NextSibling() *Element {
	if e.parent == nil {
		return nil
	}
	idx := e.parent.indexOf(e)
	if idx < 0 || idx+1 >= len(e.parent.children) {
		return nil
	}
	return e.parent.children[idx+1]
}

// PrevSibling returns the element immediately before this one, or nil.
func (e *Element) PrevSibling() *Element {
	if e.parent == nil {
		return nil
	}
	idx := e.parent.indexOf(e)
	if idx <= 0 {
		return nil
	}
	return e.parent.children[idx-1]
}

// AppendChild adds child as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	child.Detach()
	child.parent = e
	e.children = append(e.children, child)
}

// InsertBefore inserts child immediately before the given reference
// sibling. A nil reference appends the child at the end. If the reference
// is not a child of e, the call is a no-op. Inserting a child before
// itself or before its current next sibling leaves the order unchanged.
func (e *Element) InsertBefore(child, before *Element) {
	if child == nil || child == e || child == before {
		return
	}
	if before == nil {
		e.AppendChild(child)
		return
	}
	if before.parent != e {
		return
	}
	child.Detach()
	idx := e.indexOf(before)
	if idx < 0 {
		return
	}
	child.parent = e
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = child
}

// Detach removes the element from its parent, if any.
func (e *Element) Detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	idx := p.indexOf(e)
	if idx >= 0 {
		p.children = append(p.children[:idx], p.children[idx+1:]...)
	}
	e.parent = nil
}

// indexOf returns the index of child in e's children, or -1.
func (e *Element) indexOf(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Rect returns the element's current screen rectangle.
func (e *Element) Rect() Rect {
	return e.rect
}

// SetRect sets the element's screen rectangle.
func (e *Element) SetRect(r Rect) {
	e.rect = r
}

// ScrollTop returns the element's vertical scroll offset in rows.
func (e *Element) ScrollTop() int {
	return e.scrollTop
}

// SetScrollTop sets the element's vertical scroll offset in rows.
// Negative offsets are clamped to zero.
func (e *Element) SetScrollTop(rows int) {
	if rows < 0 {
		rows = 0
	}
	e.scrollTop = rows
}

// Contains reports whether other is e or a descendant of e.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}
