package element

import "github.com/dshills/sortlist/internal/pointer"

// Document owns an element tree root and routes pointer events to
// listeners. Dispatch finds the deepest element containing the event
// position and delivers the event to document-level listeners, listeners
// scoped to the target or one of its ancestors, and delegated listeners
// whose selector matches the target or one of its ancestors within the
// delegation root.
//
// A position outside the root's rectangle has no target; the event is
// redelivered as an ActionLeave so listeners can treat "pointer left the
// surface" uniformly.
type Document struct {
	root      *Element
	listeners *registry
}

// NewDocument creates a document around the given root element.
func NewDocument(root *Element) *Document {
	return &Document{
		root:      root,
		listeners: newRegistry(),
	}
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// On installs a document-level listener for the given action.
func (d *Document) On(action pointer.Action, fn Handler) Token {
	if fn == nil {
		return Token{}
	}
	return d.listeners.add(&binding{action: action, handler: fn})
}

// OnElement installs a listener that fires when the target is scope or a
// descendant of scope.
func (d *Document) OnElement(scope *Element, action pointer.Action, fn Handler) Token {
	if fn == nil || scope == nil {
		return Token{}
	}
	return d.listeners.add(&binding{action: action, scope: scope, handler: fn})
}

// Delegate installs a listener scoped to root that fires when the hit
// target, or one of its ancestors inside root, matches the selector. The
// handler receives the matching element.
func (d *Document) Delegate(root *Element, selector string, action pointer.Action, fn DelegateHandler) Token {
	if fn == nil || root == nil || selector == "" {
		return Token{}
	}
	return d.listeners.add(&binding{action: action, scope: root, selector: selector, delegate: fn})
}

// Dispatch routes a pointer event to matching listeners in installation
// order. Events positioned outside the root are converted to ActionLeave
// before delivery.
func (d *Document) Dispatch(ev pointer.Event) {
	target := d.HitTest(ev.Position)
	if target == nil && ev.Action != pointer.ActionLeave && d.outsideRoot(ev.Position) {
		ev.Action = pointer.ActionLeave
	}

	for _, b := range d.listeners.snapshot() {
		if b.action != ev.Action {
			continue
		}
		// Handlers may detach listeners mid-dispatch; skip the dead ones.
		if !d.listeners.installed(b.id) {
			continue
		}
		if b.selector != "" {
			match := d.delegateMatch(b, target)
			if match == nil {
				continue
			}
			b.delegate(ev, match, target)
			continue
		}
		if b.scope != nil && (target == nil || !b.scope.Contains(target)) {
			continue
		}
		b.handler(ev, target)
	}
}

// HitTest returns the deepest element whose rectangle contains the
// position, preferring later siblings when rectangles overlap, or nil.
func (d *Document) HitTest(pos pointer.Position) *Element {
	if d.root == nil || !d.root.rect.Contains(pos) {
		return nil
	}
	return deepestHit(d.root, pos)
}

func deepestHit(e *Element, pos pointer.Position) *Element {
	for i := len(e.children) - 1; i >= 0; i-- {
		child := e.children[i]
		if child.rect.Empty() || !child.rect.Contains(pos) {
			continue
		}
		return deepestHit(child, pos)
	}
	return e
}

// outsideRoot reports whether the position is outside the root's bounds.
func (d *Document) outsideRoot(pos pointer.Position) bool {
	return d.root == nil || !d.root.rect.Contains(pos)
}

// delegateMatch resolves a delegated binding against a hit target.
func (d *Document) delegateMatch(b *binding, target *Element) *Element {
	if target == nil || !b.scope.Contains(target) {
		return nil
	}
	parsed := parseSelector(b.selector)
	for n := target; n != nil && n != b.scope; n = n.parent {
		if parsed.matches(n) {
			return n
		}
	}
	return nil
}
