package element

import "strings"

// Selectors address elements by kind, id and classes using a compound of
// the forms "kind", "#id" and ".class", e.g. "item", "item.locked" or
// "#row-3". Every part of a compound must match. The empty selector
// matches nothing.

// selector is a parsed compound selector.
type selector struct {
	kind    string
	id      string
	classes []string
}

// parseSelector parses a compound selector string.
func parseSelector(s string) selector {
	var sel selector
	s = strings.TrimSpace(s)
	for len(s) > 0 {
		marker := byte(0)
		switch s[0] {
		case '.', '#':
			marker = s[0]
			s = s[1:]
		}
		end := strings.IndexAny(s, ".#")
		part := s
		if end >= 0 {
			part = s[:end]
			s = s[end:]
		} else {
			s = ""
		}
		switch marker {
		case '.':
			if part != "" {
				sel.classes = append(sel.classes, part)
			}
		case '#':
			sel.id = part
		default:
			sel.kind = part
		}
	}
	return sel
}

// matches reports whether the element satisfies every part of the selector.
func (s selector) matches(e *Element) bool {
	if e == nil {
		return false
	}
	if s.kind == "" && s.id == "" && len(s.classes) == 0 {
		return false
	}
	if s.kind != "" && e.Kind != s.kind {
		return false
	}
	if s.id != "" && e.ID != s.id {
		return false
	}
	for _, class := range s.classes {
		if !e.HasClass(class) {
			return false
		}
	}
	return true
}

// Matches reports whether the element matches the selector.
func Matches(e *Element, sel string) bool {
	return parseSelector(sel).matches(e)
}

// Closest returns the nearest ancestor of e (including e itself) matching
// the selector, or nil if none matches.
func Closest(e *Element, sel string) *Element {
	parsed := parseSelector(sel)
	for n := e; n != nil; n = n.parent {
		if parsed.matches(n) {
			return n
		}
	}
	return nil
}

// Find returns the first descendant of root (excluding root itself)
// matching the selector in depth-first order, or nil.
func Find(root *Element, sel string) *Element {
	parsed := parseSelector(sel)
	return findFirst(root, parsed)
}

func findFirst(root *Element, sel selector) *Element {
	if root == nil {
		return nil
	}
	for _, child := range root.children {
		if sel.matches(child) {
			return child
		}
		if found := findFirst(child, sel); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant of root (excluding root itself)
// matching the selector, in depth-first document order.
func FindAll(root *Element, sel string) []*Element {
	parsed := parseSelector(sel)
	var out []*Element
	collect(root, parsed, &out)
	return out
}

func collect(root *Element, sel selector, out *[]*Element) {
	if root == nil {
		return
	}
	for _, child := range root.children {
		if sel.matches(child) {
			*out = append(*out, child)
		}
		collect(child, sel, out)
	}
}
