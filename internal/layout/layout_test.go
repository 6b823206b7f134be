package layout

import (
	"testing"

	"github.com/dshills/sortlist/internal/element"
)

// newList builds a container at (0,0) with the given outer size and n
// items.
func newList(w, h, n int) *element.Element {
	list := element.New("list")
	list.SetRect(element.Rect{X: 0, Y: 0, W: w, H: h})
	for i := 0; i < n; i++ {
		list.AppendChild(element.New("item"))
	}
	return list
}

func TestInner(t *testing.T) {
	list := newList(10, 5, 0)
	inner := Inner(list)
	want := element.Rect{X: 1, Y: 1, W: 8, H: 3}
	if inner != want {
		t.Errorf("Inner = %+v, want %+v", inner, want)
	}
}

func TestInnerTinyContainer(t *testing.T) {
	list := newList(1, 1, 0)
	if !Inner(list).Empty() {
		t.Error("a container smaller than its frame should have an empty inner rect")
	}
}

func TestApplyAssignsRowRects(t *testing.T) {
	list := newList(10, 5, 3)
	Apply(list)

	for i, child := range list.Children() {
		r := child.Rect()
		want := element.Rect{X: 1, Y: 1 + i, W: 8, H: 1}
		if r != want {
			t.Errorf("child %d rect = %+v, want %+v", i, r, want)
		}
	}
}

func TestApplyScrolledWindow(t *testing.T) {
	list := newList(10, 5, 6) // 3 visible rows
	list.SetScrollTop(2)
	Apply(list)

	children := list.Children()
	for i := 0; i < 2; i++ {
		if !children[i].Rect().Empty() {
			t.Errorf("child %d above the window should have an empty rect", i)
		}
	}
	for i := 2; i < 5; i++ {
		want := element.Rect{X: 1, Y: 1 + (i - 2), W: 8, H: 1}
		if children[i].Rect() != want {
			t.Errorf("child %d rect = %+v, want %+v", i, children[i].Rect(), want)
		}
	}
	if !children[5].Rect().Empty() {
		t.Error("child below the window should have an empty rect")
	}
}

func TestMaxScroll(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		expected int
	}{
		{"fits", 2, 0},
		{"exact", 3, 0},
		{"overflows", 7, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := newList(10, 5, tt.items)
			if got := MaxScroll(list); got != tt.expected {
				t.Errorf("MaxScroll = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestScrollBy(t *testing.T) {
	list := newList(10, 5, 7) // max scroll 4
	Apply(list)

	if !ScrollBy(list, 2) {
		t.Error("scroll within range should move")
	}
	if list.ScrollTop() != 2 {
		t.Errorf("ScrollTop = %d, want 2", list.ScrollTop())
	}

	if !ScrollBy(list, 10) {
		t.Error("scroll past the end should clamp but still move")
	}
	if list.ScrollTop() != 4 {
		t.Errorf("ScrollTop = %d, want 4 (clamped)", list.ScrollTop())
	}

	if ScrollBy(list, 1) {
		t.Error("scroll at the bottom should not move")
	}

	if !ScrollBy(list, -10) {
		t.Error("scroll back to the top should move")
	}
	if list.ScrollTop() != 0 {
		t.Errorf("ScrollTop = %d, want 0", list.ScrollTop())
	}
	if ScrollBy(list, -1) {
		t.Error("scroll above the top should not move")
	}
}

func TestApplyClampsStaleScroll(t *testing.T) {
	list := newList(10, 5, 7)
	list.SetScrollTop(4)
	Apply(list)

	// Content shrinks below the stored offset.
	for len(list.Children()) > 3 {
		list.Children()[0].Detach()
	}
	Apply(list)

	if list.ScrollTop() != 0 {
		t.Errorf("ScrollTop = %d, want 0 after content shrank", list.ScrollTop())
	}
	if list.Children()[0].Rect().Empty() {
		t.Error("remaining children should be visible again")
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"wide", "日本", 4},
		{"emoji", "🙂", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Measure(tt.label); got != tt.expected {
				t.Errorf("Measure(%q) = %d, want %d", tt.label, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		width    int
		expected string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abc", 3, "abc"},
		{"cut", "abcdef", 3, "abc"},
		{"zero", "abc", 0, ""},
		{"wide no split", "日本語", 5, "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.label, tt.width); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.expected)
			}
		})
	}
}
