package sortable

import (
	"testing"

	"github.com/dshills/sortlist/internal/element"
	"github.com/dshills/sortlist/internal/layout"
	"github.com/dshills/sortlist/internal/pointer"
)

func TestAutoscrollMargins(t *testing.T) {
	// Six items, three visible rows: inner rows 1..3, margin rows 1 and 3.
	tests := []struct {
		name     string
		scroller autoscroller
		startTop int
		pos      pointer.Position
		wantMove bool
		wantTop  int
	}{
		{"bottom margin scrolls down", autoscroller{margin: 1, step: 1}, 0, pointer.Position{X: 2, Y: 3}, true, 1},
		{"top margin scrolls up", autoscroller{margin: 1, step: 1}, 2, pointer.Position{X: 2, Y: 1}, true, 1},
		{"middle row is inert", autoscroller{margin: 1, step: 1}, 1, pointer.Position{X: 2, Y: 2}, false, 1},
		{"already at top clamps", autoscroller{margin: 1, step: 1}, 0, pointer.Position{X: 2, Y: 1}, false, 0},
		{"already at bottom clamps", autoscroller{margin: 1, step: 1}, 3, pointer.Position{X: 2, Y: 3}, false, 3},
		{"outside columns is inert", autoscroller{margin: 1, step: 1}, 0, pointer.Position{X: 11, Y: 3}, false, 0},
		{"frame row is inert", autoscroller{margin: 1, step: 1}, 0, pointer.Position{X: 2, Y: 4}, false, 0},
		{"zero margin disables", autoscroller{margin: 0, step: 1}, 0, pointer.Position{X: 2, Y: 3}, false, 0},
		{"zero step disables", autoscroller{margin: 1, step: 0}, 0, pointer.Position{X: 2, Y: 3}, false, 0},
		{"larger step", autoscroller{margin: 1, step: 2}, 0, pointer.Position{X: 2, Y: 3}, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, _ := newList(6, 3)
			layout.ScrollTo(list, tt.startTop)

			moved := tt.scroller.scroll(list, tt.pos)
			if moved != tt.wantMove {
				t.Errorf("scroll moved = %v, want %v", moved, tt.wantMove)
			}
			if got := list.ScrollTop(); got != tt.wantTop {
				t.Errorf("scrollTop = %d, want %d", got, tt.wantTop)
			}
		})
	}
}

func TestDragIntoMarginScrollsAndReanchors(t *testing.T) {
	list, items := newList(6, 3)
	itx := newInteraction(items[0], list, over(items[0]), autoscroller{margin: 1, step: 1})
	itx.Start()

	// Holding the pointer on the bottom visible row walks the window
	// down one row per move.
	itx.Move(pointer.Position{X: 2, Y: 3})
	if got := list.ScrollTop(); got != 1 {
		t.Fatalf("scrollTop = %d, want 1 after first tick", got)
	}
	// After the scroll, row 3 shows d (a is hidden); a lands below it.
	listOrder(t, list, "bcdaef")

	itx.Move(pointer.Position{X: 2, Y: 3})
	if got := list.ScrollTop(); got != 2 {
		t.Fatalf("scrollTop = %d, want 2 after second tick", got)
	}
	listOrder(t, list, "bcdeaf")

	res := <-itx.Drop(pointer.Position{X: 2, Y: 3})
	if res.Item != items[0] {
		t.Errorf("result item = %v, want a", res.Item)
	}
	if !itx.OrderHasChanged() {
		t.Error("order should have changed")
	}
}

func TestAutoscrollEmptyContainer(t *testing.T) {
	list := element.New("list")
	s := autoscroller{margin: 1, step: 1}
	if s.scroll(list, pointer.Position{X: 1, Y: 1}) {
		t.Error("scrolling an unsized container should be inert")
	}
}
