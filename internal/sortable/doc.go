// Package sortable provides a drag-to-reorder list widget.
//
// A Sortable binds one container element and one item selector. While
// idle it watches for a pointer press on a matching item (optionally
// restricted to a handle sub-element); an accepted press opens an
// Interaction that owns the gesture from pickup to release, reordering
// the container's children as a live preview while the pointer moves
// and scrolling the container when the pointer sits near its edges.
//
// When the gesture ends, by drop, by the pointer leaving the surface,
// or by Destroy, the controller detaches its document-wide listeners,
// waits for the interaction's finalize result, re-reads the container's
// child order and notifies subscribers:
//
//	s := sortable.New(doc, list, sortable.DefaultConfig())
//	s.OnChanged(func(c sortable.Change) {
//	    // c.Items is the new order, c.Result the final placement.
//	})
//	s.Init()
//
// The container's child order is the single source of truth for list
// order; neither the interaction nor the controller keeps a separate
// order model.
//
// Anomalous conditions (a press while a gesture is active, handler
// calls while idle, a press outside the configured handle) are silent
// no-ops. The widget emits no error events and returns no errors.
package sortable
