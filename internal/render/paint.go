package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/sortlist/internal/element"
	"github.com/dshills/sortlist/internal/layout"
	"github.com/dshills/sortlist/internal/sortable"
)

// Theme holds the styles the painter uses.
type Theme struct {
	// Base is the background fill.
	Base tcell.Style

	// Frame styles the container border and title.
	Frame tcell.Style

	// Item styles a list row.
	Item tcell.Style

	// Drag styles the row being dragged.
	Drag tcell.Style
}

// DefaultTheme returns the stock theme. The drag style's background is a
// blend of the item background toward the accent color so the dragged
// row reads as "lifted" without inverting it.
func DefaultTheme() Theme {
	base := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	accent := tcell.ColorTeal
	return Theme{
		Base:  base,
		Frame: base.Foreground(tcell.ColorGray),
		Item:  base,
		Drag: base.
			Background(Blend(tcell.ColorBlack, accent, 0.35)).
			Bold(true),
	}
}

// Paint draws the container and its rows. Elements with empty rectangles
// (scrolled out of view) are skipped.
func Paint(scr tcell.Screen, container *element.Element, theme Theme) {
	scr.Fill(' ', theme.Base)

	r := container.Rect()
	if r.Empty() {
		return
	}
	drawFrame(scr, r, container.Label, theme.Frame)

	for _, child := range container.Children() {
		cr := child.Rect()
		if cr.Empty() {
			continue
		}
		style := theme.Item
		if child.HasClass(sortable.DraggingClass) {
			style = theme.Drag
		}
		drawRow(scr, cr, child.Label, style)
	}
}

// drawFrame draws a single-line box with an optional title in the top
// border.
func drawFrame(scr tcell.Screen, r element.Rect, title string, style tcell.Style) {
	for x := r.X + 1; x < r.Right()-1; x++ {
		scr.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		scr.SetContent(x, r.Bottom()-1, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		scr.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		scr.SetContent(r.Right()-1, y, tcell.RuneVLine, nil, style)
	}
	scr.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	scr.SetContent(r.Right()-1, r.Y, tcell.RuneURCorner, nil, style)
	scr.SetContent(r.X, r.Bottom()-1, tcell.RuneLLCorner, nil, style)
	scr.SetContent(r.Right()-1, r.Bottom()-1, tcell.RuneLRCorner, nil, style)

	if title == "" || r.W < 6 {
		return
	}
	text := " " + layout.Truncate(title, r.W-4) + " "
	drawText(scr, r.X+2, r.Y, text, style)
}

// drawRow paints one list row, filling the full width.
func drawRow(scr tcell.Screen, r element.Rect, label string, style tcell.Style) {
	for x := r.X; x < r.Right(); x++ {
		scr.SetContent(x, r.Y, ' ', nil, style)
	}
	drawText(scr, r.X+1, r.Y, layout.Truncate(label, r.W-2), style)
}

// drawText writes a string starting at (x, y).
func drawText(scr tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}
