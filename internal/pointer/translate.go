package pointer

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Translator converts tcell mouse events into pointer events.
//
// tcell reports the full button state with every mouse event rather than
// press/release transitions, so the translator keeps the previous state
// and derives the transition: a newly held button is a press, a newly
// released button is a release, and motion is a move or a drag depending
// on whether a button is held.
type Translator struct {
	held    tcell.ButtonMask
	lastPos Position
	hasPos  bool
}

// NewTranslator creates a translator with no prior button state.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate converts a tcell mouse event into zero or more pointer events.
// Events are returned in the order they logically occurred: releases first,
// then presses, then motion, then wheel ticks.
func (t *Translator) Translate(ev *tcell.EventMouse) []Event {
	x, y := ev.Position()
	pos := Position{X: x, Y: y}
	mods := convertModifiers(ev.Modifiers())
	now := ev.When()
	if now.IsZero() {
		now = time.Now()
	}

	buttons := ev.Buttons()

	var out []Event

	// Button transitions against the previous snapshot.
	pressed := buttons &^ t.held
	released := t.held &^ buttons

	for _, b := range buttonOrder {
		if released&b.mask != 0 {
			out = append(out, Event{Position: pos, Button: b.button, Modifiers: mods, Action: ActionRelease, Timestamp: now})
		}
	}
	for _, b := range buttonOrder {
		if pressed&b.mask != 0 {
			out = append(out, Event{Position: pos, Button: b.button, Modifiers: mods, Action: ActionPress, Timestamp: now})
		}
	}

	// Motion. Only reported when the position actually changed and there
	// was no press/release transition at the same coordinates.
	heldNow := buttons & buttonBits
	if t.hasPos && !pos.Equal(t.lastPos) && len(out) == 0 {
		action := ActionMove
		button := ButtonNone
		if heldNow != 0 {
			action = ActionDrag
			button = firstButton(heldNow)
		}
		out = append(out, Event{Position: pos, Button: button, Modifiers: mods, Action: action, Timestamp: now})
	}

	// Wheel ticks are momentary; they never enter the held state.
	if buttons&tcell.WheelUp != 0 {
		out = append(out, Event{Position: pos, Button: ButtonWheelUp, Modifiers: mods, Action: ActionScroll, Timestamp: now})
	}
	if buttons&tcell.WheelDown != 0 {
		out = append(out, Event{Position: pos, Button: ButtonWheelDown, Modifiers: mods, Action: ActionScroll, Timestamp: now})
	}

	t.held = heldNow
	t.lastPos = pos
	t.hasPos = true

	return out
}

// Reset clears the tracked button and position state.
func (t *Translator) Reset() {
	t.held = 0
	t.hasPos = false
	t.lastPos = Position{}
}

// buttonBits covers the buttons that participate in held-state tracking.
const buttonBits = tcell.Button1 | tcell.Button2 | tcell.Button3

var buttonOrder = []struct {
	mask   tcell.ButtonMask
	button Button
}{
	{tcell.Button1, ButtonLeft},
	{tcell.Button2, ButtonRight},
	{tcell.Button3, ButtonMiddle},
}

// firstButton returns the highest-priority held button.
func firstButton(mask tcell.ButtonMask) Button {
	for _, b := range buttonOrder {
		if mask&b.mask != 0 {
			return b.button
		}
	}
	return ButtonNone
}

// convertModifiers converts tcell modifier state to pointer modifiers.
func convertModifiers(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= ModMeta
	}
	return mods
}
