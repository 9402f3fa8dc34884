// Package trigger folds button down/up events into the per-tick trigger
// state consumed by the stroke session.
package trigger

import (
	"github.com/Faultbox/deformo/internal/deform"
)

// Button identifies a mouse button. Values match SDL's button numbering.
type Button uint8

const (
	ButtonLeft   Button = 1
	ButtonMiddle Button = 2
	ButtonRight  Button = 3
)

// Push and pull bindings.
const (
	PushButton = ButtonLeft
	PullButton = ButtonRight
)

// Tracker folds button down/up events into per-frame trigger state.
// A button pressed and released within one frame reports both edges with
// Held false.
type Tracker struct {
	held     [8]bool
	pressed  [8]bool
	released [8]bool
}

// BeginFrame clears the edges recorded during the previous frame.
func (t *Tracker) BeginFrame() {
	t.pressed = [8]bool{}
	t.released = [8]bool{}
}

// Down records a button press. Repeated presses without a release are
// ignored.
func (t *Tracker) Down(b Button) {
	if int(b) >= len(t.held) || t.held[b] {
		return
	}
	t.held[b] = true
	t.pressed[b] = true
}

// Up records a button release.
func (t *Tracker) Up(b Button) {
	if int(b) >= len(t.held) || !t.held[b] {
		return
	}
	t.held[b] = false
	t.released[b] = true
}

// Held reports whether b is currently down.
func (t *Tracker) Held(b Button) bool {
	return int(b) < len(t.held) && t.held[b]
}

// Trigger returns the state of b for this frame.
func (t *Tracker) Trigger(b Button) deform.Trigger {
	if int(b) >= len(t.held) {
		return deform.Trigger{}
	}
	return deform.Trigger{Held: t.held[b], Pressed: t.pressed[b], Released: t.released[b]}
}

// Push returns the push trigger.
func (t *Tracker) Push() deform.Trigger { return t.Trigger(PushButton) }

// Pull returns the pull trigger.
func (t *Tracker) Pull() deform.Trigger { return t.Trigger(PullButton) }

// ReleaseAll lifts every held button, e.g. when the window loses focus.
func (t *Tracker) ReleaseAll() {
	for b := range t.held {
		t.Up(Button(b))
	}
}
