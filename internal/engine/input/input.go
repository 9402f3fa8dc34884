// Package input turns SDL2 events into frame events and stroke triggers.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/deformo/internal/engine/trigger"
)

// EventType identifies a frame event.
type EventType int

const (
	EventNone EventType = iota
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseWheel
	EventFocusLost
)

// Event is one processed SDL event. Only the fields of its Type are set.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool // key held down long enough to auto-repeat
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int
	DeltaY int
	Wheel  float32
}

// Input collects one frame of events and tracks mouse buttons as triggers.
type Input struct {
	events   []Event
	triggers trigger.Tracker
	mouseX   int
	mouseY   int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains the SDL queue. Trigger edges from the previous frame are
// cleared first. It returns true when the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.triggers.BeginFrame()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				i.push(Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// A button released outside the window never reports an up event.
				i.triggers.ReleaseAll()
				i.push(Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.push(Event{Type: EventKeyDown, Key: e.Keysym.Scancode, Repeat: e.Repeat != 0})
			}

		case *sdl.MouseMotionEvent:
			i.mouseX, i.mouseY = int(e.X), int(e.Y)
			i.push(Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DeltaX: int(e.XRel),
				DeltaY: int(e.YRel),
			})

		case *sdl.MouseWheelEvent:
			wheel := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				wheel = -wheel
			}
			i.push(Event{Type: EventMouseWheel, Wheel: wheel})

		case *sdl.MouseButtonEvent:
			i.mouseX, i.mouseY = int(e.X), int(e.Y)
			switch e.Type {
			case sdl.MOUSEBUTTONDOWN:
				i.triggers.Down(trigger.Button(e.Button))
			case sdl.MOUSEBUTTONUP:
				i.triggers.Up(trigger.Button(e.Button))
			}
		}
	}

	return false
}

func (i *Input) push(e Event) {
	i.events = append(i.events, e)
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Triggers returns the stroke trigger state for this frame.
func (i *Input) Triggers() *trigger.Tracker {
	return &i.triggers
}

// Mouse returns the last known pointer position in window coordinates.
func (i *Input) Mouse() (x, y int) {
	return i.mouseX, i.mouseY
}
