// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventFocusLost
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	MouseX int
	MouseY int
}

// Input polls SDL and tracks which keys are held.
type Input struct {
	events []Event
	held   KeySet
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(KeySet),
	}
}

// Update drains pending SDL events. Key-down inserts into the held set and
// key-up removes from it; key repeat is ignored.
func (i *Input) Update() {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				// Size is re-read from the drawable, which differs on HiDPI
				i.events = append(i.events, Event{Type: EventWindowResize})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// Key-up events never arrive for keys released while unfocused
				clear(i.held)
				i.events = append(i.events, Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			key := e.Keysym.Sym
			if e.Type == sdl.KEYDOWN {
				if e.Repeat != 0 {
					continue
				}
				i.held.Add(key)
				i.events = append(i.events, Event{Type: EventKeyDown, Key: key})
			} else if e.Type == sdl.KEYUP {
				i.held.Remove(key)
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			typ := EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				typ = EventMouseDown
			}
			i.events = append(i.events, Event{
				Type:   typ,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})
		}
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Held returns the set of keys currently down.
func (i *Input) Held() KeySet {
	return i.held
}
