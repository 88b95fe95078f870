package glimpse

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/oliverbestmann/appbase/glm"
)

// Input is the read only view on the input state handed to application code.
type Input interface {
	IsKeyHeld(key Key) bool
	IsKeyJustPressed(key Key) bool
	IsKeyJustReleased(key Key) bool
	HeldKeys() []Key
	JustPressedKeys() []Key

	IsMouseButtonHeld(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool
	IsMouseButtonJustReleased(button MouseButton) bool
	HeldMouseButtons() []MouseButton
	JustPressedMouseButtons() []MouseButton

	CursorPosition() glm.Vec2f
	CursorDelta() glm.Vec2f
}

type controlState[K comparable] struct {
	// controls that are currently held down
	held map[K]struct{}

	// controls that were pressed after the last call to nextTick(),
	// even if they were released again since.
	justPressed map[K]struct{}

	// controls that were released after the last call to nextTick()
	justReleased map[K]struct{}
}

func (c *controlState[K]) press(control K) {
	insert(&c.held, control)
	insert(&c.justPressed, control)
}

func (c *controlState[K]) release(control K) {
	delete(c.held, control)
	insert(&c.justReleased, control)
}

func (c *controlState[K]) nextTick() {
	clear(c.justPressed)
	clear(c.justReleased)
}

func insert[K comparable](m *map[K]struct{}, key K) {
	if *m == nil {
		*m = map[K]struct{}{}
	}

	(*m)[key] = struct{}{}
}

func contains[K comparable](m map[K]struct{}, key K) bool {
	_, ok := m[key]
	return ok
}

func sortedKeys[K ~int](m map[K]struct{}) []K {
	return slices.Sorted(maps.Keys(m))
}

// InputState tracks held and just pressed keys and mouse buttons.
//
// Events are fed in through Handle as they arrive from the platform.
// The just pressed and just released sets accumulate until ClearEdges is
// called, which the frame loop does exactly once per frame after the
// application had a chance to look at them.
type InputState struct {
	keys    controlState[Key]
	buttons controlState[MouseButton]
	cursor  glm.Vec2f

	// cursor position at the last ClearEdges
	cursorAtFrameStart glm.Vec2f
	cursorKnown        bool
}

var _ Input = (*InputState)(nil)

// Handle applies a single event to the input state. It reports whether the
// event was an input event. All other events are ignored.
func (s *InputState) Handle(event Event) bool {
	switch ev := event.(type) {
	case KeyboardInput:
		if ev.Pressed {
			// the OS repeats held keys, only the first press is interesting
			if !ev.Repeat {
				slog.Debug("Key pressed", slog.String("key", ev.Key.String()))
			}

			s.keys.press(ev.Key)
		} else {
			s.keys.release(ev.Key)
		}

	case MouseInput:
		if ev.Pressed {
			s.buttons.press(ev.Button)
		} else {
			s.buttons.release(ev.Button)
		}

	case CursorMoved:
		if !s.cursorKnown {
			// the first position is not a movement
			s.cursorKnown = true
			s.cursorAtFrameStart = ev.Position
		}

		s.cursor = ev.Position

	default:
		return false
	}

	return true
}

// ClearEdges forgets the just pressed and just released state of all
// controls. Held controls stay held.
func (s *InputState) ClearEdges() {
	s.keys.nextTick()
	s.buttons.nextTick()
	s.cursorAtFrameStart = s.cursor
}

func (s *InputState) IsKeyHeld(key Key) bool {
	return contains(s.keys.held, key)
}

func (s *InputState) IsKeyJustPressed(key Key) bool {
	return contains(s.keys.justPressed, key)
}

func (s *InputState) IsKeyJustReleased(key Key) bool {
	return contains(s.keys.justReleased, key)
}

// HeldKeys returns the held keys in ascending order.
func (s *InputState) HeldKeys() []Key {
	return sortedKeys(s.keys.held)
}

// JustPressedKeys returns the keys pressed during the current frame
// in ascending order.
func (s *InputState) JustPressedKeys() []Key {
	return sortedKeys(s.keys.justPressed)
}

func (s *InputState) IsMouseButtonHeld(button MouseButton) bool {
	return contains(s.buttons.held, button)
}

func (s *InputState) IsMouseButtonJustPressed(button MouseButton) bool {
	return contains(s.buttons.justPressed, button)
}

func (s *InputState) IsMouseButtonJustReleased(button MouseButton) bool {
	return contains(s.buttons.justReleased, button)
}

func (s *InputState) HeldMouseButtons() []MouseButton {
	return sortedKeys(s.buttons.held)
}

func (s *InputState) JustPressedMouseButtons() []MouseButton {
	return sortedKeys(s.buttons.justPressed)
}

// CursorPosition returns the last reported cursor position.
func (s *InputState) CursorPosition() glm.Vec2f {
	return s.cursor
}

// CursorDelta returns how far the cursor moved during the current frame.
func (s *InputState) CursorDelta() glm.Vec2f {
	return s.cursor.Sub(s.cursorAtFrameStart)
}
