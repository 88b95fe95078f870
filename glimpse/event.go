package glimpse

import "github.com/oliverbestmann/appbase/glm"

// Event is a window-system event delivered by a Window backend.
type Event interface {
	isEvent()
}

// CloseRequested is sent when the user asks the window to close,
// e.g. by clicking the close button in the title bar.
type CloseRequested struct{}

// Resized reports a new window size decided by the platform.
type Resized struct {
	Width, Height uint32
}

// KeyboardInput reports a key transition. Auto repeated key presses
// are delivered as a press with Repeat set.
type KeyboardInput struct {
	Key     Key
	Pressed bool
	Repeat  bool
}

// MouseInput reports a pointer button transition.
type MouseInput struct {
	Button  MouseButton
	Pressed bool
}

// CursorMoved reports the cursor position in window coordinates.
type CursorMoved struct {
	Position glm.Vec2f
}

// EventsCleared is sent once all pending events of the current batch were
// delivered. It is the only event that drives a frame forward.
type EventsCleared struct{}

// RedrawRequested is sent after Window.RequestRedraw was called.
type RedrawRequested struct{}

func (CloseRequested) isEvent()  {}
func (Resized) isEvent()         {}
func (KeyboardInput) isEvent()   {}
func (MouseInput) isEvent()      {}
func (CursorMoved) isEvent()     {}
func (EventsCleared) isEvent()   {}
func (RedrawRequested) isEvent() {}

// ControlFlow is returned by an EventHandler to tell the backend whether
// it should continue to deliver events.
type ControlFlow int

const (
	ControlFlowContinue ControlFlow = iota
	ControlFlowExit
)

// EventHandler receives every event of a Window. Returning ControlFlowExit
// stops the event loop; no further events are delivered afterward.
type EventHandler func(event Event) ControlFlow
