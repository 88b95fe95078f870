package glimpse

// Monitor is a display the window can be made fullscreen on.
type Monitor interface {
	Name() string
}

// Window is a native window driven by an event loop.
//
// All methods must be called from the goroutine that runs the event loop.
type Window interface {
	// Size returns the current inner size of the window.
	Size() (width, height uint32)

	SetSize(width, height uint32) error
	SetResizable(resizable bool) error
	SetTitle(title string) error

	// EnterFullscreen makes the window cover the given monitor without
	// changing the monitors video mode.
	EnterFullscreen(monitor Monitor) error
	ExitFullscreen() error

	PrimaryMonitor() Monitor

	// RequestRedraw schedules a RedrawRequested event after the
	// current batch of events was delivered.
	RequestRedraw()

	// Run blocks and feeds all events into the handler until the handler
	// returns ControlFlowExit.
	Run(handler EventHandler) error

	Terminate()
}
