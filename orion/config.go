package orion

// WindowConfig is the desired state of the window. The application edits it
// during Update, the frame loop applies the changes to the real window after
// Update returns.
type WindowConfig struct {
	Width      uint32
	Height     uint32
	Fullscreen bool
	Resizable  bool
	Title      string

	// ExitRequested ends the frame loop after the current frame.
	ExitRequested bool
}

// Descriptor describes the initial window and the process wide setup
// of an application.
type Descriptor struct {
	WindowWidth  uint32
	WindowHeight uint32
	Fullscreen   bool
	Resizable    bool
	Title        string

	// WithLogging installs a default slog handler on startup.
	WithLogging bool
}

func DefaultDescriptor() Descriptor {
	return Descriptor{
		WindowWidth:  800,
		WindowHeight: 600,
		Fullscreen:   false,
		Resizable:    false,
		Title:        "Application",
		WithLogging:  true,
	}
}

// WindowConfig returns the initial window configuration. Zero sizes and
// an empty title fall back to the values of DefaultDescriptor.
func (d Descriptor) WindowConfig() WindowConfig {
	defaults := DefaultDescriptor()

	if d.WindowWidth == 0 {
		d.WindowWidth = defaults.WindowWidth
	}

	if d.WindowHeight == 0 {
		d.WindowHeight = defaults.WindowHeight
	}

	if d.Title == "" {
		d.Title = defaults.Title
	}

	return WindowConfig{
		Width:      d.WindowWidth,
		Height:     d.WindowHeight,
		Fullscreen: d.Fullscreen,
		Resizable:  d.Resizable,
		Title:      d.Title,
	}
}
