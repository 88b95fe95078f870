package orion

import (
	"errors"

	"github.com/oliverbestmann/appbase/glimpse"
)

// ExitApp can be returned from Application.Update to end the application
// after the current frame. It has the same effect as setting
// WindowConfig.ExitRequested.
var ExitApp = errors.New("exit application")

// Surface is the presentation target handed to Application.Render.
// The desktop runner passes a *pulse.Renderer.
type Surface interface {
	// Size returns the size the surface was last configured with.
	Size() (width, height uint32)

	// Configure resizes the surface. The frame loop calls it before
	// rendering whenever the window size changed.
	Configure(width, height uint32) error

	// Present shows the frame drawn during Render. The frame loop calls it
	// once after every Render.
	Present() error
}

type Application interface {
	// Descriptor is queried once before the window is created.
	Descriptor() Descriptor

	// Update is called once per frame. It may change config, the changes
	// are applied to the window after Update returns.
	Update(config *WindowConfig, input glimpse.Input, timing *Timing) error

	// Render is called once per redraw. It must not keep the surface
	// beyond the call.
	Render(surface Surface)
}

// DefaultApplication can be embedded to get the default Descriptor.
type DefaultApplication struct{}

func (DefaultApplication) Descriptor() Descriptor {
	return DefaultDescriptor()
}
