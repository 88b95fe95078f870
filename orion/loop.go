package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/benbjohnson/clock"
	"github.com/oliverbestmann/appbase/glimpse"
)

// Phase is the lifecycle state of a Driver.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseExitRequested
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseExitRequested:
		return "ExitRequested"
	case PhaseTerminated:
		return "Terminated"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Platform is the window and event loop the Driver runs on.
type Platform interface {
	WindowHandle
	PrimaryMonitor() glimpse.Monitor
	RequestRedraw()
	Run(handler glimpse.EventHandler) error
}

type DriverOptions struct {
	// Clock used for frame timing. Defaults to the wall clock.
	Clock clock.Clock

	// Surface passed to Application.Render. May be nil.
	Surface Surface
}

// Driver runs the frame loop of an application. Each frame it samples the
// time, updates the application, applies window changes, checks for exit,
// clears the input edges and requests a redraw, in exactly that order.
type Driver struct {
	platform Platform
	monitor  glimpse.Monitor
	app      Application
	surface  Surface

	// desired window state and the state applied in the previous frame
	config   WindowConfig
	previous WindowConfig

	input  glimpse.InputState
	timing *Timing

	phase          Phase
	closeRequested bool

	// first fatal error, returned from Run
	err error
}

// NewDriver prepares a frame loop. The config must describe the state
// the platform window was created with.
func NewDriver(platform Platform, app Application, config WindowConfig, opts DriverOptions) *Driver {
	return &Driver{
		platform: platform,
		monitor:  platform.PrimaryMonitor(),
		app:      app,
		surface:  opts.Surface,
		config:   config,
		previous: config,
		timing:   NewTiming(opts.Clock),
	}
}

// Run blocks until the application exits or a fatal error occurs.
func (d *Driver) Run() error {
	if d.phase != PhaseRunning {
		return errors.New("driver is not running")
	}

	err := d.platform.Run(d.HandleEvent)

	d.phase = PhaseTerminated

	if err != nil {
		return fmt.Errorf("run event loop: %w", err)
	}

	return d.err
}

// Phase returns the current lifecycle state.
func (d *Driver) Phase() Phase {
	return d.phase
}

// Config returns the current desired window state.
func (d *Driver) Config() WindowConfig {
	return d.config
}

// HandleEvent is the glimpse.EventHandler of the frame loop.
func (d *Driver) HandleEvent(event glimpse.Event) glimpse.ControlFlow {
	switch d.phase {
	case PhaseExitRequested:
		slog.Info("Terminate frame loop")
		d.phase = PhaseTerminated
		return glimpse.ControlFlowExit

	case PhaseTerminated:
		return glimpse.ControlFlowExit
	}

	switch ev := event.(type) {
	case glimpse.CloseRequested:
		slog.Info("Window close requested")
		d.closeRequested = true

	case glimpse.Resized:
		d.resized(ev)

	case glimpse.EventsCleared:
		d.tick()

	case glimpse.RedrawRequested:
		d.redraw()

	default:
		d.input.Handle(event)
	}

	if d.phase != PhaseRunning {
		return glimpse.ControlFlowExit
	}

	return glimpse.ControlFlowContinue
}

func (d *Driver) resized(ev glimpse.Resized) {
	// the platform reports the monitor size while fullscreen, that must not
	// replace the windowed size we return to when leaving fullscreen. Some
	// platforms report it from within the fullscreen transition itself,
	// before previous is replaced, so both snapshots are checked.
	if d.previous.Fullscreen || d.config.Fullscreen {
		slog.Debug("Ignore resize while fullscreen",
			slog.Int("width", int(ev.Width)),
			slog.Int("height", int(ev.Height)),
		)

		return
	}

	// the window already has this size, so the change goes into both
	// snapshots and does not trigger a resize during reconciliation
	d.config.Width, d.config.Height = ev.Width, ev.Height
	d.previous.Width, d.previous.Height = ev.Width, ev.Height
}

func (d *Driver) tick() {
	d.timing.Sample()

	if err := d.app.Update(&d.config, &d.input, d.timing); err != nil {
		if !errors.Is(err, ExitApp) {
			d.fail(fmt.Errorf("update application: %w", err))
			return
		}

		d.config.ExitRequested = true
	}

	if err := Reconcile(d.platform, d.monitor, d.previous, d.config); err != nil {
		d.fail(fmt.Errorf("reconcile window: %w", err))
		return
	}

	if d.config.ExitRequested || d.closeRequested {
		slog.Info("Exit requested",
			slog.Bool("application", d.config.ExitRequested),
			slog.Bool("window", d.closeRequested),
		)

		d.phase = PhaseExitRequested
	}

	d.input.ClearEdges()

	d.previous = d.config

	if d.timing.FrameCount()%600 == 0 {
		fps, _ := d.timing.AverageFramesPerSecond()
		slog.Debug("Frame timing",
			slog.Uint64("frames", d.timing.FrameCount()),
			slog.Float64("fps", fps),
			slog.Duration("max", d.timing.MaxDelta()),
		)
	}

	if d.phase == PhaseRunning {
		d.platform.RequestRedraw()
	}
}

func (d *Driver) redraw() {
	if d.surface != nil {
		width, height := d.platform.Size()

		surfaceWidth, surfaceHeight := d.surface.Size()
		if surfaceWidth != width || surfaceHeight != height {
			slog.Debug("Resize surface",
				slog.Int("width", int(width)),
				slog.Int("height", int(height)),
			)

			if err := d.surface.Configure(width, height); err != nil {
				d.fail(fmt.Errorf("resize surface: %w", err))
				return
			}
		}
	}

	d.app.Render(d.surface)

	if d.surface != nil {
		if err := d.surface.Present(); err != nil {
			d.fail(fmt.Errorf("present surface: %w", err))
		}
	}
}

func (d *Driver) fail(err error) {
	slog.Error("Exiting because of error", slog.String("error", err.Error()))

	d.err = err
	d.phase = PhaseTerminated
}
