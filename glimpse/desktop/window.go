// Package desktop implements glimpse.Window on top of glfw.
package desktop

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/appbase/glimpse"
	"github.com/oliverbestmann/appbase/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
)

func init() {
	// glfw must only be used from the main thread
	runtime.LockOSThread()
}

var ErrNoPrimaryMonitor = errors.New("no primary monitor")

const minimizedPollInterval = 100 * time.Millisecond

type Options struct {
	Width      uint32
	Height     uint32
	Title      string
	Fullscreen bool
	Resizable  bool
}

type monitor struct {
	m *glfw.Monitor
}

func (m monitor) Name() string {
	return m.m.GetName()
}

type Window struct {
	win     *glfw.Window
	primary monitor

	// windowed position to return to when leaving fullscreen
	windowedX, windowedY int

	handler glimpse.EventHandler
	redraw  bool
	exit    bool

	// scancodes of unmapped keys we already warned about
	warned *lru.Cache[int, struct{}]
}

var _ glimpse.Window = (*Window)(nil)

func NewWindow(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	primary := glfw.GetPrimaryMonitor()
	if primary == nil {
		glfw.Terminate()
		return nil, ErrNoPrimaryMonitor
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))

	window, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	warned, _ := lru.New[int, struct{}](64)

	w := &Window{
		win:     window,
		primary: monitor{m: primary},
		warned:  warned,
	}

	configureInput(window, w)

	if opts.Fullscreen {
		if err := w.EnterFullscreen(w.primary); err != nil {
			w.Terminate()
			return nil, fmt.Errorf("enter fullscreen: %w", err)
		}
	}

	return w, nil
}

func (w *Window) Size() (uint32, uint32) {
	width, height := w.win.GetSize()
	return uint32(width), uint32(height)
}

// SetSize resizes the window. A fullscreen window keeps the size of its
// monitor, resizing it would change the video mode of the monitor.
func (w *Window) SetSize(width, height uint32) error {
	return protect("set size", func() {
		if w.win.GetMonitor() != nil {
			slog.Debug("Skip resizing fullscreen window",
				slog.Int("width", int(width)),
				slog.Int("height", int(height)),
			)

			return
		}

		w.win.SetSize(int(width), int(height))
	})
}

func (w *Window) SetResizable(resizable bool) error {
	return protect("set resizable", func() {
		value := glfwBool(resizable)
		if w.win.GetAttrib(glfw.Resizable) != value {
			w.win.SetAttrib(glfw.Resizable, value)
		}
	})
}

func (w *Window) SetTitle(title string) error {
	return protect("set title", func() {
		w.win.SetTitle(title)
	})
}

func (w *Window) EnterFullscreen(target glimpse.Monitor) error {
	m, ok := target.(monitor)
	if !ok {
		return fmt.Errorf("enter fullscreen: unsupported monitor %T", target)
	}

	return protect("enter fullscreen", func() {
		if w.win.GetMonitor() == nil {
			w.windowedX, w.windowedY = w.win.GetPos()
		}

		// keep the current video mode, this gives us a borderless fullscreen window
		mode := m.m.GetVideoMode()
		w.win.SetMonitor(m.m, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	})
}

func (w *Window) ExitFullscreen() error {
	return protect("exit fullscreen", func() {
		if w.win.GetMonitor() == nil {
			return
		}

		width, height := w.win.GetSize()
		w.win.SetMonitor(nil, w.windowedX, w.windowedY, width, height, 0)
	})
}

func (w *Window) PrimaryMonitor() glimpse.Monitor {
	return w.primary
}

func (w *Window) RequestRedraw() {
	w.redraw = true
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *Window) Terminate() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) Run(handler glimpse.EventHandler) error {
	w.handler = handler
	w.exit = false

	defer func() { w.handler = nil }()

	for !w.exit {
		// callbacks registered in configureInput dispatch
		// the individual events while polling
		if err := protect("poll events", w.pollEvents); err != nil {
			return err
		}

		w.dispatch(glimpse.EventsCleared{})

		if w.redraw {
			w.redraw = false
			w.dispatch(glimpse.RedrawRequested{})
		}
	}

	return nil
}

func (w *Window) pollEvents() {
	// a minimized window has no surface to present into, so nothing
	// else limits the rate of the loop
	if w.win.GetAttrib(glfw.Iconified) == glfw.True {
		glfw.WaitEventsTimeout(minimizedPollInterval.Seconds())
		return
	}

	glfw.PollEvents()
}

func (w *Window) dispatch(event glimpse.Event) {
	if w.exit || w.handler == nil {
		return
	}

	if w.handler(event) == glimpse.ControlFlowExit {
		w.exit = true
	}
}

func configureInput(window *glfw.Window, w *Window) {
	window.SetCloseCallback(func(_win *glfw.Window) {
		// the handler decides if and when the window closes
		_win.SetShouldClose(false)
		w.dispatch(glimpse.CloseRequested{})
	})

	window.SetSizeCallback(func(_win *glfw.Window, width, height int) {
		w.dispatch(glimpse.Resized{Width: uint32(width), Height: uint32(height)})
	})

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.dispatch(glimpse.KeyboardInput{
			Key:     w.keyOf(glfwKey, scancode),
			Pressed: action != glfw.Release,
			Repeat:  action == glfw.Repeat,
		})
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.dispatch(glimpse.MouseInput{
			Button:  mouseButtonOf(btn),
			Pressed: action == glfw.Press,
		})
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		w.dispatch(glimpse.CursorMoved{Position: glm.Vec2f{float32(xpos), float32(ypos)}})
	})
}

func (w *Window) keyOf(glfwKey glfw.Key, scancode int) glimpse.Key {
	key, ok := lookupKey(glfwKey)
	if !ok {
		if seen, _ := w.warned.ContainsOrAdd(scancode, struct{}{}); !seen {
			slog.Warn(
				"Unknown key code",
				slog.String("key", glfw.GetKeyName(glfwKey, scancode)),
				slog.Int("scancode", scancode),
			)
		}
	}

	return key
}

func glfwBool(value bool) int {
	if value {
		return glfw.True
	}

	return glfw.False
}

// protect turns the panics raised by the glfw bindings into errors.
func protect(desc string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rErr, ok := r.(error); ok {
				err = fmt.Errorf("%s: %w", desc, rErr)
			} else {
				err = fmt.Errorf("%s: %v", desc, r)
			}
		}
	}()

	fn()
	return nil
}
